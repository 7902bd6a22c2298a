package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/kifulab/go-sgf/ir"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}

	off := lineColToOffset(doc.content, int(params.Position.Line), int(params.Position.Character))
	targetNode := doc.findNodeAtOffset(off)
	if targetNode == nil {
		return nil, nil
	}

	hoverText := buildHoverText(targetNode)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
		Range: rangePtr(doc, targetNode),
	}, nil
}

// findNodeAtOffset returns the innermost node whose recorded span
// contains off.  Child spans nest inside parent spans, so the node
// with the tightest span wins.
func (doc *document) findNodeAtOffset(off int) *ir.Node {
	var (
		best     *ir.Node
		bestSize int
	)
	doc.root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		sp, ok := doc.spans[n]
		if !ok || off < sp.Start || off >= sp.End {
			return true, nil
		}
		if best == nil || sp.End-sp.Start <= bestSize {
			best = n
			bestSize = sp.End - sp.Start
		}
		return true, nil
	})
	return best
}

func rangePtr(doc *document, n *ir.Node) *protocol.Range {
	sp, ok := doc.spans[n]
	if !ok {
		return nil
	}
	r := doc.protocolRange(sp.Start, sp.End)
	return &r
}

func buildHoverText(n *ir.Node) string {
	props := n.Properties()
	if len(props) == 0 {
		return ""
	}
	var parts []string
	for _, p := range props {
		vals := p.Values
		if len(vals) > 4 {
			vals = vals[:4]
		}
		shown := make([]string, 0, len(vals))
		for _, v := range vals {
			if len(v) > 50 {
				v = v[:50] + "..."
			}
			shown = append(shown, "`"+v+"`")
		}
		line := fmt.Sprintf("**%s:** %s", p.Tag, strings.Join(shown, ", "))
		if len(p.Values) > len(vals) {
			line += fmt.Sprintf(" (+%d more)", len(p.Values)-len(vals))
		}
		parts = append(parts, line)
	}
	if n.NumChildren > 1 {
		parts = append(parts, fmt.Sprintf("%d variations", n.NumChildren))
	}
	return strings.Join(parts, "\n\n")
}
