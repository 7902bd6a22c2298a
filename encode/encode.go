// Package encode renders ir game trees back to SGF text.
//
// Property text is stored with escapes retained, so encoding is a
// verbatim re-emission with the structural characters and value
// brackets added back; Parse(Encode(t)) reproduces t.
package encode

import (
	"io"
	"strings"

	"github.com/kifulab/go-sgf/ir"
)

type EncState struct {
	indent int
	depth  int

	Color func(ColorAttr, string) string
}

// Encode writes the game tree rooted at node as an SGF document.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encodeTree(node, w, es)
}

// MustString encodes node to a string and panics on write errors; the
// writer below never fails.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	var b strings.Builder
	if err := Encode(node, &b, opts...); err != nil {
		panic(err)
	}
	return b.String()
}

// encodeTree writes '(' sequence ')' where the sequence follows
// single-child chains and forks into nested trees at every node with
// more than one child.
func encodeTree(node *ir.Node, w io.Writer, es *EncState) error {
	if err := es.writeSep(w, "("); err != nil {
		return err
	}
	n := node
	for {
		if err := encodeNode(n, w, es); err != nil {
			return err
		}
		if n.NumChildren != 1 {
			break
		}
		n = n.Child
	}
	if n.NumChildren > 1 {
		es.depth++
		for c := n.Child; c != nil; c = c.NextSibling {
			if err := es.writeNL(w); err != nil {
				return err
			}
			if err := encodeTree(c, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := es.writeNL(w); err != nil {
			return err
		}
	}
	return es.writeSep(w, ")")
}

func encodeNode(n *ir.Node, w io.Writer, es *EncState) error {
	if err := es.writeSep(w, ";"); err != nil {
		return err
	}
	for _, p := range n.Properties() {
		if err := es.writeTag(w, p.Tag); err != nil {
			return err
		}
		for _, v := range p.Values {
			if err := es.writeValue(w, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (es *EncState) writeNL(w io.Writer) error {
	if es.indent == 0 {
		return nil
	}
	pad := strings.Repeat(" ", es.indent*es.depth)
	return writeString(w, "\n"+pad)
}

func (es *EncState) writeSep(w io.Writer, s string) error {
	if es.Color != nil {
		s = es.Color(SepColor, s)
	}
	return writeString(w, s)
}

func (es *EncState) writeTag(w io.Writer, tag string) error {
	if es.Color != nil {
		tag = es.Color(TagColor, tag)
	}
	return writeString(w, tag)
}

func (es *EncState) writeValue(w io.Writer, v string) error {
	if es.Color == nil {
		return writeString(w, "["+v+"]")
	}
	if err := writeString(w, es.Color(SepColor, "[")); err != nil {
		return err
	}
	if err := writeString(w, es.Color(ValueColor, v)); err != nil {
		return err
	}
	return writeString(w, es.Color(SepColor, "]"))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
