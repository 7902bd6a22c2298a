package main

import (
	"context"
	"errors"
	"sync"

	"github.com/kifulab/go-sgf/ir"
	"github.com/kifulab/go-sgf/parse"
	"github.com/kifulab/go-sgf/token"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	root    *ir.Node
	spans   map[*ir.Node]token.Span
	pos     *token.PosDoc
	err     error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	spans := make(map[*ir.Node]token.Span)
	d := []byte(content)
	root, err := parse.Parse(d, parse.ParseSpans(spans))
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		root:    root,
		spans:   spans,
		pos:     token.NewPosDoc(d),
		err:     err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, docURI uri.URI) {
	doc := s.docs.get(string(docURI))
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         docURI,
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	start, end := errorRange(doc.err)
	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range:    doc.protocolRange(start, end),
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "sgf",
	})
	return diagnostics
}

// errorRange pulls the byte range out of lex and parse errors.
func errorRange(err error) (int, int) {
	var (
		lexErr *token.LexError
		synErr *parse.SyntaxError
	)
	switch {
	case errors.As(err, &synErr):
		return synErr.Start, synErr.End
	case errors.As(err, &lexErr):
		return lexErr.Start, lexErr.End
	}
	return 0, 0
}

func (doc *document) protocolRange(start, end int) protocol.Range {
	if end < start {
		end = start
	}
	sl, sc := doc.pos.LineCol(start)
	el, ec := doc.pos.LineCol(end)
	return protocol.Range{
		Start: protocol.Position{Line: uint32(sl), Character: uint32(sc)},
		End:   protocol.Position{Line: uint32(el), Character: uint32(ec)},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, params.TextDocument.URI)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			content = change.Text
		} else {
			startOffset := lineColToOffset(content, int(rangeVal.Start.Line), int(rangeVal.Start.Character))
			endOffset := lineColToOffset(content, int(rangeVal.End.Line), int(rangeVal.End.Character))
			if startOffset <= len(content) && endOffset <= len(content) && startOffset <= endOffset {
				content = content[:startOffset] + change.Text + content[endOffset:]
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, params.TextDocument.URI)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i := 0; i < len(content); i++ {
		if currentLine == line && currentCol == col {
			return i
		}
		if content[i] == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
