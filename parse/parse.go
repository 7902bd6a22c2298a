// Package parse parses SGF text into ir game trees.
package parse

import (
	"io"

	"github.com/kifulab/go-sgf/ir"
)

// Parse parses a complete SGF document and returns the tree root.  An
// empty document returns a nil root and no error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	p := NewParser(d, opts...)
	for {
		_, err := p.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return p.Root(), nil
}
