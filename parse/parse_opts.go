package parse

import (
	"github.com/kifulab/go-sgf/ir"
	"github.com/kifulab/go-sgf/token"
)

type parseOpts struct {
	alloc    ir.Allocator
	start    int
	progress token.ProgressFunc
	spans    map[*ir.Node]token.Span
}

func (o *parseOpts) lexOpts() []token.LexOption {
	res := []token.LexOption{}
	if o.start != 0 {
		res = append(res, token.LexStart(o.start))
	}
	if o.progress != nil {
		res = append(res, token.LexProgress(o.progress))
	}
	return res
}

type ParseOption func(*parseOpts)

// ParseAllocator sets the allocation strategy for tree nodes.  The
// default is ir.SimpleAllocator; supply an ir.TrackingAllocator to
// enable bulk reclamation of a partially built tree.
func ParseAllocator(a ir.Allocator) ParseOption {
	return func(o *parseOpts) { o.alloc = a }
}

// ParseStart shifts all reported byte positions by off, for parsing a
// slice of a larger document.
func ParseStart(off int) ParseOption {
	return func(o *parseOpts) { o.start = off }
}

// ParseProgress installs a progress callback invoked with
// (consumed, total) byte counts, at most once per token.
func ParseProgress(fn token.ProgressFunc) ParseOption {
	return func(o *parseOpts) { o.progress = fn }
}

// ParseSpans records the source span of each parsed node into m.
func ParseSpans(m map[*ir.Node]token.Span) ParseOption {
	return func(o *parseOpts) { o.spans = m }
}
