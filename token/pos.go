package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets in a document to line/column pairs.  Lines
// and columns are zero-based.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

// Describe renders an offset with a context snippet, for error text.
func (p *PosDoc) Describe(off int) string {
	lo, hi := off-5, off+5
	if lo < 0 {
		lo = 0
	}
	if hi > len(p.d) {
		hi = len(p.d)
	}
	sample := strconv.Quote(string(p.d[lo:hi]))
	sample = sample[1 : len(sample)-1]
	ln, col := p.LineCol(off)
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, off, ln, col)
}
