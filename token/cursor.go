package token

// end sentinel returned by the cursor past the last byte.  SGF is an
// ASCII-framed format, so a NUL in the input is treated as end just as
// the format's reference readers do.
const endByte = byte(0)

// cursor is a repositionable byte cursor over a fixed buffer.  base
// shifts all reported positions, for callers resuming inside a larger
// document.
type cursor struct {
	d    []byte
	i    int
	base int
}

func (c *cursor) peek() byte {
	if c.i >= len(c.d) {
		return endByte
	}
	return c.d[c.i]
}

func (c *cursor) get() byte {
	if c.i >= len(c.d) {
		return endByte
	}
	b := c.d[c.i]
	c.i++
	return b
}

// unget rewinds by one byte.  Supports at least one step after a get.
func (c *cursor) unget() {
	if c.i > 0 {
		c.i--
	}
}

func (c *cursor) pos() int {
	return c.base + c.i
}
