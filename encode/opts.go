package encode

// EncodeOption configures Encode.
type EncodeOption func(*EncState)

// EncodeIndent causes forked subtrees to be placed on their own lines,
// indented n spaces per nesting level.  Zero gives single-line output.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		es.indent = n
	}
}

// EncodeColors renders structural characters, tags, and values with
// the given color scheme.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		es.Color = c.color
	}
}
