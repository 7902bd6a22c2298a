package token

// ProgressFunc reports lexing progress as (consumed, total) byte
// counts.  It fires at most once per token.
type ProgressFunc func(consumed, total int)

type lexOpts struct {
	start    int
	progress ProgressFunc
}

type LexOption func(*lexOpts)

// LexStart shifts all reported positions by off, for lexing a slice of
// a larger document.
func LexStart(off int) LexOption {
	return func(o *lexOpts) { o.start = off }
}

func LexProgress(fn ProgressFunc) LexOption {
	return func(o *lexOpts) { o.progress = fn }
}
