package parse

import (
	"errors"
	"fmt"
)

var ErrSyntax = errors.New("syntax error")

// SyntaxError is a fatal grammar violation with a half-open byte range
// into the source text.
type SyntaxError struct {
	Err   error
	Start int
	End   int
}

func NewSyntaxError(err error, start, end int) *SyntaxError {
	return &SyntaxError{Err: err, Start: start, End: end}
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at [%d,%d)", e.Err.Error(), e.Start, e.End)
}

func unexpectedErr(what string, start, end int) error {
	return NewSyntaxError(fmt.Errorf("%w: unexpected %s", ErrSyntax, what), start, end)
}

func unmatchedErr(what string, start, end int) error {
	return NewSyntaxError(fmt.Errorf("%w: unmatched %s", ErrSyntax, what), start, end)
}
