package token

import (
	"errors"
	"fmt"
)

type Type int

const (
	None Type = iota
	LeftParen
	RightParen
	Semicolon
	Tag
	Value
	Ignore
	EOF
)

func (t Type) String() string {
	return map[Type]string{
		None:       "None",
		LeftParen:  "LeftParen",
		RightParen: "RightParen",
		Semicolon:  "Semicolon",
		Tag:        "Tag",
		Value:      "Value",
		Ignore:     "Ignore",
		EOF:        "EOF",
	}[t]
}

// Token is one lexeme with its half-open byte range [Start, End) into
// the source buffer.  For Value tokens Bytes excludes the surrounding
// brackets but retains backslash escapes literally.
type Token struct {
	Type  Type
	Bytes []byte
	Start int
	End   int
}

func (t *Token) Text() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s [%d,%d)", t.Type, t.Start, t.End)
}

// Span is a half-open byte range [Start, End) into the source buffer.
type Span struct {
	Start int
	End   int
}

var (
	ErrUnterminated = errors.New("unterminated value")
	ErrInvalidChar  = errors.New("invalid character")
)

// LexError is a fatal lexical error with a half-open byte range into
// the source.
type LexError struct {
	Err   error
	Start int
	End   int
}

func NewLexError(err error, start, end int) *LexError {
	return &LexError{Err: err, Start: start, End: end}
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at [%d,%d)", e.Err.Error(), e.Start, e.End)
}
