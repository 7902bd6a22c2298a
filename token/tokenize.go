// Package token tokenizes SGF text.
//
// The lexer produces one token per call with exact half-open byte
// ranges into the source, skipping whitespace transparently.  Escaping
// inside bracketed values is preserved literally: a backslash marks the
// next byte as escaped and both bytes are retained in the token text.
package token

import (
	"github.com/kifulab/go-sgf/debug"
)

// Lexer converts a byte buffer into a sequence of tokens.  It is a
// single-owner state machine; a Lexer must not be shared across
// goroutines.
type Lexer struct {
	in       cursor
	total    int
	last     Token
	progress ProgressFunc
}

func NewLexer(d []byte, opts ...LexOption) *Lexer {
	o := &lexOpts{}
	for _, f := range opts {
		f(o)
	}
	return &Lexer{
		in:       cursor{d: d, base: o.start},
		total:    len(d),
		last:     Token{Type: None, Start: o.start, End: o.start},
		progress: o.progress,
	}
}

// NextToken advances and returns the next token.  After end of input it
// returns an EOF token on every call.  The returned token is valid
// until the next call.
func (l *Lexer) NextToken() (*Token, error) {
	if err := l.next(); err != nil {
		return nil, err
	}
	if debug.Lex() {
		debug.Logf("lex: %s %q\n", l.last.Type, string(l.last.Bytes))
	}
	if l.last.Type != EOF && l.progress != nil {
		l.progress(l.in.i, l.total)
	}
	return &l.last, nil
}

// Current returns the last produced token without advancing.
func (l *Lexer) Current() *Token {
	return &l.last
}

func (l *Lexer) next() error {
	for {
		c := l.in.get()
		switch {
		case c == endByte:
			p := l.in.pos()
			l.last = Token{Type: EOF, Start: p, End: p}
			return nil
		case c == '(':
			l.single(LeftParen)
			return nil
		case c == ')':
			l.single(RightParen)
			return nil
		case c == ';':
			l.single(Semicolon)
			return nil
		case c == '[':
			return l.value()
		case isTagByte(c):
			l.tag()
			return nil
		case isSpace(c):
			continue
		default:
			return NewLexError(ErrInvalidChar, l.in.pos()-1, l.in.pos())
		}
	}
}

func (l *Lexer) single(t Type) {
	end := l.in.pos()
	l.last = Token{
		Type:  t,
		Bytes: l.in.d[l.in.i-1 : l.in.i],
		Start: end - 1,
		End:   end,
	}
}

// value consumes a bracketed value.  The opening bracket has already
// been consumed; the token's range covers the content only, so the end
// offset is the position of the unescaped closing bracket.
func (l *Lexer) value() error {
	start := l.in.pos()
	escape := false
	for {
		c := l.in.get()
		if c == endByte {
			p := l.in.pos()
			return NewLexError(ErrUnterminated, p, p)
		}
		if c == ']' && !escape {
			break
		}
		if c == '\\' && !escape {
			escape = true
			continue
		}
		escape = false
	}
	end := l.in.pos() - 1
	l.last = Token{
		Type:  Value,
		Bytes: l.in.d[start-l.in.base : end-l.in.base],
		Start: start,
		End:   end,
	}
	return nil
}

func (l *Lexer) tag() {
	start := l.in.pos() - 1
	for {
		c := l.in.peek()
		if c == endByte || !isTagByte(c) {
			break
		}
		l.in.get()
	}
	end := l.in.pos()
	l.last = Token{
		Type:  Tag,
		Bytes: l.in.d[start-l.in.base : end-l.in.base],
		Start: start,
		End:   end,
	}
}

func isTagByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
