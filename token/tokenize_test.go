package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type lexTest struct {
	in   string
	toks []Token
}

func TestLexOK(t *testing.T) {
	lts := []lexTest{
		{
			in: "(;B[aa])",
			toks: []Token{
				{Type: LeftParen, Start: 0, End: 1},
				{Type: Semicolon, Start: 1, End: 2},
				{Type: Tag, Start: 2, End: 3},
				{Type: Value, Start: 4, End: 6},
				{Type: RightParen, Start: 7, End: 8},
			},
		},
		{
			in: " (\n;\tAB_1[x]) ",
			toks: []Token{
				{Type: LeftParen, Start: 1, End: 2},
				{Type: Semicolon, Start: 3, End: 4},
				{Type: Tag, Start: 5, End: 9},
				{Type: Value, Start: 10, End: 11},
				{Type: RightParen, Start: 12, End: 13},
			},
		},
		{
			// escaped ']' stays inside the value, backslash retained
			in: `[a\]b]`,
			toks: []Token{
				{Type: Value, Start: 1, End: 5},
			},
		},
		{
			in: `[]`,
			toks: []Token{
				{Type: Value, Start: 1, End: 1},
			},
		},
		{
			in: `[a\\]`,
			toks: []Token{
				{Type: Value, Start: 1, End: 4},
			},
		},
	}
	for _, lt := range lts {
		lex := NewLexer([]byte(lt.in))
		for i, want := range lt.toks {
			tok, err := lex.NextToken()
			if err != nil {
				t.Fatalf("%q token %d: %v", lt.in, i, err)
			}
			if tok.Type != want.Type || tok.Start != want.Start || tok.End != want.End {
				t.Errorf("%q token %d: got %s [%d,%d), want %s [%d,%d)",
					lt.in, i, tok.Type, tok.Start, tok.End,
					want.Type, want.Start, want.End)
			}
			if got, want := tok.Text(), lt.in[want.Start:want.End]; got != want {
				t.Errorf("%q token %d: text %q, want %q", lt.in, i, got, want)
			}
		}
		tok, err := lex.NextToken()
		if err != nil {
			t.Fatalf("%q: %v", lt.in, err)
		}
		if tok.Type != EOF {
			t.Errorf("%q: trailing token %s, want EOF", lt.in, tok.Type)
		}
	}
}

func TestLexEOFRepeats(t *testing.T) {
	lex := NewLexer([]byte(";"))
	if _, err := lex.NextToken(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		tok, err := lex.NextToken()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Type != EOF || tok.Start != 1 || tok.End != 1 {
			t.Errorf("call %d: got %s [%d,%d), want EOF [1,1)", i, tok.Type, tok.Start, tok.End)
		}
	}
}

func TestLexErrors(t *testing.T) {
	errTests := []struct {
		in         string
		sentinel   error
		start, end int
	}{
		{in: "@", sentinel: ErrInvalidChar, start: 0, end: 1},
		{in: ";B*", sentinel: ErrInvalidChar, start: 2, end: 3},
		{in: "[abc", sentinel: ErrUnterminated, start: 4, end: 4},
		{in: `[ab\]`, sentinel: ErrUnterminated, start: 5, end: 5},
	}
	for _, et := range errTests {
		lex := NewLexer([]byte(et.in))
		var (
			err error
		)
		for {
			var tok *Token
			tok, err = lex.NextToken()
			if err != nil || tok.Type == EOF {
				break
			}
		}
		if err == nil {
			t.Errorf("%q: no error", et.in)
			continue
		}
		if !errors.Is(err, et.sentinel) {
			t.Errorf("%q: error %v does not wrap %v", et.in, err, et.sentinel)
		}
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Errorf("%q: error %T is not a LexError", et.in, err)
			continue
		}
		if lexErr.Start != et.start || lexErr.End != et.end {
			t.Errorf("%q: error at [%d,%d), want [%d,%d)",
				et.in, lexErr.Start, lexErr.End, et.start, et.end)
		}
	}
}

func TestLexStart(t *testing.T) {
	lex := NewLexer([]byte("(;"), LexStart(100))
	tok, err := lex.NextToken()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Start != 100 || tok.End != 101 {
		t.Errorf("got [%d,%d), want [100,101)", tok.Start, tok.End)
	}
	if got := tok.Text(); got != "(" {
		t.Errorf("text %q, want %q", got, "(")
	}
}

func TestLexProgress(t *testing.T) {
	in := []byte("(;B[aa])")
	var calls [][2]int
	lex := NewLexer(in, LexProgress(func(consumed, total int) {
		calls = append(calls, [2]int{consumed, total})
	}))
	for {
		tok, err := lex.NextToken()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Type == EOF {
			break
		}
	}
	want := [][2]int{{1, 8}, {2, 8}, {3, 8}, {7, 8}, {8, 8}}
	if d := cmp.Diff(want, calls); d != "" {
		t.Errorf("progress calls (-want +got):\n%s", d)
	}
}

func TestCursor(t *testing.T) {
	c := cursor{d: []byte("ab")}
	if got := c.peek(); got != 'a' {
		t.Errorf("peek = %q, want 'a'", got)
	}
	if got := c.get(); got != 'a' {
		t.Errorf("get = %q, want 'a'", got)
	}
	c.unget()
	if got, pos := c.get(), c.pos(); got != 'a' || pos != 1 {
		t.Errorf("after unget: get = %q pos = %d, want 'a' 1", got, pos)
	}
	if got := c.get(); got != 'b' {
		t.Errorf("get = %q, want 'b'", got)
	}
	// past the end the cursor yields the NUL sentinel, never an error
	for i := 0; i < 2; i++ {
		if got := c.get(); got != endByte {
			t.Errorf("get past end = %q, want sentinel", got)
		}
	}
	if c.pos() != 2 {
		t.Errorf("pos = %d, want 2", c.pos())
	}
}

func TestPosDoc(t *testing.T) {
	pd := NewPosDoc([]byte("ab\ncde\n\nf"))
	posTests := []struct {
		off, line, col int
	}{
		{off: 0, line: 0, col: 0},
		{off: 1, line: 0, col: 1},
		{off: 2, line: 0, col: 2},
		{off: 3, line: 1, col: 0},
		{off: 6, line: 1, col: 3},
		{off: 7, line: 2, col: 0},
		{off: 8, line: 3, col: 0},
	}
	for _, pt := range posTests {
		line, col := pd.LineCol(pt.off)
		if line != pt.line || col != pt.col {
			t.Errorf("offset %d: got line=%d col=%d, want line=%d col=%d",
				pt.off, line, col, pt.line, pt.col)
		}
	}
}
