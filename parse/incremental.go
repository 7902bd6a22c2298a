package parse

import (
	"fmt"
	"io"

	"github.com/kifulab/go-sgf/debug"
	"github.com/kifulab/go-sgf/ir"
	"github.com/kifulab/go-sgf/token"
)

// grammarState enumerates the distinct legal-next-token states of the
// SGF grammar.  Each state carries a precomputed set of allowed token
// kinds; a token arriving outside its state's set is a syntax error.
type grammarState int

const (
	stateStart  grammarState = iota // before any token
	stateOpen                       // after '('
	stateClosed                     // after ')'
	stateNode                       // after ';'
	stateTag                        // after a tag
	stateValue                      // after a value
)

func (s grammarState) String() string {
	return map[grammarState]string{
		stateStart:  "start",
		stateOpen:   "open",
		stateClosed: "closed",
		stateNode:   "node",
		stateTag:    "tag",
		stateValue:  "value",
	}[s]
}

type tokenSet uint16

func mask(ts ...token.Type) tokenSet {
	var m tokenSet
	for _, t := range ts {
		m |= 1 << t
	}
	return m
}

var allowed = map[grammarState]tokenSet{
	stateStart:  mask(token.LeftParen),
	stateOpen:   mask(token.Semicolon),
	stateClosed: mask(token.LeftParen, token.RightParen),
	stateNode:   mask(token.Tag),
	stateTag:    mask(token.Value),
	stateValue: mask(token.LeftParen, token.RightParen,
		token.Semicolon, token.Tag, token.Value),
}

func (s grammarState) allows(t token.Type) bool {
	return allowed[s]&(1<<t) != 0
}

type scopeKind int

const (
	scopeNode scopeKind = iota
	scopeParen
)

// scopeElem is one entry of the bracket/scope stack: either a '('
// marker carrying its source range, or the node that was current when
// a scope opened (nil at top level).
type scopeElem struct {
	kind  scopeKind
	start int
	end   int
	node  *ir.Node
}

// Parser is an incremental SGF parser.  ParseNext returns control to
// the caller each time a fully specified node closes, instead of
// building the whole tree before returning.  All state persists across
// calls; a Parser must not be shared across goroutines.
type Parser struct {
	lex  *token.Lexer
	opts *parseOpts

	stack   []scopeElem
	current *ir.Node // nil at top level
	root    *ir.Node
	state   grammarState

	cacheTag    string
	cacheValues []string

	done bool
}

func NewParser(d []byte, opts ...ParseOption) *Parser {
	o := &parseOpts{alloc: ir.SimpleAllocator{}}
	for _, f := range opts {
		f(o)
	}
	return &Parser{
		lex:   token.NewLexer(d, o.lexOpts()...),
		opts:  o,
		state: stateStart,
	}
}

// ParseNext returns the next node whose property sequence was closed
// by a structural token, or io.EOF once the input is exhausted with
// all parentheses matched.  A node with no pending properties at a
// structural boundary is not yielded here; it remains reachable
// through tree navigation from its parent and siblings.
func (p *Parser) ParseNext() (*ir.Node, error) {
	if p.done {
		return nil, io.EOF
	}
	for {
		tok, err := p.lex.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			break
		}
		if debug.Parse() {
			debug.Logf("parse: %s in state %s\n", tok.Info(), p.state)
		}
		switch tok.Type {
		case token.LeftParen:
			if !p.state.allows(tok.Type) {
				return nil, unexpectedErr("left parenthesis", tok.Start, tok.End)
			}
			p.stack = append(p.stack,
				scopeElem{kind: scopeNode, node: p.current},
				scopeElem{kind: scopeParen, start: tok.Start, end: tok.End})
			p.state = stateOpen

		case token.RightParen:
			if !p.state.allows(tok.Type) {
				return nil, unexpectedErr("right parenthesis", tok.Start, tok.End)
			}
			if len(p.stack) == 0 {
				return nil, unmatchedErr("right parenthesis", tok.Start, tok.End)
			}
			ret := p.flush()
			// pop down through the matching '(' marker; the node
			// recorded just below it becomes current again
			for p.stack[len(p.stack)-1].kind != scopeParen {
				p.stack = p.stack[:len(p.stack)-1]
			}
			p.stack = p.stack[:len(p.stack)-1]
			p.current = p.stack[len(p.stack)-1].node
			p.stack = p.stack[:len(p.stack)-1]
			p.state = stateClosed
			if ret != nil {
				return ret, nil
			}

		case token.Semicolon:
			if !p.state.allows(tok.Type) {
				return nil, unexpectedErr("semicolon", tok.Start, tok.End)
			}
			ret := p.flush()
			parent := p.current
			node := p.opts.alloc.Allocate()
			if parent == nil {
				if p.root != nil {
					return nil, NewSyntaxError(
						fmt.Errorf("%w: multiple game trees", ErrSyntax),
						tok.Start, tok.End)
				}
				p.root = node
			} else {
				parent.AddChild(node)
			}
			p.stack = append(p.stack, scopeElem{kind: scopeNode, node: parent})
			p.current = node
			p.state = stateNode
			if p.opts.spans != nil {
				p.opts.spans[node] = token.Span{Start: tok.Start, End: tok.End}
			}
			if ret != nil {
				return ret, nil
			}

		case token.Tag:
			if !p.state.allows(tok.Type) {
				return nil, unexpectedErr(fmt.Sprintf("tag %q", tok.Text()), tok.Start, tok.End)
			}
			// flush the previous property without yielding: the node
			// is not yet closed by a structural token
			if len(p.cacheValues) > 0 {
				p.current.AddProperty(p.cacheTag, p.cacheValues)
				p.cacheValues = nil
			}
			p.cacheTag = tok.Text()
			p.state = stateTag
			p.growSpan(tok)

		case token.Value:
			if !p.state.allows(tok.Type) {
				return nil, unexpectedErr(fmt.Sprintf("value %q", tok.Text()), tok.Start, tok.End)
			}
			p.cacheValues = append(p.cacheValues, tok.Text())
			p.state = stateValue
			p.growSpan(tok)

		case token.Ignore:
			// lexable but semantically void; skip
		}
	}

	if len(p.stack) > 0 {
		for i := len(p.stack) - 1; i >= 0; i-- {
			if p.stack[i].kind == scopeParen {
				return nil, unmatchedErr("left parenthesis",
					p.stack[i].start, p.stack[i].end)
			}
		}
	}
	p.done = true
	return nil, io.EOF
}

// Root returns the tree root, available once ParseNext has reported
// io.EOF.  It is nil for empty input.
func (p *Parser) Root() *ir.Node {
	return p.root
}

// flush stores the cached property on the current node and marks it as
// the node to yield at this boundary.  A cached tag without values
// never flushes, so no empty property is ever emitted.
func (p *Parser) flush() *ir.Node {
	if len(p.cacheValues) == 0 {
		return nil
	}
	p.current.AddProperty(p.cacheTag, p.cacheValues)
	p.cacheValues = nil
	return p.current
}

func (p *Parser) growSpan(tok *token.Token) {
	if p.opts.spans == nil || p.current == nil {
		return
	}
	s := p.opts.spans[p.current]
	s.End = tok.End
	p.opts.spans[p.current] = s
}
