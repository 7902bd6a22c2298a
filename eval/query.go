// Package eval compiles and runs node queries over SGF game trees.
//
// Queries are expr-lang expressions evaluated once per node.  The
// environment exposes the node's properties plus helper functions, so
// expressions like `has("B") && depth > 4` or `get("C") contains
// "joseki"` select nodes.
package eval

import (
	"fmt"

	"github.com/kifulab/go-sgf/debug"
	"github.com/kifulab/go-sgf/ir"

	"github.com/expr-lang/expr"
)

type Query struct {
	src string
}

// Compile checks src compiles as a query.  The helper functions bind
// to a node at match time, so compilation against a probe node is
// repeated per node in Match.
func Compile(src string) (*Query, error) {
	probe := &ir.Node{}
	if _, err := expr.Compile(src, exprOpts(probe)...); err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return &Query{src: src}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates the query on n.  The expression must produce a bool.
func (q *Query) Match(n *ir.Node) (bool, error) {
	prg, err := expr.Compile(q.src, exprOpts(n)...)
	if err != nil {
		return false, fmt.Errorf("error compiling %q: %w", q.src, err)
	}
	res, err := expr.Run(prg, nodeEnv(n))
	if err != nil {
		return false, fmt.Errorf("error evaluating %q: %w", q.src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("query %q returned %T, want bool", q.src, res)
	}
	if debug.Query() {
		debug.Logf("query %q at depth %d: %t\n", q.src, depthOf(n), b)
	}
	return b, nil
}

// Select walks the tree rooted at root in document order and returns
// the nodes the query matches.
func Select(root *ir.Node, q *Query) ([]*ir.Node, error) {
	var res []*ir.Node
	err := root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		ok, err := q.Match(n)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func depthOf(n *ir.Node) int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

func nodeEnv(n *ir.Node) map[string]any {
	props := map[string][]string{}
	tags := []string{}
	for _, p := range n.Properties() {
		if _, ok := props[p.Tag]; !ok {
			tags = append(tags, p.Tag)
		}
		props[p.Tag] = append(props[p.Tag], p.Values...)
	}
	return map[string]any{
		"props":    props,
		"tags":     tags,
		"depth":    depthOf(n),
		"children": n.NumChildren,
		"isRoot":   n.Parent == nil,
		"isLeaf":   n.NumChildren == 0,
	}
}

func exprOpts(n *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("has", func(params ...any) (any, error) {
			return len(n.Get(params[0].(string))) > 0, nil
		},
			new(func(string) bool)),
		expr.Function("get", func(params ...any) (any, error) {
			vs := n.Get(params[0].(string))
			if len(vs) == 0 {
				return "", nil
			}
			return vs[0], nil
		},
			new(func(string) string)),
		expr.Function("values", func(params ...any) (any, error) {
			return n.Get(params[0].(string)), nil
		},
			new(func(string) []string)),
	}
}
