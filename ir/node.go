package ir

import "strings"

// PropertySink is the capability a node exposes for accumulating
// properties in encounter order.  A single AddProperty call appends one
// tag followed by zero or more values belonging to it.
type PropertySink interface {
	AddProperty(tag string, values []string)
}

// Node is a vertex of an SGF game tree.  Navigation links are
// non-owning: Child points at the first child, further children are
// reached through the NextSibling chain.  Property text is stored as
// one concatenated string segmented by Sizes, with IsTag marking which
// segments are tags; this keeps the encounter order exact and makes
// the flattened export a straight copy.
type Node struct {
	Parent      *Node
	Child       *Node
	NextSibling *Node
	NumChildren int

	Content string
	Sizes   []int
	IsTag   []bool
}

var _ PropertySink = (*Node)(nil)

func (n *Node) AddProperty(tag string, values []string) {
	var b strings.Builder
	b.Grow(len(tag))
	b.WriteString(tag)
	n.Sizes = append(n.Sizes, len(tag))
	n.IsTag = append(n.IsTag, true)
	for _, v := range values {
		b.WriteString(v)
		n.Sizes = append(n.Sizes, len(v))
		n.IsTag = append(n.IsTag, false)
	}
	n.Content += b.String()
}

// AddChild appends node at the end of n's child chain.  A node attached
// elsewhere is detached first; reparenting is a normal operation.
func (n *Node) AddChild(node *Node) {
	node.Detach()
	if n.Child == nil {
		n.Child = node
	} else {
		cur := n.Child
		for cur.NextSibling != nil {
			cur = cur.NextSibling
		}
		cur.NextSibling = node
	}
	node.Parent = n
	n.NumChildren++
}

// Detach unlinks n from its parent and sibling chain and returns n.
// Detaching an unattached node is a no-op.
func (n *Node) Detach() *Node {
	if n.Parent == nil {
		return n
	}
	if n.Parent.Child == n {
		n.Parent.Child = n.NextSibling
	} else {
		ptr := n.Parent.Child
		for ptr.NextSibling != n {
			ptr = ptr.NextSibling
		}
		ptr.NextSibling = n.NextSibling
	}
	n.Parent.NumChildren--
	n.Parent = nil
	n.NextSibling = nil
	return n
}

func (n *Node) Children() []*Node {
	res := make([]*Node, 0, n.NumChildren)
	for c := n.Child; c != nil; c = c.NextSibling {
		res = append(res, c)
	}
	return res
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Property is one decoded (tag, values) entry.
type Property struct {
	Tag    string
	Values []string
}

// Properties decodes the accumulated segments back into (tag, values)
// pairs in the exact order AddProperty recorded them.
func (n *Node) Properties() []Property {
	var props []Property
	off := 0
	for i, sz := range n.Sizes {
		seg := n.Content[off : off+sz]
		off += sz
		if n.IsTag[i] {
			props = append(props, Property{Tag: seg})
			continue
		}
		p := &props[len(props)-1]
		p.Values = append(p.Values, seg)
	}
	return props
}

// Get returns the values of the first property with the given tag, or
// nil if the node has none.
func (n *Node) Get(tag string) []string {
	for _, p := range n.Properties() {
		if p.Tag == tag {
			return p.Values
		}
	}
	return nil
}

// Visit walks the subtree rooted at n.  f is called before and after
// each node's children; returning false from the pre call skips the
// children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for c := n.Child; c != nil; c = c.NextSibling {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
