package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddChildDetach(t *testing.T) {
	root := &Node{}
	a, b, c := &Node{}, &Node{}, &Node{}
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)

	if root.NumChildren != 3 {
		t.Fatalf("NumChildren = %d, want 3", root.NumChildren)
	}
	checkChildren(t, root, a, b, c)

	b.Detach()
	if b.Parent != nil || b.NextSibling != nil {
		t.Errorf("detached node keeps links: parent=%v next=%v", b.Parent, b.NextSibling)
	}
	if root.NumChildren != 2 {
		t.Errorf("NumChildren = %d, want 2", root.NumChildren)
	}
	checkChildren(t, root, a, c)

	// detaching an unattached node is a no-op
	b.Detach()
	if root.NumChildren != 2 {
		t.Errorf("NumChildren = %d after double detach, want 2", root.NumChildren)
	}
}

func checkChildren(t *testing.T, n *Node, want ...*Node) {
	t.Helper()
	got := n.Children()
	if len(got) != len(want) {
		t.Fatalf("got %d children, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d: got %p, want %p", i, got[i], want[i])
		}
	}
}

func TestReparent(t *testing.T) {
	p1, p2 := &Node{}, &Node{}
	n := &Node{}
	p1.AddChild(n)
	p2.AddChild(n)

	if p1.NumChildren != 0 || p1.Child != nil {
		t.Errorf("old parent keeps node: num=%d child=%v", p1.NumChildren, p1.Child)
	}
	if p2.NumChildren != 1 || p2.Child != n || n.Parent != p2 {
		t.Errorf("new parent not linked: num=%d", p2.NumChildren)
	}
	if got := n.Root(); got != p2 {
		t.Errorf("Root() = %v, want %v", got, p2)
	}
}

func TestProperties(t *testing.T) {
	n := &Node{}
	n.AddProperty("B", []string{"aa"})
	n.AddProperty("C", []string{"first", "second"})
	n.AddProperty("B", []string{"bb"})

	want := []Property{
		{Tag: "B", Values: []string{"aa"}},
		{Tag: "C", Values: []string{"first", "second"}},
		{Tag: "B", Values: []string{"bb"}},
	}
	if d := cmp.Diff(want, n.Properties()); d != "" {
		t.Errorf("properties (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"aa"}, n.Get("B")); d != "" {
		t.Errorf("Get returns the first matching property (-want +got):\n%s", d)
	}
	if got := n.Get("W"); got != nil {
		t.Errorf("Get(W) = %v, want nil", got)
	}
}

func TestVisitOrder(t *testing.T) {
	mk := func(tag string) *Node {
		n := &Node{}
		n.AddProperty(tag, []string{"x"})
		return n
	}
	root := mk("A")
	b, c := mk("B"), mk("C")
	root.AddChild(b)
	root.AddChild(c)
	d := mk("D")
	b.AddChild(d)

	var pre, post []string
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		tag := n.Properties()[0].Tag
		if isPost {
			post = append(post, tag)
		} else {
			pre = append(pre, tag)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"A", "B", "D", "C"}, pre); diff != "" {
		t.Errorf("pre order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"D", "B", "C", "A"}, post); diff != "" {
		t.Errorf("post order (-want +got):\n%s", diff)
	}

	// returning false from the pre call skips the children
	pre = nil
	err = root.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			pre = append(pre, n.Properties()[0].Tag)
		}
		return n != b, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, pre); diff != "" {
		t.Errorf("pruned pre order (-want +got):\n%s", diff)
	}
}
