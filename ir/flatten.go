package ir

import "strings"

// FlatTree is a compact depth-first export of a game tree.  Content
// holds every tag and value of every node back to back; Sizes and
// IsTag segment it exactly as the per-node fields do.  Counts[i] is
// the number of segments belonging to node i and Parents[i] its parent
// node index, -1 for the root.  Node indices follow depth-first,
// sibling-order traversal.
type FlatTree struct {
	Content string
	Sizes   []int
	IsTag   []bool
	Counts  []int
	Parents []int
}

func Flatten(root *Node) *FlatTree {
	ft := &FlatTree{}
	var b strings.Builder
	var dfs func(n *Node, parent int)
	dfs = func(n *Node, parent int) {
		b.WriteString(n.Content)
		ft.Sizes = append(ft.Sizes, n.Sizes...)
		ft.IsTag = append(ft.IsTag, n.IsTag...)
		idx := len(ft.Counts)
		ft.Counts = append(ft.Counts, len(n.Sizes))
		ft.Parents = append(ft.Parents, parent)
		for c := n.Child; c != nil; c = c.NextSibling {
			dfs(c, idx)
		}
	}
	dfs(root, -1)
	ft.Content = b.String()
	return ft
}

// NumNodes returns the number of nodes in the export.
func (ft *FlatTree) NumNodes() int {
	return len(ft.Counts)
}
