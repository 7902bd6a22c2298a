package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlatten(t *testing.T) {
	root := &Node{}
	root.AddProperty("B", []string{"aa"})
	mid := &Node{}
	mid.AddProperty("W", []string{"bb"})
	root.AddChild(mid)
	l1 := &Node{}
	l1.AddProperty("B", []string{"cc"})
	mid.AddChild(l1)
	l2 := &Node{}
	l2.AddProperty("B", []string{"dd", "ee"})
	mid.AddChild(l2)

	ft := Flatten(root)
	if ft.NumNodes() != 4 {
		t.Fatalf("NumNodes() = %d, want 4", ft.NumNodes())
	}
	want := &FlatTree{
		Content: "BaaWbbBccBddee",
		Sizes:   []int{1, 2, 1, 2, 1, 2, 1, 2, 2},
		IsTag:   []bool{true, false, true, false, true, false, true, false, false},
		Counts:  []int{2, 2, 2, 3},
		Parents: []int{-1, 0, 1, 1},
	}
	if d := cmp.Diff(want, ft); d != "" {
		t.Errorf("flat tree (-want +got):\n%s", d)
	}
}
