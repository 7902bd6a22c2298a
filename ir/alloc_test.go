package ir

import "testing"

func TestSimpleAllocator(t *testing.T) {
	var a SimpleAllocator
	n := a.Allocate()
	if n == nil || n.Parent != nil || n.Content != "" {
		t.Fatalf("Allocate returned a non-fresh node: %+v", n)
	}
	a.Deallocate(n)
	a.Deallocate(n)
}

func TestTrackingAllocator(t *testing.T) {
	a := NewTrackingAllocator()
	n1 := a.Allocate()
	n2 := a.Allocate()
	n3 := a.Allocate()
	if got := len(a.Live()); got != 3 {
		t.Fatalf("Live() has %d nodes, want 3", got)
	}

	a.Deallocate(n2)
	if got := len(a.Live()); got != 2 {
		t.Fatalf("Live() has %d nodes after Deallocate, want 2", got)
	}
	live := map[*Node]bool{}
	for _, n := range a.Live() {
		live[n] = true
	}
	if !live[n1] || !live[n3] || live[n2] {
		t.Errorf("wrong live set: %v", live)
	}

	// releasing twice, or releasing a foreign node, is a no-op
	a.Deallocate(n2)
	a.Deallocate(&Node{})
	if got := len(a.Live()); got != 2 {
		t.Errorf("Live() has %d nodes, want 2", got)
	}

	a.DeallocateAll()
	if got := len(a.Live()); got != 0 {
		t.Errorf("Live() has %d nodes after DeallocateAll, want 0", got)
	}
}
