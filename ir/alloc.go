package ir

// Allocator creates and releases nodes.  The parser allocates every
// tree node through one; which implementation the caller supplies
// decides who owns the nodes after the parse.
type Allocator interface {
	// Allocate returns a fresh, detached, property-less node.
	Allocate() *Node
	// Deallocate releases a single node.  Releasing the same node
	// twice must be safe.
	Deallocate(*Node)
}

// SimpleAllocator hands out nodes the caller owns outright.
type SimpleAllocator struct{}

func (SimpleAllocator) Allocate() *Node { return &Node{} }

func (SimpleAllocator) Deallocate(*Node) {}

// TrackingAllocator remembers every node it created, so a partially
// built tree can be reclaimed in one call if parsing fails midway.
type TrackingAllocator struct {
	live map[*Node]struct{}
}

func NewTrackingAllocator() *TrackingAllocator {
	return &TrackingAllocator{live: map[*Node]struct{}{}}
}

func (a *TrackingAllocator) Allocate() *Node {
	n := &Node{}
	a.live[n] = struct{}{}
	return n
}

// Deallocate removes node from the live set.  Unknown or already
// released nodes are a no-op.
func (a *TrackingAllocator) Deallocate(node *Node) {
	delete(a.live, node)
}

// Live returns all nodes allocated and not since deallocated.
func (a *TrackingAllocator) Live() []*Node {
	res := make([]*Node, 0, len(a.live))
	for n := range a.live {
		res = append(res, n)
	}
	return res
}

// DeallocateAll releases every live node.
func (a *TrackingAllocator) DeallocateAll() {
	clear(a.live)
}
