// Package ir defines the in-memory representation of SGF game trees.
//
// # Structure
//
// A tree is built from Node values linked by non-owning pointers:
// Parent, Child (first child only) and NextSibling.  Further children
// of a node are reached by walking the sibling chain from Child;
// NumChildren is maintained incrementally by AddChild and Detach.
//
// A node reachable from its parent's Child pointer always has Parent
// set back to that parent, and appears in the sibling chain exactly
// once.  AddChild on a node that is attached elsewhere detaches it
// first, so a node never has more than one parent.
//
// # Properties
//
// Properties accumulate through AddProperty(tag, values) and preserve
// encounter order exactly; Properties() decodes them back into
// (tag, values) pairs.  The backing storage is a single concatenated
// string plus segment sizes and tag flags, which Flatten reuses for
// the depth-first compact export.
//
// # Ownership
//
// Nodes are created through an Allocator.  SimpleAllocator hands
// ownership to the caller; TrackingAllocator keeps an owned set of
// everything it created so a partial tree can be reclaimed with
// DeallocateAll after a failed parse.
//
// Nodes are not safe for concurrent mutation.
package ir
