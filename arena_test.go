package swen

import "testing"

func TestNodeArenaOverflow(t *testing.T) {
	a := NewNodeArena(1)
	n1 := NewRectNode(1, "", Vector{}, Vector{}, Vector{X: 1, Y: 1}, nil, 0)
	if err := a.Alloc(n1); err != nil {
		t.Fatalf("first Alloc: %v", err)
	}
	n2 := NewRectNode(2, "", Vector{}, Vector{}, Vector{X: 1, Y: 1}, nil, 0)
	err := a.Alloc(n2)
	if err == nil {
		t.Fatal("second Alloc: want OverflowError, got nil")
	}
	if _, ok := err.(*OverflowError); !ok {
		t.Fatalf("err = %T, want *OverflowError", err)
	}
}

func TestRootFilterExcludesChildren(t *testing.T) {
	child := NewRectNode(2, "", Vector{}, Vector{}, Vector{X: 1, Y: 1}, nil, 0)
	parent := NewRectNode(1, "", Vector{}, Vector{}, Vector{X: 10, Y: 10}, nil, 0)
	parent.SetChildren([]Node{child})

	out := RootFilter([]Node{parent, child}, 4096)
	if len(out) != 1 || out[0] != Node(parent) {
		t.Fatalf("RootFilter = %v, want [parent]", out)
	}
}

func TestRootFilterKeepsUnrelatedSiblings(t *testing.T) {
	a := NewRectNode(1, "", Vector{}, Vector{}, Vector{X: 1, Y: 1}, nil, 0)
	b := NewRectNode(2, "", Vector{}, Vector{}, Vector{X: 1, Y: 1}, nil, 0)
	out := RootFilter([]Node{a, b}, 4096)
	if len(out) != 2 {
		t.Fatalf("got %d nodes, want 2", len(out))
	}
}

func TestRootFilterIdsOutsideBitsetCapacityAreNotPresent(t *testing.T) {
	child := NewRectNode(9000, "", Vector{}, Vector{}, Vector{X: 1, Y: 1}, nil, 0)
	parent := NewRectNode(1, "", Vector{}, Vector{}, Vector{X: 10, Y: 10}, nil, 0)
	parent.SetChildren([]Node{child})

	// child's id (9000) exceeds a bitset sized for 10: RootFilter must not
	// panic, and since the child's presence can't be recorded it is
	// (conservatively) kept rather than silently filtered.
	out := RootFilter([]Node{parent, child}, 10)
	if len(out) != 2 {
		t.Fatalf("got %d nodes, want 2 (child id outside bitset capacity kept)", len(out))
	}
}
