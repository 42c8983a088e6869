package swen

import "testing"

func TestMatrixMultiplyIdentity(t *testing.T) {
	m := Matrix{A: 2, B: 0, C: 0, D: 3, E: 5, F: 7}
	got := m.Multiply(IdentityMatrix)
	if got != m {
		t.Errorf("m * identity = %v, want %v", got, m)
	}
}

func TestColorIsOpaque(t *testing.T) {
	if !(Color{R: 1, G: 2, B: 3, A: 255}).IsOpaque() {
		t.Error("alpha 255 should be opaque")
	}
	if (Color{A: 254}).IsOpaque() {
		t.Error("alpha 254 should not be opaque")
	}
}

func TestBoundsIntersects(t *testing.T) {
	a := Bounds{X: 0, Y: 0, Width: 10, Height: 10}
	b := Bounds{X: 5, Y: 5, Width: 10, Height: 10}
	if !a.Intersects(b) {
		t.Error("overlapping bounds should intersect")
	}
	c := Bounds{X: 10, Y: 10, Width: 10, Height: 10}
	if a.Intersects(c) {
		t.Error("edge-touching bounds should not count as intersecting")
	}
}

func TestBoundsContains(t *testing.T) {
	outer := Bounds{X: 0, Y: 0, Width: 100, Height: 100}
	inner := Bounds{X: 10, Y: 10, Width: 20, Height: 20}
	if !outer.Contains(inner) {
		t.Error("outer should contain inner")
	}
	if inner.Contains(outer) {
		t.Error("inner should not contain outer")
	}
}

func TestDeriveNodeIdStableAndNonZero(t *testing.T) {
	a := DeriveNodeId("panel")
	b := DeriveNodeId("panel")
	if a != b {
		t.Errorf("DeriveNodeId not stable: %v != %v", a, b)
	}
	if a == 0 {
		t.Error("DeriveNodeId(\"panel\") = 0, want nonzero")
	}
	if DeriveNodeId("") != 0 {
		t.Error("DeriveNodeId(\"\") should be 0 (no stable id)")
	}
}

func TestNodeIdAllocatorMonotonic(t *testing.T) {
	a := NewNodeIdAllocator()
	first := a.Next()
	second := a.Next()
	if first != 1 {
		t.Errorf("first id = %d, want 1", first)
	}
	if second != 2 {
		t.Errorf("second id = %d, want 2", second)
	}
}

func TestPaintKeyEql(t *testing.T) {
	a := PaintKey{Color: Color{R: 1}}
	b := PaintKey{Color: Color{R: 1}}
	c := PaintKey{Color: Color{R: 2}}
	if !a.Eql(b) {
		t.Error("identical paint keys should be Eql")
	}
	if a.Eql(c) {
		t.Error("differing paint keys should not be Eql")
	}
}
