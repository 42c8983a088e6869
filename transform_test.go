package swen

import "testing"

func TestAccumulateLocalPosition(t *testing.T) {
	got := AccumulateLocalPosition(Vector{X: 3, Y: 4}, Vector{X: 10, Y: 20})
	want := Vector{X: 13, Y: 24}
	if got != want {
		t.Errorf("AccumulateLocalPosition = %v, want %v", got, want)
	}
}

func TestWorldIsLocalPlusPosition(t *testing.T) {
	child := NewRectNode(1, "", Vector{X: 5, Y: 6}, Vector{X: 13, Y: 14}, Vector{X: 1, Y: 1}, nil, 0)
	got := World(child)
	want := Vector{X: 18, Y: 20}
	if got != want {
		t.Errorf("World = %v, want %v", got, want)
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Matrix{A: 2, B: 0, C: 0, D: 4, E: 1, F: 2}
	inv := m.Invert()
	x, y := m.TransformPoint(3, 5)
	ix, iy := inv.TransformPoint(x, y)
	if absf(ix-3) > 1e-4 || absf(iy-5) > 1e-4 {
		t.Errorf("round trip = (%v, %v), want (3, 5)", ix, iy)
	}
}

func TestMatrixInvertSingularReturnsIdentity(t *testing.T) {
	singular := Matrix{A: 0, B: 0, C: 0, D: 0, E: 1, F: 1}
	if singular.Invert() != IdentityMatrix {
		t.Error("inverting a singular matrix should yield the identity")
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
