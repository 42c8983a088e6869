package swen

// AccumulateLocalPosition computes the local_position a child should receive
// while being parsed inside parent (§4.2 Coordinate accumulation, §3
// invariant 2): the enclosing node's own LocalPosition plus its Position.
// Passing this value down at parse time means world coordinates need no
// second traversal (§3).
func AccumulateLocalPosition(parentLocal, parentPosition Vector) Vector {
	return parentLocal.Add(parentPosition)
}

// Invert returns the inverse of m, or the identity matrix if m is singular.
// Grounded on the same near-zero-determinant guard a retained-mode scene
// graph's affine inverse uses when undoing a Transform node's matrix (e.g.
// for hit-testing); the IR lowerer itself never needs to invert a matrix,
// but downstream backends that want to map a pointer event back into a
// Transform subtree's local space do.
func (m Matrix) Invert() Matrix {
	det := m.A*m.D - m.C*m.B
	if det > -1e-12 && det < 1e-12 {
		return IdentityMatrix
	}
	invDet := 1 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	return Matrix{
		A: a, B: b, C: c, D: d,
		E: -(a*m.E + c*m.F),
		F: -(b*m.E + d*m.F),
	}
}

// TransformPoint applies m to the point (x, y).
func (m Matrix) TransformPoint(x, y float32) (float32, float32) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}
