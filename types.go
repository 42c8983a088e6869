package swen

import "fmt"

// Vector is a parent-space coordinate (§3). Used for sizes and positions
// throughout the scene tree; components are integer pixels.
type Vector struct {
	X, Y int32
}

// Add returns the component-wise sum of v and other.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

// Color is an 8-bit-per-channel RGBA color, not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// IsOpaque reports whether the color's alpha channel is fully opaque (255).
func (c Color) IsOpaque() bool {
	return c.A == 255
}

// Matrix is a 2D affine transform in row-major form:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
type Matrix struct {
	A, B, C, D, E, F float32
}

// IdentityMatrix is the affine identity transform.
var IdentityMatrix = Matrix{A: 1, D: 1}

// Multiply returns p composed with c, i.e. applying c first, then p
// (result = p * c in matrix terms).
func (p Matrix) Multiply(c Matrix) Matrix {
	return Matrix{
		A: p.A*c.A + p.C*c.B,
		B: p.B*c.A + p.D*c.B,
		C: p.A*c.C + p.C*c.D,
		D: p.B*c.C + p.D*c.D,
		E: p.A*c.E + p.C*c.F + p.E,
		F: p.B*c.E + p.D*c.F + p.F,
	}
}

// Bounds is an axis-aligned, world-space rectangle.
type Bounds struct {
	X, Y, Width, Height int32
}

// Intersects reports whether b and other overlap. Rectangles that only
// share an edge are NOT considered intersecting (used for tile-membership
// tests, where a zero-area overlap contributes no coverage).
func (b Bounds) Intersects(other Bounds) bool {
	return b.X < other.X+other.Width && other.X < b.X+b.Width &&
		b.Y < other.Y+other.Height && other.Y < b.Y+b.Height
}

// Contains reports whether other is fully covered by b.
func (b Bounds) Contains(other Bounds) bool {
	return b.X <= other.X && b.Y <= other.Y &&
		b.X+b.Width >= other.X+other.Width &&
		b.Y+b.Height >= other.Y+other.Height
}

// NodeId uniquely identifies a node within one parse (§3). Zero means "no
// stable id". The parser gives every node, declared id or not, a value from
// a monotonic counter (NodeIdAllocator); DeriveNodeId separately maps a
// declared id string to a stable djb2-based NodeId.
type NodeId uint64

// String renders the id for diagnostics.
func (id NodeId) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}

// djb2Hash computes the djb2 string hash used to derive a NodeId from a
// declared id string (§3 NodeId). Nothing checks for two distinct strings
// hashing to the same value, or for a hash equal to an allocator-assigned
// id; the parser's uniqueness check (invariant 5) compares declared id
// strings, not hashes.
func djb2Hash(s string) uint64 {
	var hash uint64 = 5381
	for i := 0; i < len(s); i++ {
		hash = ((hash << 5) + hash) + uint64(s[i])
	}
	return hash
}

// DeriveNodeId computes the stable NodeId for a declared id string. A
// blank id is not valid input; callers assign anonymous ids from a
// monotonic counter instead (see NodeIdAllocator).
func DeriveNodeId(declaredID string) NodeId {
	if declaredID == "" {
		return 0
	}
	h := djb2Hash(declaredID)
	if h == 0 {
		h = 1
	}
	return NodeId(h)
}

// NodeIdAllocator assigns monotonically increasing NodeIds, starting from 1
// (§4.2 NodeId assignment). The parser draws every node's id from it,
// anonymous or not. One allocator is scoped to a single parse.
type NodeIdAllocator struct {
	next uint64
}

// NewNodeIdAllocator creates an allocator whose first id is 1.
func NewNodeIdAllocator() *NodeIdAllocator {
	return &NodeIdAllocator{next: 1}
}

// Next returns the next NodeId and advances the cursor.
func (a *NodeIdAllocator) Next() NodeId {
	id := a.next
	a.next++
	return NodeId(id)
}

// PaintKey uniquely identifies a fill style for scheduler deduplication
// (§4.4). Two PaintKeys are Eql-equal iff every field is equal.
type PaintKey struct {
	Color Color
}

// Eql reports whether p and other describe the same paint.
func (p PaintKey) Eql(other PaintKey) bool {
	return p == other
}

// ClipKey uniquely identifies a clip region for scheduler deduplication.
type ClipKey struct {
	Bounds Bounds
}

// Eql reports whether c and other describe the same clip region.
func (c ClipKey) Eql(other ClipKey) bool {
	return c == other
}
