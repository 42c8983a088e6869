package ir

import swen "github.com/mirror-shades/swen"

// InstrKind tags an IRInstruction's variant (§4.4).
type InstrKind uint8

const (
	InstrDrawRect InstrKind = iota
	InstrDrawText
	InstrPushState
	InstrPopState
	InstrSetTransform
	InstrBeginClip
	InstrEndClip
	InstrBeginCacheGroup
	InstrEndCacheGroup
	InstrTileHint
	InstrTileBoundary
	InstrNop
)

func (k InstrKind) String() string {
	switch k {
	case InstrDrawRect:
		return "draw_rect"
	case InstrDrawText:
		return "draw_text"
	case InstrPushState:
		return "push_state"
	case InstrPopState:
		return "pop_state"
	case InstrSetTransform:
		return "set_transform"
	case InstrBeginClip:
		return "begin_clip"
	case InstrEndClip:
		return "end_clip"
	case InstrBeginCacheGroup:
		return "begin_cache_group"
	case InstrEndCacheGroup:
		return "end_cache_group"
	case InstrTileHint:
		return "tile_hint"
	case InstrTileBoundary:
		return "tile_boundary"
	default:
		return "nop"
	}
}

// TextRef is either an inlined text body (≤64 bytes) or an index into a
// backend-owned interning table for longer bodies (§4.4 TextRef).
type TextRef struct {
	Interned bool
	Inline   [64]byte
	Len      uint8
	Index    uint32
}

const maxInlineTextBytes = 64

// NewTextRef builds a TextRef for body, inlining it when it fits and
// otherwise asking intern for an index (the interning table itself is a
// backend concern, per §4.4). A nil intern falls back to a truncated
// inline body rather than panicking, since a caller that never produces
// long bodies has no reason to supply one.
func NewTextRef(body string, intern func(string) uint32) TextRef {
	if len(body) <= maxInlineTextBytes || intern == nil {
		var ref TextRef
		n := copy(ref.Inline[:], body)
		ref.Len = uint8(n)
		return ref
	}
	return TextRef{Interned: true, Index: intern(body)}
}

// TileCoord identifies a TILE_SIZE-pixel tile in the scheduler's grid
// (§4.4 tile_boundary, §4.5).
type TileCoord struct {
	X, Y uint16
}

// IRInstruction is the tagged union of lowered drawing/state operations
// (§4.4). A single struct carries every variant's fields, following the
// same flat-union shape a render command stream uses when dispatch is by
// tag rather than by Go interface (cheap to bin/sort in the scheduler
// without a type switch per element).
type IRInstruction struct {
	Kind InstrKind

	// draw_rect / draw_text
	NodeID       swen.NodeId
	Bounds       swen.Bounds
	PaintKey     swen.PaintKey
	CornerRadius uint16
	TextRef      TextRef
	TextSize     uint16

	// set_transform
	Matrix swen.Matrix

	// begin_clip / end_clip
	ClipID   uint32
	ClipKey  swen.ClipKey

	// begin_cache_group / end_cache_group
	GroupID     uint32
	ContentHash uint64

	// tile_hint / tile_boundary
	StartTile TileCoord
	EndTile   TileCoord
	Tile      TileCoord
}
