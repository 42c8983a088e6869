package ir

import swen "github.com/mirror-shades/swen"

// DefaultMaxIRInstructions bounds a single frame's instruction stream
// (§4.4 Overflow: "Exceeds MAX_IR_INSTRUCTIONS -> IRBufferOverflow").
const DefaultMaxIRInstructions = 1 << 16

// MaxClipDepth bounds nested begin_clip calls (§4.4: "Clip depth is
// bounded to 32").
const MaxClipDepth = 32

// IRBuffer is the bounded, ordered instruction stream a single lowering
// pass writes into (§4.4, §5 "Shared resources"). Its internal state
// stack (state_depth, clip_stack, clip_depth) is private; only the
// lowerer mutates it directly, matching §5's ownership rule.
type IRBuffer struct {
	instructions []IRInstruction
	capacity     int
	frameNumber  uint64

	stateDepth int

	clipStack  []uint32
	nextClipID uint32

	nextGroupID uint32
}

// NewIRBuffer creates a buffer bounded at capacity instructions.
func NewIRBuffer(capacity int) *IRBuffer {
	return &IRBuffer{instructions: make([]IRInstruction, 0, capacity), capacity: capacity}
}

// FrameNumber reports the current frame counter, incremented by NextFrame.
func (b *IRBuffer) FrameNumber() uint64 { return b.frameNumber }

// StateDepth reports the number of unmatched push_state calls.
func (b *IRBuffer) StateDepth() int { return b.stateDepth }

// ClipDepth reports the number of unmatched begin_clip calls.
func (b *IRBuffer) ClipDepth() int { return len(b.clipStack) }

// Instructions returns the instruction stream written so far this frame.
// The returned slice aliases the buffer's storage and is only valid until
// the next NextFrame/append call (§5 FrameSnapshot contract).
func (b *IRBuffer) Instructions() []IRInstruction { return b.instructions }

// NextFrame increments the frame counter and resets all per-frame state
// (§4.4: "lower_desktop calls next_frame() on the IRBuffer").
func (b *IRBuffer) NextFrame() {
	b.frameNumber++
	b.instructions = b.instructions[:0]
	b.stateDepth = 0
	b.clipStack = b.clipStack[:0]
}

func (b *IRBuffer) append(instr IRInstruction) error {
	if len(b.instructions) >= b.capacity {
		return newLowerError(ErrIRBufferOverflow, "instruction stream exceeds bounded capacity %d", b.capacity)
	}
	b.instructions = append(b.instructions, instr)
	return nil
}

// PushState emits push_state and increments the state-stack depth.
func (b *IRBuffer) PushState() error {
	if err := b.append(IRInstruction{Kind: InstrPushState}); err != nil {
		return err
	}
	b.stateDepth++
	return nil
}

// PopState emits pop_state, failing with StateStackUnderflow if no
// push_state is outstanding (§4.4 Overflow).
func (b *IRBuffer) PopState() error {
	if b.stateDepth == 0 {
		return newLowerError(ErrStateStackUnderflow, "pop_state with no matching push_state")
	}
	if err := b.append(IRInstruction{Kind: InstrPopState}); err != nil {
		return err
	}
	b.stateDepth--
	return nil
}

// SetTransform emits set_transform{matrix}.
func (b *IRBuffer) SetTransform(m swen.Matrix) error {
	return b.append(IRInstruction{Kind: InstrSetTransform, Matrix: m})
}

// BeginClip emits begin_clip, bounded at MaxClipDepth (§4.4).
func (b *IRBuffer) BeginClip(bounds swen.Bounds, key swen.ClipKey) (uint32, error) {
	if len(b.clipStack) >= MaxClipDepth {
		return 0, newLowerError(ErrClipStackOverflow, "clip depth exceeds %d", MaxClipDepth)
	}
	id := b.nextClipID
	b.nextClipID++
	if err := b.append(IRInstruction{Kind: InstrBeginClip, ClipID: id, Bounds: bounds, ClipKey: key}); err != nil {
		return 0, err
	}
	b.clipStack = append(b.clipStack, id)
	return id, nil
}

// EndClip emits end_clip, failing with ClipStackUnderflow if no begin_clip
// is outstanding.
func (b *IRBuffer) EndClip() error {
	n := len(b.clipStack)
	if n == 0 {
		return newLowerError(ErrClipStackUnderflow, "end_clip with no matching begin_clip")
	}
	id := b.clipStack[n-1]
	if err := b.append(IRInstruction{Kind: InstrEndClip, ClipID: id}); err != nil {
		return err
	}
	b.clipStack = b.clipStack[:n-1]
	return nil
}

// BeginCacheGroup / EndCacheGroup bracket a retained-content region.
func (b *IRBuffer) BeginCacheGroup(bounds swen.Bounds, contentHash uint64) (uint32, error) {
	id := b.nextGroupID
	b.nextGroupID++
	return id, b.append(IRInstruction{Kind: InstrBeginCacheGroup, GroupID: id, Bounds: bounds, ContentHash: contentHash})
}

func (b *IRBuffer) EndCacheGroup(groupID uint32) error {
	return b.append(IRInstruction{Kind: InstrEndCacheGroup, GroupID: groupID})
}

// DrawRect emits draw_rect.
func (b *IRBuffer) DrawRect(nodeID swen.NodeId, bounds swen.Bounds, paint swen.PaintKey, cornerRadius uint16) error {
	return b.append(IRInstruction{Kind: InstrDrawRect, NodeID: nodeID, Bounds: bounds, PaintKey: paint, CornerRadius: cornerRadius})
}

// DrawText emits draw_text.
func (b *IRBuffer) DrawText(nodeID swen.NodeId, bounds swen.Bounds, ref TextRef, paint swen.PaintKey, textSize uint16) error {
	return b.append(IRInstruction{Kind: InstrDrawText, NodeID: nodeID, Bounds: bounds, PaintKey: paint, TextRef: ref, TextSize: textSize})
}

// TileHint emits tile_hint{start_tile, end_tile}.
func (b *IRBuffer) TileHint(start, end TileCoord) error {
	return b.append(IRInstruction{Kind: InstrTileHint, StartTile: start, EndTile: end})
}

// TileBoundary emits tile_boundary(coord).
func (b *IRBuffer) TileBoundary(coord TileCoord) error {
	return b.append(IRInstruction{Kind: InstrTileBoundary, Tile: coord})
}

// Nop emits a no-op instruction.
func (b *IRBuffer) Nop() error {
	return b.append(IRInstruction{Kind: InstrNop})
}
