// Package backend defines the compositor's consumer-facing contract: the
// Backend interface a GPU/software renderer implements, and the
// compile-time-polymorphic Renderer wrapper that drives lowering,
// scheduling, and submission (§4.6).
package backend

import (
	"github.com/mirror-shades/swen/tile"
)

// Capabilities is a self-reported flag bundle; the core never assumes a
// capability a backend hasn't advertised (§4.6).
type Capabilities struct {
	TileRendering     bool
	IncrementalUpdate bool
	ComputeShaders    bool
	TileCaching       bool
	HardwareClip      bool
}

// FrameResult reports what a backend did with one submitted snapshot
// (§4.6).
type FrameResult struct {
	SubmitTimeNs   int64
	GPUTimeNs      int64
	DrawCalls      int
	TilesRendered  int
	TilesCached    int
	GPUMemoryBytes int64
}

// Backend is the runtime-polymorphic form of §4.6: a handle over an
// opaque renderer implementation. Submit consumes a FrameSnapshot valid
// only for the duration of the call (§5 FrameSnapshot contract).
type Backend interface {
	Submit(snapshot *tile.FrameSnapshot) (FrameResult, error)
	Present() error
	Capabilities() Capabilities
	Resize(width, height int32) error
	InvalidateCache() error
	Deinit() error
}
