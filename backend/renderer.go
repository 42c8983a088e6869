package backend

import (
	swen "github.com/mirror-shades/swen"
	"github.com/mirror-shades/swen/ir"
	"github.com/mirror-shades/swen/tile"
)

// Renderer is the compile-time-polymorphic wrapper of §4.6: it owns a
// backend of static type B, an IRBuffer, and a TileScheduler, and drives
// lowering -> scheduling -> submission for one Desktop per call.
type Renderer[B Backend] struct {
	Backend   B
	irBuffer  *ir.IRBuffer
	scheduler *tile.TileScheduler
	intern    ir.InternFunc
}

// NewRenderer creates a Renderer over b, bounding its IR buffer at
// irCapacity instructions and its tile scheduler per schedCfg.
func NewRenderer[B Backend](b B, irCapacity int, schedCfg tile.Config, intern ir.InternFunc) *Renderer[B] {
	return &Renderer[B]{
		Backend:   b,
		irBuffer:  ir.NewIRBuffer(irCapacity),
		scheduler: tile.NewTileScheduler(schedCfg),
		intern:    intern,
	}
}

// RenderDesktop lowers desktop, schedules it against viewportW x
// viewportH, and submits the resulting snapshot to the backend (§4.6
// "render_desktop(desktop) -> FrameResult").
func (r *Renderer[B]) RenderDesktop(desktop *swen.Desktop, viewportW, viewportH int32) (FrameResult, error) {
	if err := ir.Lower(desktop, r.irBuffer, r.intern); err != nil {
		return FrameResult{}, err
	}
	r.scheduler.Reset(viewportW, viewportH)
	snapshot, err := r.scheduler.Schedule(r.irBuffer.Instructions(), r.irBuffer.FrameNumber())
	if err != nil {
		return FrameResult{}, err
	}
	return r.Backend.Submit(snapshot)
}

// MarkDirty forwards to the underlying scheduler so a host can accumulate
// dirty regions between RenderDesktop calls (§4.5 Dirty tracking).
func (r *Renderer[B]) MarkDirty(bounds swen.Bounds, sourceNode swen.NodeId, frame uint64) {
	r.scheduler.MarkDirty(bounds, sourceNode, frame)
}
