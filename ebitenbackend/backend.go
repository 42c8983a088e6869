// Package ebitenbackend is a reference Backend implementation (§4.6) that
// paints a scheduled frame's TileWork records as colored rects via
// Ebitengine, the way willow's gameShell submits a Scene to an
// *ebiten.Image (scene.go).
package ebitenbackend

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	swen "github.com/mirror-shades/swen"
	"github.com/mirror-shades/swen/backend"
	"github.com/mirror-shades/swen/tile"
)

// Backend paints tile work directly onto an Ebitengine screen image. It
// holds no GPU resources of its own: tiles are filled with
// vector.DrawFilledRect, and the cache map is never populated.
type Backend struct {
	tileSize int32
	screen   *ebiten.Image
	cache    map[uint32]*ebiten.Image // reserved for future tile caching (Capabilities.TileCaching is false)
}

// New creates a Backend that paints TileSize-pixel tiles.
func New(tileSize int32) *Backend {
	return &Backend{tileSize: tileSize, cache: make(map[uint32]*ebiten.Image)}
}

// Bind sets the ebiten.Image the next Submit call draws into. The host's
// ebiten.Game.Draw implementation calls this once per frame before handing
// control to the Renderer (mirroring gameShell.Draw's screen parameter).
func (b *Backend) Bind(screen *ebiten.Image) {
	b.screen = screen
}

// Submit paints every solid/edge tile in snapshot as a filled rect. Edge
// tiles are painted with their classification's solid color placeholder
// since segment rasterization is not yet implemented (§9 Open Question b);
// this backend is a reference/demo target, not a production rasterizer.
func (b *Backend) Submit(snapshot *tile.FrameSnapshot) (backend.FrameResult, error) {
	start := time.Now()
	if b.screen == nil {
		return backend.FrameResult{}, nil
	}

	drawCalls := 0
	for _, tw := range snapshot.TileWork {
		x := float32(tw.Coord.X) * float32(b.tileSize)
		y := float32(tw.Coord.Y) * float32(b.tileSize)
		size := float32(b.tileSize)
		c := tw.SolidColor
		if int(tw.PaintIndex) < len(snapshot.PaintTable) {
			c = snapshot.PaintTable[tw.PaintIndex].Color
		}
		vector.DrawFilledRect(b.screen, x, y, size, size, toNRGBA(c), false)
		drawCalls++
	}

	return backend.FrameResult{
		SubmitTimeNs:  time.Since(start).Nanoseconds(),
		DrawCalls:     drawCalls,
		TilesRendered: len(snapshot.TileWork),
	}, nil
}

// Present is a no-op: Ebitengine presents the screen image itself once
// ebiten.Game.Draw returns.
func (b *Backend) Present() error {
	return nil
}

// Capabilities reports what this reference backend actually does: no tile
// caching, no hardware clip, no compute path.
func (b *Backend) Capabilities() backend.Capabilities {
	return backend.Capabilities{TileRendering: true}
}

// Resize is a no-op; this backend reads tile coordinates directly from the
// snapshot and has no viewport-sized resources to reallocate.
func (b *Backend) Resize(width, height int32) error {
	return nil
}

// InvalidateCache clears the (currently unused) tile image cache.
func (b *Backend) InvalidateCache() error {
	for k := range b.cache {
		delete(b.cache, k)
	}
	return nil
}

// Deinit releases the cache map.
func (b *Backend) Deinit() error {
	b.cache = nil
	return nil
}

func toNRGBA(c swen.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
