package tile

import (
	"testing"

	swen "github.com/mirror-shades/swen"
	"github.com/mirror-shades/swen/ir"
)

func schedule(t *testing.T, instrs []ir.IRInstruction, viewportW, viewportH int32) (*TileScheduler, *FrameSnapshot) {
	t.Helper()
	s := NewTileScheduler(DefaultConfig())
	s.Reset(viewportW, viewportH)
	snap, err := s.Schedule(instrs, 1)
	if err != nil {
		t.Fatalf("Schedule error: %v", err)
	}
	return s, snap
}

func drawRect(b swen.Bounds, color swen.Color) ir.IRInstruction {
	return ir.IRInstruction{Kind: ir.InstrDrawRect, Bounds: b, PaintKey: swen.PaintKey{Color: color}}
}

func TestScheduleSingleAlignedTile(t *testing.T) {
	// S2
	_, snap := schedule(t, []ir.IRInstruction{
		drawRect(swen.Bounds{X: 0, Y: 0, Width: 16, Height: 16}, swen.Color{R: 255, A: 255}),
	}, 64, 64)
	if len(snap.TileWork) != 1 {
		t.Fatalf("got %d tile work records, want 1", len(snap.TileWork))
	}
	w := snap.TileWork[0]
	if w.Coord != (TileCoord{0, 0}) {
		t.Errorf("coord = %v, want (0,0)", w.Coord)
	}
	if w.Classification != ClassSolid {
		t.Errorf("classification = %v, want solid", w.Classification)
	}
	if len(snap.PaintTable) != 1 {
		t.Errorf("paint table length = %d, want 1", len(snap.PaintTable))
	}
}

func TestScheduleCrossTileRect(t *testing.T) {
	// S3
	_, snap := schedule(t, []ir.IRInstruction{
		drawRect(swen.Bounds{X: 0, Y: 0, Width: 32, Height: 32}, swen.Color{G: 255, A: 255}),
	}, 64, 64)
	if len(snap.TileWork) != 4 {
		t.Fatalf("got %d tile work records, want 4", len(snap.TileWork))
	}
	wantCoords := map[TileCoord]bool{{0, 0}: true, {1, 0}: true, {0, 1}: true, {1, 1}: true}
	for _, w := range snap.TileWork {
		if !wantCoords[w.Coord] {
			t.Errorf("unexpected coord %v", w.Coord)
		}
		if w.Classification != ClassSolid {
			t.Errorf("coord %v classification = %v, want solid", w.Coord, w.Classification)
		}
		delete(wantCoords, w.Coord)
	}
	if len(wantCoords) != 0 {
		t.Errorf("missing coords: %v", wantCoords)
	}
}

func TestScheduleOpaqueOverdrawMerge(t *testing.T) {
	// S4
	_, snapSingle := schedule(t, []ir.IRInstruction{
		drawRect(swen.Bounds{X: 0, Y: 0, Width: 16, Height: 16}, swen.Color{R: 1, A: 255}),
	}, 32, 32)
	_, snapStacked := schedule(t, []ir.IRInstruction{
		drawRect(swen.Bounds{X: 0, Y: 0, Width: 16, Height: 16}, swen.Color{R: 1, A: 255}),
		drawRect(swen.Bounds{X: 0, Y: 0, Width: 16, Height: 16}, swen.Color{R: 1, A: 255}),
	}, 32, 32)
	if len(snapStacked.TileWork) != len(snapSingle.TileWork) {
		t.Errorf("stacked tile count = %d, want %d (single)", len(snapStacked.TileWork), len(snapSingle.TileWork))
	}
}

func TestScheduleTileCoverageCorrectness(t *testing.T) {
	// §8 property 7
	b := swen.Bounds{X: 5, Y: 5, Width: 20, Height: 20}
	_, snap := schedule(t, []ir.IRInstruction{drawRect(b, swen.Color{A: 255})}, 64, 64)
	got := map[TileCoord]bool{}
	for _, w := range snap.TileWork {
		got[w.Coord] = true
	}
	want := map[TileCoord]bool{}
	for ty := int32(0); ty < 64/16; ty++ {
		for tx := int32(0); tx < 64/16; tx++ {
			tileBounds := swen.Bounds{X: tx * 16, Y: ty * 16, Width: 16, Height: 16}
			if b.Intersects(tileBounds) {
				want[TileCoord{X: uint16(tx), Y: uint16(ty)}] = true
			}
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %d covered tiles, want %d", len(got), len(want))
	}
	for coord := range want {
		if !got[coord] {
			t.Errorf("missing tile %v", coord)
		}
	}
}

func TestSchedulePaintDeduplication(t *testing.T) {
	// §8 property 9
	red := swen.Color{R: 255, A: 255}
	_, snap := schedule(t, []ir.IRInstruction{
		drawRect(swen.Bounds{X: 0, Y: 0, Width: 16, Height: 16}, red),
		drawRect(swen.Bounds{X: 16, Y: 0, Width: 16, Height: 16}, red),
	}, 64, 64)
	if len(snap.PaintTable) != 1 {
		t.Errorf("paint table length = %d, want 1 (deduplicated)", len(snap.PaintTable))
	}
}

func TestScheduleSnapshotImmutability(t *testing.T) {
	// §8 property 10
	s, snap := schedule(t, []ir.IRInstruction{
		drawRect(swen.Bounds{X: 0, Y: 0, Width: 16, Height: 16}, swen.Color{A: 255}),
	}, 64, 64)
	before := len(snap.TileWork)
	s.Reset(64, 64)
	if len(snap.TileWork) != before {
		t.Errorf("snapshot TileWork length changed after Reset: %d -> %d", before, len(snap.TileWork))
	}
}

func TestTileBufferOverflow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxTilesPerFrame = 1
	s := NewTileScheduler(cfg)
	s.Reset(64, 64)
	_, err := s.Schedule([]ir.IRInstruction{
		drawRect(swen.Bounds{X: 0, Y: 0, Width: 32, Height: 32}, swen.Color{A: 255}),
	}, 1)
	se, ok := err.(*ScheduleError)
	if !ok || se.Kind != ErrTileBufferOverflow {
		t.Fatalf("got %v, want TileBufferOverflow", err)
	}
}

func TestPaintTableOverflow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PaintTableCap = 1
	s := NewTileScheduler(cfg)
	s.Reset(64, 64)
	_, err := s.Schedule([]ir.IRInstruction{
		drawRect(swen.Bounds{X: 0, Y: 0, Width: 1, Height: 1}, swen.Color{R: 1, A: 255}),
		drawRect(swen.Bounds{X: 1, Y: 1, Width: 1, Height: 1}, swen.Color{R: 2, A: 255}),
	}, 1)
	se, ok := err.(*ScheduleError)
	if !ok || se.Kind != ErrPaintTableOverflow {
		t.Fatalf("got %v, want PaintTableOverflow", err)
	}
}

func TestMarkDirtyOverflowSilentlyDropped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DirtyRegionsCap = 1
	s := NewTileScheduler(cfg)
	s.Reset(64, 64)
	s.MarkDirty(swen.Bounds{}, 1, 1)
	s.MarkDirty(swen.Bounds{}, 2, 1) // dropped, no panic/error
	if len(s.dirtyRegions) != 1 {
		t.Errorf("dirty regions = %d, want 1", len(s.dirtyRegions))
	}
}
