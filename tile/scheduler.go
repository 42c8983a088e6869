package tile

import (
	"sort"

	swen "github.com/mirror-shades/swen"
	"github.com/mirror-shades/swen/ir"
)

// TileScheduler runs the four ordered phases (Bin, Sort, Merge, Classify)
// that turn a lowered IR stream into a FrameSnapshot (§4.5). One scheduler
// instance owns its arenas across frames, reset between schedules.
type TileScheduler struct {
	cfg Config

	tileWork     []TileWork
	segments     []Segment
	paintTable   []swen.PaintKey
	clipTable    []swen.ClipKey
	dirtyRegions []DirtyRegion

	viewportW, viewportH int32
	stats                FrameStats
}

// NewTileScheduler creates a scheduler bounded by cfg.
func NewTileScheduler(cfg Config) *TileScheduler {
	return &TileScheduler{
		cfg:        cfg,
		tileWork:   make([]TileWork, 0, cfg.MaxTilesPerFrame),
		paintTable: make([]swen.PaintKey, 0, cfg.PaintTableCap),
		clipTable:  make([]swen.ClipKey, 0, cfg.ClipTableCap),
		dirtyRegions: make([]DirtyRegion, 0, cfg.DirtyRegionsCap),
	}
}

// Reset clears every per-frame arena and records the new viewport size
// (§5: "TileScheduler.reset"). Call before MarkDirty/Schedule for a frame.
func (s *TileScheduler) Reset(viewportW, viewportH int32) {
	s.tileWork = s.tileWork[:0]
	s.segments = s.segments[:0]
	s.paintTable = s.paintTable[:0]
	s.clipTable = s.clipTable[:0]
	s.dirtyRegions = s.dirtyRegions[:0]
	s.viewportW = viewportW
	s.viewportH = viewportH
	s.stats = FrameStats{}
}

// MarkDirty appends a DirtyRegion, silently dropping entries past the
// bounded capacity (§4.5: "overflow silently drops additional entries;
// dirty-rect optimization is a hint, not a correctness invariant").
func (s *TileScheduler) MarkDirty(bounds swen.Bounds, sourceNode swen.NodeId, frame uint64) {
	if len(s.dirtyRegions) >= s.cfg.DirtyRegionsCap {
		return
	}
	s.dirtyRegions = append(s.dirtyRegions, DirtyRegion{Bounds: bounds, SourceNode: sourceNode, Frame: frame})
}

// internPaint returns key's index in the dedup table, adding it if absent
// (§4.5 Phase 1, §8 property 9).
func (s *TileScheduler) internPaint(key swen.PaintKey) (uint16, error) {
	for i, existing := range s.paintTable {
		if existing.Eql(key) {
			return uint16(i), nil
		}
	}
	if len(s.paintTable) >= s.cfg.PaintTableCap {
		return 0, newScheduleError(ErrPaintTableOverflow, "paint table exceeds %d entries", s.cfg.PaintTableCap)
	}
	s.paintTable = append(s.paintTable, key)
	return uint16(len(s.paintTable) - 1), nil
}

// internClip mirrors internPaint for the clip table. The core's lowering
// never emits begin_clip from the current Node variant set (there is no
// Clip node, §9 Open Question a), and bin does not call it, so nothing in
// the scheduler reaches it; no test calls it either.
func (s *TileScheduler) internClip(key swen.ClipKey) (uint16, error) {
	for i, existing := range s.clipTable {
		if existing.Eql(key) {
			return uint16(i), nil
		}
	}
	if len(s.clipTable) >= s.cfg.ClipTableCap {
		return 0, newScheduleError(ErrClipTableOverflow, "clip table exceeds %d entries", s.cfg.ClipTableCap)
	}
	s.clipTable = append(s.clipTable, key)
	return uint16(len(s.clipTable) - 1), nil
}

// bin implements Phase 1 (§4.5). Only draw_rect/draw_text instructions
// produce TileWork; state/clip/cache-hint instructions are ignored here.
func (s *TileScheduler) bin(instructions []ir.IRInstruction) error {
	for zOrder, instr := range instructions {
		if instr.Kind != ir.InstrDrawRect && instr.Kind != ir.InstrDrawText {
			continue
		}
		b := instr.Bounds
		start := FromPixel(b.X, b.Y, s.cfg.TileSize)
		end := FromPixel(b.X+b.Width-1, b.Y+b.Height-1, s.cfg.TileSize)
		paintIdx, err := s.internPaint(instr.PaintKey)
		if err != nil {
			return err
		}
		for ty := start.Y; ty <= end.Y; ty++ {
			for tx := start.X; tx <= end.X; tx++ {
				if len(s.tileWork) >= s.cfg.MaxTilesPerFrame {
					return newScheduleError(ErrTileBufferOverflow, "tile work exceeds %d records", s.cfg.MaxTilesPerFrame)
				}
				tileX := int32(tx) * s.cfg.TileSize
				tileY := int32(ty) * s.cfg.TileSize
				solid := b.X <= tileX && b.Y <= tileY &&
					b.X+b.Width >= tileX+s.cfg.TileSize && b.Y+b.Height >= tileY+s.cfg.TileSize
				class := ClassEdge
				if solid {
					class = ClassSolid
				}
				s.tileWork = append(s.tileWork, TileWork{
					Coord:          TileCoord{X: tx, Y: ty},
					Classification: class,
					SolidColor:     instr.PaintKey.Color,
					PaintIndex:     paintIdx,
					ZOrder:         uint16(zOrder),
				})
			}
		}
	}
	return nil
}

// sortTileWork implements Phase 2: stable sort by (coord.pack(), z_order)
// for cache-coherent GPU access order (§4.5 Phase 2).
func (s *TileScheduler) sortTileWork() {
	sort.SliceStable(s.tileWork, func(i, j int) bool {
		pi, pj := s.tileWork[i].Coord.Pack(), s.tileWork[j].Coord.Pack()
		if pi != pj {
			return pi < pj
		}
		return s.tileWork[i].ZOrder < s.tileWork[j].ZOrder
	})
}

// mergeTileWork implements Phase 3: a single linear pass collapsing
// consecutive same-coordinate solid-opaque tiles into the later one
// (§4.5 Phase 3, §8 property 8).
func (s *TileScheduler) mergeTileWork() {
	merged := s.tileWork[:0:0]
	for _, w := range s.tileWork {
		if n := len(merged); n > 0 {
			last := merged[n-1]
			if last.Coord == w.Coord && last.Classification == ClassSolid &&
				w.Classification == ClassSolid && w.SolidColor.IsOpaque() {
				merged[n-1] = w
				continue
			}
		}
		merged = append(merged, w)
	}
	s.tileWork = merged
}

// classify implements Phase 4: per-classification tile counts (§4.5 Phase 4).
func (s *TileScheduler) classify() FrameStats {
	stats := FrameStats{TotalTiles: len(s.tileWork), TotalSegments: len(s.segments)}
	for _, w := range s.tileWork {
		if w.Classification == ClassSolid {
			stats.SolidTiles++
		} else {
			stats.EdgeTiles++
		}
	}
	return stats
}

// Schedule runs all four phases over instructions and builds the frame's
// snapshot (§4.5 Output). Call Reset first to set the viewport and clear
// dirty regions accumulated for this frame; Schedule itself clears only
// the tile/segment/paint/clip arenas it rebuilds.
func (s *TileScheduler) Schedule(instructions []ir.IRInstruction, frameNumber uint64) (*FrameSnapshot, error) {
	s.tileWork = s.tileWork[:0]
	s.segments = s.segments[:0]
	s.paintTable = s.paintTable[:0]
	s.clipTable = s.clipTable[:0]

	if err := s.bin(instructions); err != nil {
		return nil, err
	}
	s.sortTileWork()
	s.mergeTileWork()
	s.stats = s.classify()

	return &FrameSnapshot{
		FrameNumber:    frameNumber,
		ViewportWidth:  s.viewportW,
		ViewportHeight: s.viewportH,
		TilesX:         ceilDiv(s.viewportW, s.cfg.TileSize),
		TilesY:         ceilDiv(s.viewportH, s.cfg.TileSize),
		TileWork:       s.tileWork,
		Segments:       s.segments,
		PaintTable:     s.paintTable,
		ClipTable:      s.clipTable,
		DirtyRegions:   s.dirtyRegions,
		Stats:          s.stats,
	}, nil
}
