package tile

import swen "github.com/mirror-shades/swen"

// TileCoord identifies a TileSize-pixel tile in the frame's grid (§4.5).
type TileCoord struct {
	X, Y uint16
}

// FromPixel maps a pixel coordinate to the tile that contains it, using
// floor division clamped to zero (§4.5: "from_pixel(px, py) = (max(0,
// px/TILE_SIZE), max(0, py/TILE_SIZE))"). Go's truncating integer division
// already lands on 0 for every negative input the max(0, ...) clamp would
// also send to 0, so no separate floor adjustment is needed.
func FromPixel(px, py, tileSize int32) TileCoord {
	x := px / tileSize
	if x < 0 {
		x = 0
	}
	y := py / tileSize
	if y < 0 {
		y = 0
	}
	return TileCoord{X: uint16(x), Y: uint16(y)}
}

// Pack returns the sort key used by the scheduler's Sort phase (§4.5:
// "pack(coord) = (y<<16) | x").
func (c TileCoord) Pack() uint32 {
	return (uint32(c.Y) << 16) | uint32(c.X)
}

// Classification distinguishes a tile fully covered by its source rect
// from one only partially covered (§4.5 Phase 1).
type Classification uint8

const (
	ClassSolid Classification = iota
	ClassEdge
)

func (c Classification) String() string {
	if c == ClassSolid {
		return "solid"
	}
	return "edge"
}

// TileWork is a single tile's GPU work record (§6 binary layout).
type TileWork struct {
	Coord           TileCoord
	Classification  Classification
	SolidColor      swen.Color
	SegmentStart    uint32
	SegmentCount    uint16
	ClipIndex       uint16
	PaintIndex      uint16
	ZOrder          uint16
}

// Segment is a path-rasterizer edge in tile-local 8.8 fixed point (§6).
// Edge-tile segment emission is reserved (§9 Open Question b): the scheduler
// writes no entries to the Segments arena and leaves every TileWork's
// SegmentStart and SegmentCount at zero.
type Segment struct {
	X0, Y0, X1, Y1 int16
	Winding        int8
}

// DirtyRegion records a changed bounds for a frame, for backends that want
// to avoid a full-frame redraw (§4.5 Dirty tracking).
type DirtyRegion struct {
	Bounds     swen.Bounds
	SourceNode swen.NodeId
	Frame      uint64
}

// FrameStats summarizes a scheduled frame (§4.5 Phase 4).
type FrameStats struct {
	SolidTiles   int
	EdgeTiles    int
	TotalTiles   int
	TotalSegments int
}

// FrameSnapshot is the immutable, per-frame view a backend consumes (§4.5,
// §6). Every slice aliases the scheduler's internal arenas and is valid
// only until the next Reset/Schedule call (§5).
type FrameSnapshot struct {
	FrameNumber     uint64
	ViewportWidth   int32
	ViewportHeight  int32
	TilesX, TilesY  int32

	TileWork     []TileWork
	Segments     []Segment
	PaintTable   []swen.PaintKey
	ClipTable    []swen.ClipKey
	DirtyRegions []DirtyRegion

	Stats FrameStats
}

func ceilDiv(a, b int32) int32 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
