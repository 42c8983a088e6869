package backend

import (
	"testing"

	swen "github.com/mirror-shades/swen"
	"github.com/mirror-shades/swen/ir"
	"github.com/mirror-shades/swen/parser"
	"github.com/mirror-shades/swen/tile"
)

type fakeBackend struct {
	submitted *tile.FrameSnapshot
}

func (b *fakeBackend) Submit(snapshot *tile.FrameSnapshot) (FrameResult, error) {
	b.submitted = snapshot
	return FrameResult{DrawCalls: len(snapshot.TileWork)}, nil
}
func (b *fakeBackend) Present() error                 { return nil }
func (b *fakeBackend) Capabilities() Capabilities     { return Capabilities{TileRendering: true} }
func (b *fakeBackend) Resize(w, h int32) error        { return nil }
func (b *fakeBackend) InvalidateCache() error         { return nil }
func (b *fakeBackend) Deinit() error                  { return nil }

func TestRendererRenderDesktop(t *testing.T) {
	root, err := parser.Parse([]byte(`root { desktop { size (32,32)
		nodes [ rect { size (16,16) position (0,0) background (1,2,3,255) } ]
	} system {} }`), parser.DefaultConfig())
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	fb := &fakeBackend{}
	r := NewRenderer[*fakeBackend](fb, ir.DefaultMaxIRInstructions, tile.DefaultConfig(), nil)
	result, err := r.RenderDesktop(root.Desktop, 32, 32)
	if err != nil {
		t.Fatalf("RenderDesktop error: %v", err)
	}
	if result.DrawCalls != 1 {
		t.Errorf("draw calls = %d, want 1", result.DrawCalls)
	}
	if fb.submitted == nil {
		t.Fatal("backend never received a snapshot")
	}
}
