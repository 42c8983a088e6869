package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"

	swen "github.com/mirror-shades/swen"
	"github.com/mirror-shades/swen/backend"
	"github.com/mirror-shades/swen/ir"
	"github.com/mirror-shades/swen/tile"
)

// RunConfig mirrors willow's RunConfig (scene.go): the minimal window
// parameters a host needs to hand to ebiten.RunGame.
type RunConfig struct {
	Title         string
	Width, Height int
}

// Game implements ebiten.Game by driving a backend.Renderer over a fixed
// Desktop each frame, the way willow's gameShell drives a Scene.
type Game struct {
	desktop  *swen.Desktop
	renderer *backend.Renderer[*Backend]
	cfg      RunConfig
}

// NewGame builds a Game that renders desktop every frame through one
// Backend, created here and reused, at the given viewport size.
func NewGame(desktop *swen.Desktop, cfg RunConfig) *Game {
	eb := New(int32(tile.DefaultConfig().TileSize))
	renderer := backend.NewRenderer[*Backend](eb, ir.DefaultMaxIRInstructions, tile.DefaultConfig(), nil)
	return &Game{desktop: desktop, renderer: renderer, cfg: cfg}
}

func (g *Game) Update() error {
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Backend.Bind(screen)
	w := int32(g.cfg.Width)
	h := int32(g.cfg.Height)
	if w == 0 {
		w = int32(g.desktop.Size.X)
	}
	if h == 0 {
		h = int32(g.desktop.Size.Y)
	}
	if _, err := g.renderer.RenderDesktop(g.desktop, w, h); err != nil {
		// A render failure leaves the prior frame's pixels on screen; the
		// host is responsible for surfacing the error via logging.
		return
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.cfg.Width, g.cfg.Height
	if w == 0 {
		w = int(g.desktop.Size.X)
	}
	if h == 0 {
		h = int(g.desktop.Size.Y)
	}
	return w, h
}

// Run configures the window and calls ebiten.RunGame, mirroring willow.Run.
func Run(desktop *swen.Desktop, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = int(desktop.Size.X)
	}
	if h == 0 {
		h = int(desktop.Size.Y)
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	return ebiten.RunGame(NewGame(desktop, cfg))
}
