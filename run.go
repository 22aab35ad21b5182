package swipemenu

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// whitePixel is a 1x1 white image used as the source for solid quads.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Background fills the screen before drawing. Nil leaves it black.
	Background color.Color
	// Draw renders the menu. Nil draws every camera target as a flat quad.
	Draw func(screen *ebiten.Image, m *Menu)
}

// Run opens a window and drives m at the game's tick rate until the window
// closes. It blocks and returns ebiten's error, if any.
func Run(m *Menu, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&menuGame{menu: m, cfg: cfg})
}

// menuGame adapts a Menu to ebiten.Game.
type menuGame struct {
	menu *Menu
	cfg  RunConfig

	fpsAcc  float64
	fpsText string
}

func (g *menuGame) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.menu.Update(dt)

	if g.cfg.ShowFPS {
		g.fpsAcc += dt
		if g.fpsAcc >= 0.5 || g.fpsText == "" {
			g.fpsAcc = 0
			g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	return nil
}

func (g *menuGame) Draw(screen *ebiten.Image) {
	if g.cfg.Background != nil {
		screen.Fill(g.cfg.Background)
	}
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen, g.menu)
	} else {
		DrawQuads(screen, g.menu)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, g.fpsText)
	}
	g.menu.flushScreenshots(screen)
}

func (g *menuGame) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// DrawQuads draws each of the menu camera's targets as a solid quad, far
// items first. The centred item is drawn brighter. It does nothing when the
// menu has no camera.
func DrawQuads(screen *ebiten.Image, m *Menu) {
	cam := m.Camera()
	if cam == nil {
		return
	}
	order := make([]*Node, 0, len(cam.Targets()))
	for _, n := range cam.Targets() {
		if n.IsActive() && !n.IsDisposed() {
			order = append(order, n)
		}
	}
	slices.SortStableFunc(order, func(a, b *Node) int {
		return cmp.Compare(b.WorldPosition().Z, a.WorldPosition().Z)
	})

	ctrl := m.Controller()
	verts := make([]ebiten.Vertex, 4)
	indices := []uint16{0, 1, 2, 0, 2, 3}
	for _, n := range order {
		quad, ok := cam.ScreenQuad(n)
		if !ok {
			continue
		}
		var r, g, b float32 = 0.35, 0.45, 0.6
		if s := ctrl.SlotForNode(n); s != nil && ctrl.IsCentred(s) {
			r, g, b = 0.9, 0.75, 0.3
		}
		for i, p := range quad.Points {
			verts[i] = ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: r, ColorG: g, ColorB: b, ColorA: 1,
			}
		}
		screen.DrawTriangles(verts, indices, whitePixel, nil)
	}
}
