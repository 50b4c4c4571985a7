//go:build ebiten

package app

import (
	"image/color"

	"gridcast/internal/render"
	"gridcast/internal/ui"
	"gridcast/pkg/raycast"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	fb      *render.Framebuffer
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale  int
	paused bool
}

// New constructs a Game for the provided session.
func New(s *Session, scale, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	cfg := s.Raycaster().Config()
	var hud *ui.HUD
	if hudWidth > 0 {
		hud = ui.NewHUD(hudWidth, s.Layout().Name)
	}
	return &Game{
		session: s,
		fb:      render.NewFramebuffer(cfg.ScreenWidth, cfg.ScreenHeight),
		painter: render.NewPainter(cfg.ScreenWidth, cfg.ScreenHeight),
		hud:     hud,
		overlay: ui.NewOverlay(6),
		scale:   scale,
	}
}

// Update handles per-tick input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if err := g.session.ToggleStrategy(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.session.Reset()
	}
	if g.overlay != nil {
		g.overlay.Update()
	}
	if !g.paused {
		g.session.Tick(readControls())
	}
	return nil
}

// Draw renders one frame and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.session.Render(g.fb)
	g.painter.Blit(screen, g.fb, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.session.Raycaster(), g.session.Player())
	}
	if g.hud != nil {
		w, h := g.viewSize()
		g.hud.Update(g.session.Snapshot())
		g.hud.Draw(screen, w, h)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.viewSize()
	if g.hud != nil {
		w += g.hud.Width()
	}
	return w, h
}

func (g *Game) viewSize() (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}

func readControls() raycast.Controls {
	return raycast.Controls{
		RotateLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		RotateRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Forward:     ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}
}
