//go:build ebiten

package app

import (
	"image/color"

	"oledcaster/internal/core"
	"oledcaster/internal/player"
	"oledcaster/internal/render"
	"oledcaster/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const keyHelp = "WASD/arrows move  T tour\nI intensity  G dither  F fps"

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.PanelPainter
	hud     *ui.HUD
	clock   *core.FrameClock
	tour    *player.Tour

	onColor   color.Color
	offColor  color.Color
	tint      color.RGBA
	intensity bool

	scale int
}

// New constructs a Game for the provided session.
func New(s *Session, scale int) *Game {
	size := s.Renderer.Size()
	return &Game{
		session:  s,
		painter:  render.NewPanelPainter(size.W, size.H),
		hud:      ui.NewHUD(s.Renderer, 220),
		clock:    core.NewFrameClock(),
		onColor:  color.RGBA{R: 140, G: 220, B: 255, A: 255},
		offColor: color.Black,
		tint:     color.RGBA{R: 140, G: 220, B: 255, A: 255},
		scale:    scale,
	}
}

// Update handles per-frame input and draws the next panel frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.intensity = !g.intensity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.session.ShowFPS = !g.session.ShowFPS
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		r := g.session.Renderer
		r.SetDither(!r.Dither())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if g.tour == nil {
			g.tour = player.DefaultTour(g.session.Level)
		} else {
			g.tour = nil
		}
	}

	if g.hud != nil {
		g.hud.Update(g.panelWidth())
	}

	dt := g.clock.Tick()
	if g.tour != nil {
		if g.session.Follow(g.tour, dt) {
			g.tour = nil
		}
		g.session.Draw(dt)
		return nil
	}
	g.session.Step(readInput(), dt)
	return nil
}

// Draw renders the current panel state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.intensity {
		g.painter.BlitIntensity(screen, g.session.Frame, g.tint, g.scale)
	} else {
		g.painter.Blit(screen, g.session.Panel, g.onColor, g.offColor, g.scale)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.panelWidth(), g.panelHeight())
		ebitenutil.DebugPrintAt(screen, keyHelp, g.panelWidth()+12, g.panelHeight()-40)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.panelWidth() + g.hud.Width(), g.panelHeight()
}

func (g *Game) panelWidth() int {
	w, _ := g.painter.Size()
	return w * g.scale
}

func (g *Game) panelHeight() int {
	_, h := g.painter.Size()
	return h * g.scale
}

func readInput() player.Input {
	return player.Input{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Backward: ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:     ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:    ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}
