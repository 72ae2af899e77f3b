package app

import (
	"fmt"

	"oledcaster/internal/core"
	"oledcaster/internal/display"
	"oledcaster/internal/player"
	"oledcaster/internal/raycast"
	"oledcaster/internal/texture"
	"oledcaster/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Session owns everything needed to produce panel frames for one level:
// the renderer, the player steering its camera and both buffers.
type Session struct {
	Level    *core.Level
	Renderer *raycast.Renderer
	Player   *player.Player
	Frame    *display.FrameBuffer
	Panel    *display.PhysicalBuffer

	ShowFPS bool
	frames  uint64
}

// NewSession loads the configured level and builds a renderer for it.
func NewSession(cfg *Config) (*Session, error) {
	opts, err := cfg.LevelOptions()
	if err != nil {
		return nil, err
	}
	level, err := core.LoadLevel(cfg.Level, opts)
	if err != nil {
		return nil, err
	}
	rc := cfg.RenderConfig()
	textures, err := texture.Builtin(rc.TextureSize, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("build textures: %w", err)
	}
	if cfg.Textures != "" {
		codes, err := texture.LoadDir(textures, cfg.Textures)
		if err != nil {
			return nil, fmt.Errorf("load textures: %w", err)
		}
		logger.Log.WithFields(logrus.Fields{"dir": cfg.Textures, "codes": codes}).Info("textures loaded")
	}
	r, err := raycast.NewRenderer(rc, level.Grid, textures)
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}
	fb, pb, err := r.NewBuffers()
	if err != nil {
		return nil, err
	}
	p := player.New(level)
	p.Apply(r.Camera())

	logger.Log.WithFields(logrus.Fields{
		"level":  level.Name,
		"grid":   fmt.Sprintf("%dx%d", level.Grid.W, level.Grid.H),
		"panel":  fmt.Sprintf("%dx%d", rc.Width, rc.Height),
		"dither": rc.Dither,
	}).Info("session ready")

	return &Session{
		Level:    level,
		Renderer: r,
		Player:   p,
		Frame:    fb,
		Panel:    pb,
		ShowFPS:  cfg.FPS,
	}, nil
}

// Step moves the player by in over dt seconds and draws a frame.
func (s *Session) Step(in player.Input, dt float64) {
	s.Player.Update(in, dt)
	s.Player.Apply(s.Renderer.Camera())
	s.Draw(dt)
}

// Follow advances tour by dt seconds and moves the player and camera to
// its pose. It reports whether the tour has finished.
func (s *Session) Follow(tour *player.Tour, dt float64) bool {
	pose, done := tour.Update(float32(dt))
	s.Player.SetPose(pose)
	s.Player.Apply(s.Renderer.Camera())
	return done
}

// Draw renders the current camera into Frame and packs it into Panel. dt
// only feeds the frame-time ruler.
func (s *Session) Draw(dt float64) {
	s.Renderer.Render(s.Frame)
	if s.ShowFPS {
		display.DrawFPS(s.Frame, dt)
	}
	s.Renderer.Present(s.Frame, s.Panel)
	s.frames++
}

// Frames returns the number of frames drawn so far.
func (s *Session) Frames() uint64 { return s.frames }
