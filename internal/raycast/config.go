// Package raycast turns a camera pose and a grid of wall codes into a
// textured first-person intensity image, one screen column per ray.
package raycast

import (
	"fmt"
	"math"

	"oledcaster/internal/core"
	"oledcaster/internal/texture"
)

// Defaults for the 128x64 monochrome panel.
const (
	DefaultWidth        = 128
	DefaultHeight       = 64
	DefaultFOV          = math.Pi / 3
	DefaultClipDistance = 1.0
)

// Config is the programmatic configuration surface of the renderer.
type Config struct {
	Width  int
	Height int

	// TextureSize is the edge length of every wall texture.
	TextureSize int

	FOV          float64
	ClipDistance float64
	Dither       bool

	// MirrorX looks cells up at (gridWidth-1-x, y). Some asset sets were
	// authored against a mirrored map; it is off by default.
	MirrorX bool
}

// DefaultConfig returns the configuration of the reference hardware.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		TextureSize:  texture.DefaultSize,
		FOV:          DefaultFOV,
		ClipDistance: DefaultClipDistance,
		Dither:       true,
	}
}

// Validate reports configuration that cannot produce a frame.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("display %dx%d: %w", c.Width, c.Height, core.ErrInvalidDimensions)
	}
	if c.TextureSize <= 0 {
		return fmt.Errorf("texture size %d: %w", c.TextureSize, texture.ErrTextureSize)
	}
	return nil
}
