package raycast

import (
	"oledcaster/internal/display"
	"oledcaster/internal/texture"
)

const (
	// axisYShade darkens faces hit across a horizontal grid line.
	axisYShade = 0.75
	// fogStart is the distance beyond which walls fade.
	fogStart = 3.0
	fogScale = 0.333
)

// Span is the vertical extent of one wall column on screen.
type Span struct {
	LineHeight int
	StartY     int
	EndY       int

	// Overscan is set when the wall fills the whole column; only the central
	// Visible fraction of the texture is then on screen.
	Overscan bool
	Visible  float64
}

// ProjectSpan returns the span of a wall at distance on a display
// displayHeight pixels tall. Walls closer than one unit are drawn at full
// height.
func ProjectSpan(distance float64, displayHeight int) Span {
	lineHeight := displayHeight
	if distance >= 1 {
		lineHeight = int(float64(displayHeight) / distance)
	}
	start := max(0, displayHeight-lineHeight) / 2
	s := Span{
		LineHeight: lineHeight,
		StartY:     start,
		EndY:       displayHeight - 1 - start,
		Overscan:   lineHeight >= displayHeight,
		Visible:    1,
	}
	if s.Overscan && distance < 1 {
		s.Visible = distance
	}
	return s
}

// Rows returns the number of screen rows covered by the span.
func (s Span) Rows() int { return max(0, s.EndY-s.StartY+1) }

// Shade returns the intensity multiplier for a hit.
func Shade(h Hit) float64 {
	shade := 1.0
	if h.Orientation == AxisY {
		shade = axisYShade
	}
	if h.Distance > fogStart {
		shade /= h.Distance * fogScale
	}
	return shade
}

// drawTextured stretches the whole texture column over the span.
func drawTextured(fb *display.FrameBuffer, x int, s Span, tex *texture.Texture, col int, shade float64) {
	rows := s.Rows()
	if rows == 0 {
		return
	}
	step := float64(tex.Size) / float64(rows)
	row := 0.0
	for y := s.StartY; y <= s.EndY; y++ {
		fb.Set(x, y, shadeTexel(tex.At(col, int(row)), shade))
		row += step
	}
}

// drawOverscan samples the central band of the texture column that is still
// visible when the wall is taller than the display. With dup set the sampled
// value is also written to column x+1.
func drawOverscan(fb *display.FrameBuffer, x int, s Span, tex *texture.Texture, col int, shade float64, dup bool) {
	size := float64(tex.Size)
	row := size / 2 * (1 - s.Visible)
	step := size * s.Visible / float64(s.Rows())
	for y := s.StartY; y <= s.EndY; y++ {
		v := shadeTexel(tex.At(col, int(row)), shade)
		row += step
		fb.Set(x, y, v)
		if dup {
			fb.Set(x+1, y, v)
		}
	}
}

func shadeTexel(texel uint8, shade float64) uint8 {
	v := float64(texel) * shade
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}
