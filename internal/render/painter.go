//go:build ebiten

package render

import (
	"image/color"

	"oledcaster/internal/display"

	"github.com/hajimehoshi/ebiten/v2"
)

// PanelPainter uploads panel frames into a single RGBA image and draws it
// scaled onto the window.
type PanelPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPanelPainter allocates a painter for a w*h panel.
func NewPanelPainter(w, h int) *PanelPainter {
	pp := &PanelPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	pp.img = ebiten.NewImage(w, h)
	return pp
}

// Blit draws the 1-bit panel buffer, lit pixels in on and unlit in off.
func (pp *PanelPainter) Blit(dst *ebiten.Image, pb *display.PhysicalBuffer, on, off color.Color, scale int) {
	if pb.W != pp.w || pb.H != pp.h {
		return
	}
	fillPanelRGBA(pp.buf, pb, on, off)
	pp.draw(dst, scale)
}

// BlitIntensity draws the 8-bit intensity buffer tinted with tint.
func (pp *PanelPainter) BlitIntensity(dst *ebiten.Image, fb *display.FrameBuffer, tint color.RGBA, scale int) {
	if fb.W != pp.w || fb.H != pp.h {
		return
	}
	fillIntensityRGBA(pp.buf, fb.Pix, tint)
	pp.draw(dst, scale)
}

func (pp *PanelPainter) draw(dst *ebiten.Image, scale int) {
	pp.img.WritePixels(pp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(pp.img, op)
}

// Size returns the dimensions of the underlying image.
func (pp *PanelPainter) Size() (int, int) { return pp.w, pp.h }
