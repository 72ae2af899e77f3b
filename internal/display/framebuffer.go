// Package display owns the two frame-scoped buffers of the pipeline: the
// 8-bit intensity image the renderer writes and the page-major 1-bit image
// the panel driver consumes.
package display

import (
	"fmt"

	"oledcaster/internal/core"
)

// FrameBuffer is a row-major W*H array of 8-bit intensities.
type FrameBuffer struct {
	W, H int
	Pix  []uint8
}

// NewFrameBuffer allocates a cleared w*h frame buffer.
func NewFrameBuffer(w, h int) (*FrameBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("frame buffer %dx%d: %w", w, h, core.ErrInvalidDimensions)
	}
	return &FrameBuffer{W: w, H: h, Pix: make([]uint8, w*h)}, nil
}

// Index returns the linear slice index for coordinates (x, y).
func (f *FrameBuffer) Index(x, y int) int { return y*f.W + x }

// InBounds reports whether (x, y) addresses a pixel.
func (f *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < f.W && y >= 0 && y < f.H
}

// At returns the intensity at (x, y), or 0 outside the buffer.
func (f *FrameBuffer) At(x, y int) uint8 {
	if !f.InBounds(x, y) {
		return 0
	}
	return f.Pix[f.Index(x, y)]
}

// Set writes an intensity. Writes outside the buffer are skipped.
func (f *FrameBuffer) Set(x, y int, v uint8) {
	if !f.InBounds(x, y) {
		return
	}
	f.Pix[f.Index(x, y)] = v
}

// Clear zeroes every pixel.
func (f *FrameBuffer) Clear() { f.Fill(0) }

// Fill sets every pixel to v.
func (f *FrameBuffer) Fill(v uint8) {
	for i := range f.Pix {
		f.Pix[i] = v
	}
}
