package display

import (
	"fmt"

	"oledcaster/internal/core"
)

// PageHeight is the number of display rows packed into one byte.
const PageHeight = 8

// PhysicalBuffer is the panel's page-major 1-bit layout: byte
// (y/8)*W + x holds rows 8*(y/8) through 8*(y/8)+7 of column x, row y in bit
// y%8.
type PhysicalBuffer struct {
	W, H  int
	Pages int
	Bytes []byte
}

// NewPhysicalBuffer allocates a cleared buffer for a w*h panel.
func NewPhysicalBuffer(w, h int) (*PhysicalBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("physical buffer %dx%d: %w", w, h, core.ErrInvalidDimensions)
	}
	pages := (h + PageHeight - 1) / PageHeight
	return &PhysicalBuffer{W: w, H: h, Pages: pages, Bytes: make([]byte, w*pages)}, nil
}

// Offset returns the byte offset holding pixel (x, y).
func (p *PhysicalBuffer) Offset(x, y int) int {
	return (y>>3)*p.W + x
}

// Clear zeroes the buffer.
func (p *PhysicalBuffer) Clear() {
	for i := range p.Bytes {
		p.Bytes[i] = 0
	}
}

// SetPixel lights pixel (x, y). Out-of-range coordinates are skipped.
func (p *PhysicalBuffer) SetPixel(x, y int) {
	if x < 0 || x >= p.W || y < 0 || y >= p.H {
		return
	}
	off := p.Offset(x, y)
	if off >= len(p.Bytes) {
		return
	}
	p.Bytes[off] |= 1 << (y & 7)
}

// Pixel reports whether (x, y) is lit.
func (p *PhysicalBuffer) Pixel(x, y int) bool {
	if x < 0 || x >= p.W || y < 0 || y >= p.H {
		return false
	}
	return p.Bytes[p.Offset(x, y)]&(1<<(y&7)) != 0
}

// LitCount returns the number of lit pixels.
func (p *PhysicalBuffer) LitCount() int {
	n := 0
	for _, b := range p.Bytes {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}
