// Package texture holds the square 8-bit intensity images sampled by the
// column renderer, indexed by wall code.
package texture

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// DefaultSize is the edge length of the panel's wall textures.
const DefaultSize = 32

// FallbackIntensity fills the texture returned for unknown wall codes.
const FallbackIntensity = 192

// ErrTextureSize is returned when a texture does not match the set size.
var ErrTextureSize = errors.New("texture size mismatch")

// Texture is a square row-major intensity image.
type Texture struct {
	Size int
	Pix  []uint8
}

// New allocates a blank size*size texture.
func New(size int) (*Texture, error) {
	if size <= 0 {
		return nil, fmt.Errorf("texture size %d: %w", size, ErrTextureSize)
	}
	return &Texture{Size: size, Pix: make([]uint8, size*size)}, nil
}

// Flat returns a texture filled with a single intensity.
func Flat(size int, v uint8) *Texture {
	t, err := New(size)
	if err != nil {
		return nil
	}
	for i := range t.Pix {
		t.Pix[i] = v
	}
	return t
}

// At returns the texel at column col and row row. Coordinates are clamped to
// the texture so rounding at span edges never reads outside it.
func (t *Texture) At(col, row int) uint8 {
	col = clampIndex(col, t.Size)
	row = clampIndex(row, t.Size)
	return t.Pix[row*t.Size+col]
}

// Set writes a texel; out-of-range coordinates are ignored.
func (t *Texture) Set(col, row int, v uint8) {
	if col < 0 || col >= t.Size || row < 0 || row >= t.Size {
		return
	}
	t.Pix[row*t.Size+col] = v
}

// FromImage converts img to luminance and resamples it with nearest
// neighbour to a size*size texture.
func FromImage(img image.Image, size int) (*Texture, error) {
	t, err := New(size)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("texture from empty image: %w", ErrTextureSize)
	}
	dst := image.NewGray(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	for row := 0; row < size; row++ {
		copy(t.Pix[row*size:(row+1)*size], dst.Pix[row*dst.Stride:row*dst.Stride+size])
	}
	return t, nil
}

// Set maps wall codes to textures of one common size.
type Set struct {
	size     int
	byCode   [256]*Texture
	fallback *Texture
}

// NewSet returns an empty set whose textures are size*size.
func NewSet(size int) (*Set, error) {
	if size <= 0 {
		return nil, fmt.Errorf("texture set size %d: %w", size, ErrTextureSize)
	}
	return &Set{size: size, fallback: Flat(size, FallbackIntensity)}, nil
}

// Size returns the edge length shared by every texture in the set.
func (s *Set) Size() int { return s.size }

// Put assigns t to wall code code.
func (s *Set) Put(code uint8, t *Texture) error {
	if t == nil || t.Size != s.size || len(t.Pix) != s.size*s.size {
		return fmt.Errorf("wall code %d: %w", code, ErrTextureSize)
	}
	s.byCode[code] = t
	return nil
}

// Lookup returns the texture for code, or the flat fallback when the code
// has none.
func (s *Set) Lookup(code uint8) *Texture {
	if t := s.byCode[code]; t != nil {
		return t
	}
	return s.fallback
}

// Has reports whether code has its own texture.
func (s *Set) Has(code uint8) bool { return s.byCode[code] != nil }

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
