package core

import (
	"errors"
	"fmt"
)

// DefaultBoundary is the wall code reported for lookups outside the grid.
const DefaultBoundary uint8 = 1

// ErrInvalidDimensions is returned when a grid or buffer is built with a
// non-positive size or with cell data that does not match its size.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// GridMap is an immutable row-major grid of wall codes. Code 0 is passable;
// any other value is solid and selects a texture.
type GridMap struct {
	W, H int

	// Boundary is reported for every cell outside [0,W)x[0,H) so a ray
	// leaving the map always terminates.
	Boundary uint8

	data []uint8
}

// NewGridMap copies cells into a new w*h grid.
func NewGridMap(w, h int, cells []uint8) (*GridMap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("grid %dx%d with %d cells: %w", w, h, len(cells), ErrInvalidDimensions)
	}
	data := make([]uint8, len(cells))
	copy(data, cells)
	return &GridMap{W: w, H: h, Boundary: DefaultBoundary, data: data}, nil
}

// GridFromRows builds a grid from rows of equal length; rows[y][x] is the
// code of cell (x, y).
func GridFromRows(rows [][]uint8) (*GridMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid from rows: empty: %w", ErrInvalidDimensions)
	}
	w := len(rows[0])
	cells := make([]uint8, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("grid row %d has %d cells, want %d: %w", y, len(row), w, ErrInvalidDimensions)
		}
		cells = append(cells, row...)
	}
	return NewGridMap(w, len(rows), cells)
}

// Size returns the grid dimensions.
func (g *GridMap) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *GridMap) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *GridMap) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the wall code at (x, y), or Boundary when out of range.
func (g *GridMap) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return g.Boundary
	}
	return g.data[g.Index(x, y)]
}

// Solid reports whether (x, y) blocks movement and rays. Cells outside the
// grid are always solid, even when Boundary is zero.
func (g *GridMap) Solid(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.data[g.Index(x, y)] != 0
}
