package raycast

import (
	"math"

	"oledcaster/internal/core"
	"oledcaster/pkg/geom"
)

const minDistance = 1e-6

// Caster walks rays through a grid with a digital differential analyzer.
type Caster struct {
	grid        *core.GridMap
	mirrorX     bool
	maxDistance float64
	maxSteps    int
}

// NewCaster returns a caster over grid. With mirrorX set, cell x is looked
// up at gridWidth-1-x.
func NewCaster(grid *core.GridMap, mirrorX bool) *Caster {
	return &Caster{
		grid:        grid,
		mirrorX:     mirrorX,
		maxDistance: float64(grid.W + grid.H),
		maxSteps:    grid.W + grid.H + 2,
	}
}

// MaxDistance is the upper clamp applied to every hit distance.
func (c *Caster) MaxDistance() float64 { return c.maxDistance }

// CastColumn casts the ray for screen column x of a width-column display.
func (c *Caster) CastColumn(cam *Camera, x, width int) Hit {
	cameraX := 2*float64(x)/float64(width) - 1
	return c.Cast(cam.Position(), cam.Ray(cameraX))
}

// Cast follows ray from pos until it enters a solid cell. Cells outside the
// grid are solid, so every ray terminates.
func (c *Caster) Cast(pos, ray geom.Vector2) Hit {
	mapX := int(math.Floor(pos.X))
	mapY := int(math.Floor(pos.Y))

	stepX, sideX, deltaX := axisSetup(pos.X, ray.X, mapX)
	stepY, sideY, deltaY := axisSetup(pos.Y, ray.Y, mapY)

	orientation := AxisX
	code := uint8(0)
	for i := 0; ; i++ {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			orientation = AxisX
		} else {
			sideY += deltaY
			mapY += stepY
			orientation = AxisY
		}
		var solid bool
		code, solid = c.cell(mapX, mapY)
		if solid || i >= c.maxSteps {
			break
		}
	}

	// (1-step)/2 adds one cell when walking towards negative coordinates, so
	// the distance is measured to the near face of the hit cell.
	var dist, u float64
	if orientation == AxisX {
		dist = (float64(mapX) - pos.X + float64((1-stepX)/2)) / ray.X
		u = pos.Y + dist*ray.Y
	} else {
		dist = (float64(mapY) - pos.Y + float64((1-stepY)/2)) / ray.Y
		u = pos.X + dist*ray.X
	}

	return Hit{
		Orientation: orientation,
		Distance:    c.clampDistance(dist),
		TextureU:    fraction(u),
		WallCode:    code,
		CellX:       mapX,
		CellY:       mapY,
	}
}

// axisSetup returns the step direction, the ray length to the first grid
// line, and the ray length between grid lines for one axis. A zero component
// never reaches a grid line on that axis.
func axisSetup(pos, dir float64, cell int) (step int, side, delta float64) {
	if dir == 0 {
		return 1, math.Inf(1), math.Inf(1)
	}
	delta = math.Abs(1 / dir)
	if dir < 0 {
		return -1, (pos - float64(cell)) * delta, delta
	}
	return 1, (float64(cell) + 1 - pos) * delta, delta
}

func (c *Caster) cell(x, y int) (uint8, bool) {
	if c.mirrorX {
		x = c.grid.W - 1 - x
	}
	return c.grid.At(x, y), c.grid.Solid(x, y)
}

func (c *Caster) clampDistance(d float64) float64 {
	if math.IsNaN(d) || d > c.maxDistance {
		return c.maxDistance
	}
	if d < minDistance {
		return minDistance
	}
	return d
}

// fraction returns v minus its floor, in [0, 1).
func fraction(v float64) float64 {
	f := v - math.Floor(v)
	if !(f >= 0 && f < 1) {
		return 0
	}
	return f
}

// TextureColumn maps u in [0, 1) to a texture column in [0, size).
func TextureColumn(u float64, size int) int {
	col := int(u * float64(size))
	if col < 0 {
		return 0
	}
	if col >= size {
		return size - 1
	}
	return col
}
