package raycast

import (
	"math"
	"math/rand/v2"
	"testing"

	"oledcaster/internal/core"
	"oledcaster/pkg/geom"
)

func roomGrid(t *testing.T, w, h int) *core.GridMap {
	t.Helper()
	cells := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				cells[y*w+x] = 1
			}
		}
	}
	g, err := core.NewGridMap(w, h, cells)
	if err != nil {
		t.Fatalf("NewGridMap: %v", err)
	}
	return g
}

func TestScenarioCentralColumnHitsAtHalfUnit(t *testing.T) {
	grid := roomGrid(t, 3, 3)
	cam := NewCamera()
	cam.SetPosition(geom.V2(1.5, 1.5))
	cam.SetDirection(geom.V2(1, 0))
	cam.SetFOV(math.Pi / 3)

	c := NewCaster(grid, false)
	hit := c.CastColumn(cam, DefaultWidth/2, DefaultWidth)
	if hit.Orientation != AxisX {
		t.Fatalf("orientation = %v, want x", hit.Orientation)
	}
	if math.Abs(hit.Distance-0.5) > 1e-12 {
		t.Fatalf("distance = %v, want 0.5", hit.Distance)
	}
	if hit.CellX != 2 || hit.CellY != 1 || hit.WallCode != 1 {
		t.Fatalf("hit cell = (%d,%d) code %d, want (2,1) code 1", hit.CellX, hit.CellY, hit.WallCode)
	}
	if math.Abs(hit.TextureU-0.5) > 1e-12 {
		t.Fatalf("texture u = %v, want 0.5", hit.TextureU)
	}
}

func TestPerpendicularDistanceHasNoFisheye(t *testing.T) {
	// Every column looking at a flat wall reports the same projected distance.
	grid := roomGrid(t, 12, 40)
	cam := NewCamera()
	cam.SetPosition(geom.V2(5.5, 20.5))
	cam.SetDirection(geom.V2(1, 0))
	c := NewCaster(grid, false)
	for x := 0; x < DefaultWidth; x++ {
		hit := c.CastColumn(cam, x, DefaultWidth)
		if hit.Orientation != AxisX || math.Abs(hit.Distance-5.5) > 1e-9 {
			t.Fatalf("column %d: %v hit at %v, want x hit at 5.5", x, hit.Orientation, hit.Distance)
		}
	}
}

func TestNegativeDirectionMeasuresNearFace(t *testing.T) {
	grid := roomGrid(t, 10, 10)
	c := NewCaster(grid, false)
	hit := c.Cast(geom.V2(4.25, 4.5), geom.V2(-1, 0))
	if hit.CellX != 0 || math.Abs(hit.Distance-3.25) > 1e-12 {
		t.Fatalf("hit cell %d at %v, want cell 0 at 3.25", hit.CellX, hit.Distance)
	}
	hit = c.Cast(geom.V2(4.5, 4.75), geom.V2(0, -1))
	if hit.Orientation != AxisY || hit.CellY != 0 || math.Abs(hit.Distance-3.75) > 1e-12 {
		t.Fatalf("got %+v, want y hit on row 0 at 3.75", hit)
	}
}

func TestZeroComponentRays(t *testing.T) {
	grid := roomGrid(t, 6, 6)
	c := NewCaster(grid, false)
	// Position on exact grid lines would turn 0*Inf into NaN without the guard.
	hit := c.Cast(geom.V2(2, 3), geom.V2(0, 1))
	if hit.Orientation != AxisY || math.Abs(hit.Distance-2) > 1e-12 {
		t.Fatalf("got %+v, want y hit at distance 2", hit)
	}
	hit = c.Cast(geom.V2(3, 2), geom.V2(-1, 0))
	if hit.Orientation != AxisX || math.Abs(hit.Distance-2) > 1e-12 {
		t.Fatalf("got %+v, want x hit at distance 2", hit)
	}
	hit = c.Cast(geom.V2(3, 3), geom.V2(0, 0))
	if hit.Distance <= 0 || hit.Distance > c.MaxDistance() {
		t.Fatalf("zero ray distance %v outside (0, %v]", hit.Distance, c.MaxDistance())
	}
}

func TestRaysFromOutsideTheGridTerminate(t *testing.T) {
	grid := roomGrid(t, 4, 4)
	c := NewCaster(grid, false)
	for _, pos := range []geom.Vector2{{X: -3, Y: 2}, {X: 50, Y: 50}, {X: 3.999, Y: 0.001}, {X: 2, Y: -0.5}} {
		for _, dir := range []geom.Vector2{{X: 1}, {X: -1}, {Y: 1}, {X: 0.3, Y: -0.7}} {
			hit := c.Cast(pos, dir)
			if hit.Distance <= 0 || hit.Distance > c.MaxDistance() {
				t.Fatalf("pos %+v dir %+v: distance %v out of range", pos, dir, hit.Distance)
			}
		}
	}
}

func TestEveryColumnYieldsBoundedHit(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	for trial := 0; trial < 200; trial++ {
		w, h := 2+rng.IntN(20), 2+rng.IntN(20)
		cells := make([]uint8, w*h)
		for i := range cells {
			if rng.IntN(4) == 0 {
				cells[i] = uint8(1 + rng.IntN(5))
			}
		}
		grid, err := core.NewGridMap(w, h, cells)
		if err != nil {
			t.Fatal(err)
		}
		cam := NewCamera()
		cam.SetPosition(geom.V2(rng.Float64()*float64(w+2)-1, rng.Float64()*float64(h+2)-1))
		cam.SetAngle(rng.Float64() * 2 * math.Pi)
		cam.SetFOV(0.2 + rng.Float64()*2.5)
		c := NewCaster(grid, trial%2 == 1)
		limit := float64(w + h)
		for x := 0; x < DefaultWidth; x++ {
			hit := c.CastColumn(cam, x, DefaultWidth)
			if hit.Orientation != AxisX && hit.Orientation != AxisY {
				t.Fatalf("trial %d column %d: orientation %v", trial, x, hit.Orientation)
			}
			if !(hit.Distance > 0 && hit.Distance <= limit) {
				t.Fatalf("trial %d column %d: distance %v not in (0, %v]", trial, x, hit.Distance, limit)
			}
			if !(hit.TextureU >= 0 && hit.TextureU < 1) {
				t.Fatalf("trial %d column %d: texture u %v not in [0,1)", trial, x, hit.TextureU)
			}
		}
	}
}

func TestMirrorXLookup(t *testing.T) {
	grid, err := core.GridFromRows([][]uint8{
		{1, 1, 1, 1},
		{2, 0, 0, 3},
		{1, 1, 1, 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	pos, ray := geom.V2(1.5, 1.5), geom.V2(1, 0)
	if code := NewCaster(grid, false).Cast(pos, ray).WallCode; code != 3 {
		t.Fatalf("unmirrored code = %d, want 3", code)
	}
	if code := NewCaster(grid, true).Cast(pos, ray).WallCode; code != 2 {
		t.Fatalf("mirrored code = %d, want 2", code)
	}
}

func TestTextureColumnBounds(t *testing.T) {
	cases := []struct {
		u    float64
		want int
	}{
		{0, 0},
		{0.5, 16},
		{0.999, 31},
		{math.Nextafter(1, 0), 31},
		{1, 31},
		{-0.1, 0},
	}
	for _, tc := range cases {
		if got := TextureColumn(tc.u, 32); got != tc.want {
			t.Errorf("TextureColumn(%v) = %d, want %d", tc.u, got, tc.want)
		}
	}
}

func TestFraction(t *testing.T) {
	if f := fraction(-0.25); f != 0.75 {
		t.Fatalf("fraction(-0.25) = %v", f)
	}
	if f := fraction(-1e-18); f != 0 {
		t.Fatalf("fraction of a tiny negative = %v, want 0", f)
	}
	if f := fraction(math.NaN()); f != 0 {
		t.Fatalf("fraction(NaN) = %v, want 0", f)
	}
}
