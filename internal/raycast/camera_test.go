package raycast

import (
	"math"
	"testing"

	"oledcaster/pkg/geom"
)

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.FOV() != DefaultFOV || c.ClipDistance() != DefaultClipDistance {
		t.Fatalf("defaults fov=%v clip=%v", c.FOV(), c.ClipDistance())
	}
	want := math.Tan(math.Pi / 6)
	r := c.ClipPlaneRight()
	if math.Abs(r.X) > 1e-12 || math.Abs(r.Y+want) > 1e-12 {
		t.Fatalf("clip plane right = %+v, want (0, %v)", r, -want)
	}
}

func TestSetDirectionNormalizes(t *testing.T) {
	c := NewCamera()
	c.SetDirection(geom.V2(0, 5))
	d := c.Direction()
	if math.Abs(d.Length()-1) > 1e-12 || math.Abs(d.Y-1) > 1e-12 {
		t.Fatalf("direction = %+v, want (0,1)", d)
	}
	r := c.ClipPlaneRight()
	if math.Abs(r.Dot(d)) > 1e-12 {
		t.Fatal("clip plane must stay perpendicular to the direction")
	}
}

func TestSettersRecomputeClipPlane(t *testing.T) {
	c := NewCamera()
	c.SetAngle(math.Pi / 2)
	c.SetClipDistance(2)
	c.SetFOV(math.Pi / 2)
	want := c.Direction().Perpendicular().Scale(2 * math.Tan(math.Pi/4))
	got := c.ClipPlaneRight()
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
		t.Fatalf("clip plane right = %+v, want %+v", got, want)
	}
	ray := c.Ray(0)
	if math.Abs(ray.Length()-2) > 1e-12 {
		t.Fatalf("centre ray length = %v, want the clip distance", ray.Length())
	}
}

func TestCameraClampsProjection(t *testing.T) {
	c := NewCamera()
	c.SetFOV(math.Pi)
	if c.FOV() >= math.Pi || math.IsInf(c.ClipPlaneRight().Length(), 0) {
		t.Fatalf("fov %v must stay below pi", c.FOV())
	}
	c.SetFOV(-1)
	if c.FOV() <= 0 {
		t.Fatalf("fov %v must stay positive", c.FOV())
	}
	c.SetClipDistance(0)
	if c.ClipDistance() <= 0 {
		t.Fatalf("clip distance %v must stay positive", c.ClipDistance())
	}
}

func TestOrientationString(t *testing.T) {
	if AxisX.String() != "x" || AxisY.String() != "y" || Orientation(7).String() != "unknown" {
		t.Fatal("unexpected orientation names")
	}
}
