package raycast

import (
	"math"

	"oledcaster/pkg/geom"
)

const (
	minFOV  = 1e-3
	maxFOV  = math.Pi - 1e-3
	minClip = 1e-3
)

// Camera is a yaw-only viewpoint on the grid. The clip-plane right vector is
// recomputed by every setter, so it always matches the latest pose.
type Camera struct {
	position  geom.Vector2
	direction geom.Vector2
	fov       float64
	clip      float64
	right     geom.Vector2
}

// NewCamera returns a camera at the origin looking along +x with the default
// field of view and clip distance.
func NewCamera() *Camera {
	c := &Camera{
		direction: geom.V2(1, 0),
		fov:       DefaultFOV,
		clip:      DefaultClipDistance,
	}
	c.updateClipPlane()
	return c
}

// Position returns the camera position in grid units.
func (c *Camera) Position() geom.Vector2 { return c.position }

// SetPosition moves the camera.
func (c *Camera) SetPosition(p geom.Vector2) { c.position = p }

// Direction returns the unit forward vector.
func (c *Camera) Direction() geom.Vector2 { return c.direction }

// SetDirection normalizes d and makes it the forward vector. d must not be
// the zero vector.
func (c *Camera) SetDirection(d geom.Vector2) {
	c.direction = d.Normalize()
	c.updateClipPlane()
}

// SetAngle points the camera along (1, 0) rotated by radians.
func (c *Camera) SetAngle(radians float64) {
	c.direction = geom.FromAngle(radians)
	c.updateClipPlane()
}

// FOV returns the horizontal field of view in radians.
func (c *Camera) FOV() float64 { return c.fov }

// SetFOV sets the horizontal field of view, clamped to the open interval
// (0, pi).
func (c *Camera) SetFOV(radians float64) {
	c.fov = math.Min(math.Max(radians, minFOV), maxFOV)
	c.updateClipPlane()
}

// ClipDistance returns the distance from the camera to the projection plane.
func (c *Camera) ClipDistance() float64 { return c.clip }

// SetClipDistance sets the projection plane distance. Non-positive values
// are raised to a small minimum.
func (c *Camera) SetClipDistance(d float64) {
	c.clip = math.Max(d, minClip)
	c.updateClipPlane()
}

// ClipPlaneRight returns the vector from the centre of the clip plane to its
// right-hand edge.
func (c *Camera) ClipPlaneRight() geom.Vector2 { return c.right }

// Ray returns the unnormalized ray through the clip plane at cameraX, where
// -1 is the left screen edge and +1 the right. Its length carries the
// perspective projection.
func (c *Camera) Ray(cameraX float64) geom.Vector2 {
	return c.right.Scale(cameraX).Add(c.direction.Scale(c.clip))
}

func (c *Camera) updateClipPlane() {
	c.right = c.direction.Perpendicular().Scale(c.clip * math.Tan(c.fov/2))
}
