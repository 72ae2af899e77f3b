package player

import (
	"math"

	"oledcaster/internal/core"
	"oledcaster/pkg/geom"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pose is a camera position and yaw.
type Pose struct {
	Position geom.Vector2
	Angle    float64
}

// Waypoint is a pose reached after Duration seconds.
type Waypoint struct {
	Pose
	Duration float32
}

// Tour eases the camera through a list of waypoints. There is no global
// animation manager; callers drive it with Update.
type Tour struct {
	points []Waypoint
	fn     ease.TweenFunc
	idx    int
	pose   Pose
	tweens [3]*gween.Tween
	done   bool
}

// NewTour starts at start and visits points in order using fn for every leg.
func NewTour(start Pose, points []Waypoint, fn ease.TweenFunc) *Tour {
	if fn == nil {
		fn = ease.InOutQuad
	}
	t := &Tour{points: points, fn: fn, pose: start}
	t.startLeg()
	return t
}

// DefaultTour looks all the way around the level's spawn point, then walks
// two units ahead and back when that stretch is open.
func DefaultTour(level *core.Level) *Tour {
	start := Pose{Position: level.Spawn, Angle: math.Atan2(level.Facing.Y, level.Facing.X)}
	points := []Waypoint{
		{Pose: Pose{Position: start.Position, Angle: start.Angle + 2*math.Pi}, Duration: 4},
	}
	ahead := start.Position.Add(geom.FromAngle(start.Angle).Scale(2))
	if !level.Grid.Solid(cell(ahead.X), cell(ahead.Y)) {
		points = append(points,
			Waypoint{Pose: Pose{Position: ahead, Angle: start.Angle + 2*math.Pi}, Duration: 2},
			Waypoint{Pose: Pose{Position: start.Position, Angle: start.Angle + 2*math.Pi}, Duration: 2},
		)
	}
	return NewTour(start, points, ease.InOutQuad)
}

// Pose returns the current pose.
func (t *Tour) Pose() Pose { return t.pose }

// Done reports whether the last waypoint has been reached.
func (t *Tour) Done() bool { return t.done }

// Update advances the tour by dt seconds and returns the new pose. Time left
// over when a leg finishes is not carried into the next leg.
func (t *Tour) Update(dt float32) (Pose, bool) {
	if t.done {
		return t.pose, true
	}
	x, finished := t.tweens[0].Update(dt)
	y, _ := t.tweens[1].Update(dt)
	a, _ := t.tweens[2].Update(dt)
	t.pose = Pose{Position: geom.V2(float64(x), float64(y)), Angle: float64(a)}
	if finished {
		t.pose = t.points[t.idx].Pose
		t.idx++
		t.startLeg()
	}
	return t.pose, t.done
}

func (t *Tour) startLeg() {
	if t.idx >= len(t.points) {
		t.done = true
		return
	}
	to := t.points[t.idx]
	from := t.pose
	t.tweens[0] = gween.New(float32(from.Position.X), float32(to.Position.X), to.Duration, t.fn)
	t.tweens[1] = gween.New(float32(from.Position.Y), float32(to.Position.Y), to.Duration, t.fn)
	t.tweens[2] = gween.New(float32(from.Angle), float32(to.Angle), to.Duration, t.fn)
}
