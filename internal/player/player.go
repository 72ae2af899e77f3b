// Package player integrates movement input into the camera pose rendered
// each frame.
package player

import (
	"oledcaster/internal/core"
	"oledcaster/internal/raycast"
	"oledcaster/pkg/geom"
)

// Default movement rates.
const (
	WalkSpeed = 3.0 // grid units per second
	TurnSpeed = 1.5 // radians per second
)

// Input is the set of held movement buttons for one frame.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Player owns the pose that drives the camera.
type Player struct {
	Position  geom.Vector2
	Direction geom.Vector2

	WalkSpeed float64
	TurnSpeed float64

	// Grid enables collision: a move into a solid cell is dropped per axis.
	// Nil walks through walls.
	Grid *core.GridMap
}

// New places a player at the level's spawn point with collision enabled.
func New(level *core.Level) *Player {
	return &Player{
		Position:  level.Spawn,
		Direction: level.Facing.Normalize(),
		WalkSpeed: WalkSpeed,
		TurnSpeed: TurnSpeed,
		Grid:      level.Grid,
	}
}

// WalkForward moves distance units along the facing direction.
func (p *Player) WalkForward(distance float64) {
	p.move(p.Direction.Scale(distance))
}

// WalkBackward moves distance units against the facing direction.
func (p *Player) WalkBackward(distance float64) {
	p.WalkForward(-distance)
}

// TurnLeft rotates the facing direction counter-clockwise.
func (p *Player) TurnLeft(radians float64) {
	p.Direction = p.Direction.Rotate(radians)
}

// TurnRight rotates the facing direction clockwise.
func (p *Player) TurnRight(radians float64) {
	p.Direction = p.Direction.Rotate(-radians)
}

// Update applies one frame of input held for dt seconds.
func (p *Player) Update(in Input, dt float64) {
	if in.Forward {
		p.WalkForward(p.WalkSpeed * dt)
	}
	if in.Backward {
		p.WalkBackward(p.WalkSpeed * dt)
	}
	if in.Left {
		p.TurnLeft(p.TurnSpeed * dt)
	}
	if in.Right {
		p.TurnRight(p.TurnSpeed * dt)
	}
}

// SetPose moves the player to pose, facing along its angle.
func (p *Player) SetPose(pose Pose) {
	p.Position = pose.Position
	p.Direction = geom.FromAngle(pose.Angle)
}

// Apply copies the pose onto cam. Call it before rendering, never during.
func (p *Player) Apply(cam *raycast.Camera) {
	cam.SetPosition(p.Position)
	cam.SetDirection(p.Direction)
}

func (p *Player) move(delta geom.Vector2) {
	if p.Grid == nil {
		p.Position = p.Position.Add(delta)
		return
	}
	next := p.Position
	if !p.Grid.Solid(cell(next.X+delta.X), cell(next.Y)) {
		next.X += delta.X
	}
	if !p.Grid.Solid(cell(next.X), cell(next.Y+delta.Y)) {
		next.Y += delta.Y
	}
	p.Position = next
}

func cell(v float64) int {
	if v < 0 {
		return -1
	}
	return int(v)
}
