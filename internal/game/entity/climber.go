// Package entity holds the climber's body: where it is and which way it faces.
package entity

import (
	gomath "math"

	"github.com/Faultbox/cliffhanger/internal/engine/picking"
	"github.com/Faultbox/cliffhanger/internal/game/climb"
	"github.com/Faultbox/cliffhanger/pkg/math"
)

// DefaultClimberSize is the climber's bounding box in world units.
var DefaultClimberSize = math.Vec3{X: 2, Y: 4, Z: 1}

// Climber is the player character.
type Climber struct {
	ID       string
	Position math.Vec3
	Yaw      float32 // Radians; 0 faces the wall along -Z
	Size     math.Vec3
}

// NewClimber creates a climber at spawn.
func NewClimber(id string, spawn math.Vec3, yaw float32) *Climber {
	return &Climber{
		ID:       id,
		Position: spawn,
		Yaw:      yaw,
		Size:     DefaultClimberSize,
	}
}

// Forward returns the horizontal direction the climber faces.
func (c *Climber) Forward() math.Vec3 {
	sin, cos := gomath.Sincos(float64(c.Yaw))
	return math.Vec3{X: -float32(sin), Z: -float32(cos)}
}

// Right returns the climber's right-hand direction.
func (c *Climber) Right() math.Vec3 {
	return c.Forward().Cross(math.WorldUp).Normalize()
}

// Up returns the climber's up direction. Climbers never tilt.
func (c *Climber) Up() math.Vec3 {
	return math.WorldUp
}

// Axes returns the movement axes for the locomotion machine.
func (c *Climber) Axes() climb.Axes {
	return climb.Axes{Up: c.Up(), Right: c.Right()}
}

// Bounds returns the climber's box centered on its position.
func (c *Climber) Bounds() picking.AABB {
	return picking.BoxAround(c.Position, c.Size)
}
