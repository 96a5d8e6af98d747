package entity

import (
	"testing"

	"github.com/Faultbox/cliffhanger/pkg/math"
)

func TestClimberAxesFacingWall(t *testing.T) {
	c := NewClimber("player", math.Vec3{X: -20, Z: 1}, 0)

	if got := c.Forward(); !got.NearlyEqual(math.Vec3{Z: -1}, 1e-6) {
		t.Errorf("Forward() = %v, want -Z", got)
	}
	axes := c.Axes()
	if !axes.Right.NearlyEqual(math.Vec3{X: 1}, 1e-6) {
		t.Errorf("Axes().Right = %v, want +X", axes.Right)
	}
	if axes.Up != math.WorldUp {
		t.Errorf("Axes().Up = %v, want %v", axes.Up, math.WorldUp)
	}
}

func TestClimberRightFollowsYaw(t *testing.T) {
	c := NewClimber("player", math.Vec3{}, 1.5707964) // facing -X
	if got := c.Right(); !got.NearlyEqual(math.Vec3{Z: -1}, 1e-6) {
		t.Errorf("Right() = %v, want -Z", got)
	}
}

func TestClimberBounds(t *testing.T) {
	c := NewClimber("player", math.Vec3{X: 1, Y: 2, Z: 3}, 0)
	b := c.Bounds()

	if got := b.Center(); got != c.Position {
		t.Errorf("Bounds().Center() = %v, want %v", got, c.Position)
	}
	if got := b.Max.Sub(b.Min); got != DefaultClimberSize {
		t.Errorf("Bounds() size = %v, want %v", got, DefaultClimberSize)
	}
}
