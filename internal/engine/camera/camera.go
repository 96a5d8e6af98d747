// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/cliffhanger/pkg/math"
)

// Camera is anything that can produce a view matrix.
type Camera interface {
	Position() math.Vec3
	ViewMatrix() math.Mat4
}

// Projection holds the perspective parameters shared by every camera.
type Projection struct {
	FOV  float32 // Vertical field of view, degrees
	Near float32
	Far  float32
}

// DefaultProjection returns the stock projection.
func DefaultProjection() Projection {
	return Projection{FOV: 45, Near: 0.5, Far: 2000}
}

// Matrix returns the projection matrix for the given aspect ratio.
func (p Projection) Matrix(aspect float32) math.Mat4 {
	return math.Perspective(p.FOV*gomath.Pi/180, aspect, p.Near, p.Far)
}

// ViewProjection returns projection * view for cam.
func ViewProjection(cam Camera, proj Projection, aspect float32) math.Mat4 {
	return proj.Matrix(aspect).Mul(cam.ViewMatrix())
}

// Player camera defaults.
const (
	DefaultAlpha  = 1.962076998649251
	DefaultBeta   = 1.5475988827625136
	DefaultRadius = 47.23366662045099
)

// ArcRotateCamera orbits a target at fixed spherical coordinates.
// Alpha is the longitudinal angle measured from +X toward +Z, Beta the
// latitudinal angle measured down from +Y.
type ArcRotateCamera struct {
	Alpha  float32
	Beta   float32
	Radius float32
	Target math.Vec3
}

// NewArcRotateCamera creates a camera looking at the origin.
func NewArcRotateCamera(alpha, beta, radius float32) *ArcRotateCamera {
	return &ArcRotateCamera{
		Alpha:  alpha,
		Beta:   beta,
		Radius: radius,
	}
}

// Offset returns the camera position relative to its target.
func (c *ArcRotateCamera) Offset() math.Vec3 {
	sinA, cosA := gomath.Sincos(float64(c.Alpha))
	sinB, cosB := gomath.Sincos(float64(c.Beta))
	return math.Vec3{
		X: c.Radius * float32(cosA*sinB),
		Y: c.Radius * float32(cosB),
		Z: c.Radius * float32(sinA*sinB),
	}
}

// Position returns the camera position in world space.
func (c *ArcRotateCamera) Position() math.Vec3 {
	return c.Target.Add(c.Offset())
}

// Forward returns the unit direction from the camera toward its target.
func (c *ArcRotateCamera) Forward() math.Vec3 {
	return c.Offset().Neg().Normalize()
}

// SetTarget moves the orbit center.
func (c *ArcRotateCamera) SetTarget(target math.Vec3) {
	c.Target = target
}

// ViewMatrix returns the view matrix for this camera.
func (c *ArcRotateCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.WorldUp)
}
