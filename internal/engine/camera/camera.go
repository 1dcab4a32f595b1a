// Package camera provides the first-person camera used to walk the terrain.
package camera

import "github.com/Faultbox/heightwalk/pkg/math"

// FirstPerson is an eye at (X, Y, Z) looking down -Z, turned by RY degrees
// about Y (yaw) and RX degrees about X (pitch).
type FirstPerson struct {
	X, Y, Z float32
	RX, RY  float32

	Height        float32 // eye height above the ground
	MovementSpeed float32 // units per second
	RotationSpeed float32 // degrees per second
}

// NewFirstPerson returns a camera at the origin with the walkthrough's
// default eye height and speeds.
func NewFirstPerson() *FirstPerson {
	return &FirstPerson{
		Height:        1.5,
		MovementSpeed: 1,
		RotationSpeed: 90,
	}
}

// Position returns the eye position.
func (c *FirstPerson) Position() math.Vec3 {
	return math.Vec3{X: c.X, Y: c.Y, Z: c.Z}
}

// ViewMatrix returns RotationX(-RX) × RotationY(-RY) × Translation(-X, -Y, -Z).
func (c *FirstPerson) ViewMatrix() math.Mat4 {
	view := math.RotationX(-c.RX)
	math.MulInPlace(&view, math.RotationY(-c.RY))
	math.MulInPlace(&view, math.Translation(-c.X, -c.Y, -c.Z))
	return view
}

// Heading rotates a camera-space XZ offset by the current yaw and returns it
// in world space. Pitch is ignored, so walking never leaves the ground plane.
func (c *FirstPerson) Heading(right, back float32) math.Vec4 {
	return math.RotateVecY(c.RY, math.Point(right, 0, back))
}

// Translate moves the eye by the xyz part of v.
func (c *FirstPerson) Translate(v math.Vec4) {
	c.X += v[0]
	c.Y += v[1]
	c.Z += v[2]
}

// Turn adds yaw and pitch, both in degrees.
func (c *FirstPerson) Turn(yaw, pitch float32) {
	c.RY += yaw
	c.RX += pitch
}

// Lens describes a perspective projection.
type Lens struct {
	FOV  float32 // vertical, degrees
	Near float32
	Far  float32
}

// Projection returns the projection for a viewport aspect ratio (width/height).
// The result is in the column-major layout described on math.Perspective.
func (l Lens) Projection(aspect float32) math.Mat4 {
	return math.Perspective(l.Near, l.Far, l.FOV, aspect)
}
