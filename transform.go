package bossfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TransformComponent places a body in the world. Rotation holds Euler angles
// in radians applied Y, then X, then Z, so X is pitch, Y is yaw and Z is roll.
type TransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

func NewTransform(position mgl32.Vec3) TransformComponent {
	return TransformComponent{Position: position, Scale: mgl32.Vec3{1, 1, 1}}
}

// Basis returns the rotation matrix for the Euler angles.
func (tr *TransformComponent) Basis() mgl32.Mat3 {
	return mgl32.Rotate3DY(tr.Rotation.Y()).
		Mul3(mgl32.Rotate3DX(tr.Rotation.X())).
		Mul3(mgl32.Rotate3DZ(tr.Rotation.Z()))
}

// Forward is the +Z axis of the body. Bodies face along Forward.
func (tr *TransformComponent) Forward() mgl32.Vec3 {
	return tr.Basis().Mul3x1(mgl32.Vec3{0, 0, 1})
}

// Up is the +Y axis of the body.
func (tr *TransformComponent) Up() mgl32.Vec3 {
	return tr.Basis().Mul3x1(mgl32.Vec3{0, 1, 0})
}

// LookAt turns the body so Forward points at target. Roll is cleared.
// A target at the body's own position leaves the rotation unchanged.
func (tr *TransformComponent) LookAt(target mgl32.Vec3) {
	dir := target.Sub(tr.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	yaw := math.Atan2(float64(dir.X()), float64(dir.Z()))
	pitch := -math.Asin(clamp64(float64(dir.Y()), -1, 1))
	tr.Rotation = mgl32.Vec3{float32(pitch), float32(yaw), 0}
}

// CameraLookAt turns a camera so its view axis (-Z) points at target.
func (tr *TransformComponent) CameraLookAt(target mgl32.Vec3) {
	dir := target.Sub(tr.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	yaw := math.Atan2(float64(-dir.X()), float64(-dir.Z()))
	pitch := math.Asin(clamp64(float64(dir.Y()), -1, 1))
	tr.Rotation = mgl32.Vec3{float32(pitch), float32(yaw), 0}
}

// ViewDirection is the direction a camera with this transform looks along.
func (tr *TransformComponent) ViewDirection() mgl32.Vec3 {
	return tr.Basis().Mul3x1(mgl32.Vec3{0, 0, -1})
}

type BodyRole int

const (
	RolePlayer BodyRole = iota
	RolePlayerArm
	RoleBoss
	RoleEffect
)

func (r BodyRole) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RolePlayerArm:
		return "player-arm"
	case RoleBoss:
		return "boss"
	case RoleEffect:
		return "effect"
	}
	return "unknown"
}

// BodyComponent marks a renderable body.
type BodyComponent struct {
	Role    BodyRole
	Visible bool
	Glyph   rune
	Color   mgl32.Vec3
}

type CameraComponent struct {
	Fov  float32 // vertical, degrees
	Near float32
	Far  float32
}

func clamp64(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mul3 multiplies two vectors component-wise.
func mul3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
