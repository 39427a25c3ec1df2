package bossfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTransform_LookAt(t *testing.T) {
	targets := []mgl32.Vec3{
		{0, 0, 5},
		{0, 0, -5},
		{3, 0, 0},
		{2, 4, -1},
		{-1, -3, 2},
	}
	for _, target := range targets {
		tr := NewTransform(mgl32.Vec3{})
		tr.Rotation[2] = 0.7
		tr.LookAt(target)
		assertVecNear(t, target.Normalize(), tr.Forward(), "target %v", target)
		assert.Zero(t, tr.Rotation.Z(), "roll cleared")
	}
}

func TestTransform_CameraLookAt(t *testing.T) {
	cam := NewTransform(mgl32.Vec3{0, 6, 24})
	target := mgl32.Vec3{0, 0, 3}
	cam.CameraLookAt(target)
	assertVecNear(t, target.Sub(cam.Position).Normalize(), cam.ViewDirection())
}

func TestTransform_LookAtSelfKeepsRotation(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{1, 2, 3})
	tr.Rotation = mgl32.Vec3{0.1, 0.2, 0.3}
	tr.LookAt(tr.Position)
	tr.CameraLookAt(tr.Position)
	assert.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, tr.Rotation)
}

func TestTransform_IdentityBasis(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{})
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, tr.Scale)
	assertVecNear(t, mgl32.Vec3{0, 0, 1}, tr.Forward())
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, tr.Up())
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, tr.ViewDirection())
}
