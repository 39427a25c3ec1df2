package bossfx

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEffectsApp(t *testing.T, capacity int) *App {
	t.Helper()
	return NewAppBuilder().
		UseModule(
			TimeModule{Fixed: 16 * time.Millisecond},
			GameStateModule{},
			CameraShakeModule{Seed: 3},
			ParticleModule{Capacity: capacity, Seed: 5},
			ImpactModule{},
		).
		Build()
}

func TestImpactModule_EmitsAndShakes(t *testing.T) {
	app := newEffectsApp(t, 100)
	cmd := app.Commands()
	eid := cmd.AddEntity(&ImpactComponent{Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec3{1, 1, 1}, Count: 10, Speed: 5, Spread: 1, Life: 2, Trauma: 0.5})
	app.FlushCommands()

	app.Step()

	pool, _ := Resource[ParticlePool](app)
	shake, _ := Resource[CameraShake](app)
	assert.Equal(t, 10, pool.Alive())
	assert.Equal(t, 10, pool.Cloud().DrawCount, "packed in PostUpdate of the same frame")
	assert.InDelta(t, 0.5-0.016*1.5, shake.Trauma(), 1e-5, "trauma decays every tick, camera or not")
	assert.False(t, cmd.HasEntity(eid), "impact entities are one-shot")
}

func TestImpactModule_FullPool(t *testing.T) {
	app := newEffectsApp(t, 1000)
	cmd := app.Commands()
	cmd.AddEntity(&ImpactComponent{Color: mgl32.Vec3{1, 1, 1}, Count: 600, Speed: 1, Spread: 1, Life: 5})
	cmd.AddEntity(&ImpactComponent{Color: mgl32.Vec3{1, 1, 1}, Count: 600, Speed: 1, Spread: 1, Life: 5})
	app.FlushCommands()

	app.Step()

	pool, _ := Resource[ParticlePool](app)
	assert.Equal(t, 1000, pool.Alive())
}

func TestParticleModule_UsesConfig(t *testing.T) {
	app := newEffectsApp(t, 0)

	pool, ok := Resource[ParticlePool](app)
	require.True(t, ok)
	assert.Equal(t, 5000, pool.Capacity())
	assert.Equal(t, float32(0.5), pool.Cloud().Size)
	assert.Equal(t, float32(0.8), pool.Cloud().Opacity)
}

func TestCameraShakeModule_MovesCamera(t *testing.T) {
	app := newEffectsApp(t, 10)
	cmd := app.Commands()
	cam := NewTransform(mgl32.Vec3{0, 6, 24})
	camId := cmd.AddEntity(&cam, &CameraComponent{Fov: 60, Near: 0.1, Far: 200})
	slam := BossSlam(mgl32.Vec3{})
	cmd.AddEntity(&slam)
	app.FlushCommands()

	app.Step()

	shake, _ := Resource[CameraShake](app)
	assert.Less(t, shake.Trauma(), float32(0.8), "trauma decays while a camera is shaken")
	moved := Component[TransformComponent](cmd, camId)
	require.NotNil(t, moved)
	assert.NotEqual(t, mgl32.Vec3{0, 6, 24}, moved.Position)
}
