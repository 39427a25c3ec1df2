package bossfx

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLifecycleModule_RemovesExpired(t *testing.T) {
	app := NewAppBuilder().
		UseModule(TimeModule{Fixed: 100 * time.Millisecond}, LifecycleModule{}).
		Build()
	cmd := app.Commands()
	tr := NewTransform(mgl32.Vec3{})
	short := cmd.AddEntity(&tr, &LifetimeComponent{TimeLeft: 0.15})
	long := cmd.AddEntity(&LifetimeComponent{TimeLeft: 1})
	forever := cmd.AddEntity(&tr)
	app.FlushCommands()

	app.Step()
	assert.True(t, cmd.HasEntity(short))

	app.Step()
	assert.False(t, cmd.HasEntity(short))
	assert.True(t, cmd.HasEntity(long))
	assert.True(t, cmd.HasEntity(forever))
	assert.InDelta(t, 0.8, Component[LifetimeComponent](cmd, long).TimeLeft, 1e-5)
}

func TestLifecycleModule_FuseSpawnsImpact(t *testing.T) {
	app := NewAppBuilder().
		UseModule(
			TimeModule{Fixed: 100 * time.Millisecond},
			GameStateModule{},
			CameraShakeModule{Seed: 1},
			ParticleModule{Capacity: 64, Seed: 2},
			ImpactModule{},
			LifecycleModule{},
		).
		Build()
	cmd := app.Commands()
	pool, _ := Resource[ParticlePool](app)

	fuse := Delayed(cmd, 0.25, ImpactComponent{Position: mgl32.Vec3{4, 0, 0}, Color: mgl32.Vec3{1, 1, 1}, Count: 8, Speed: 0, Spread: 0.1, Life: 5})
	app.FlushCommands()

	app.Step()
	app.Step()
	assert.Equal(t, 0, pool.Alive(), "fuse still burning")

	app.Step()
	assert.False(t, cmd.HasEntity(fuse))
	assert.Equal(t, 0, pool.Alive(), "burst is queued for the next frame")

	app.Step()
	assert.Equal(t, 8, pool.Alive())
	p := pool.Particle(0)
	assert.InDelta(t, 4, p.Position.X(), 0.1, "burst goes off where the fuse stood")
}
