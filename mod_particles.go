package bossfx

import (
	"math/rand"
)

// ParticleModule installs the shared particle pool and steps it in PostUpdate,
// after the frame's emitters have run.
type ParticleModule struct {
	Capacity int   // 0 takes effects.max_particles from the Config resource
	Seed     int64 // 0 seeds from the clock
}

func (m ParticleModule) Install(app *App, cmd *Commands) {
	capacity := m.Capacity
	cfg, haveCfg := Resource[Config](app)
	if capacity <= 0 && haveCfg {
		capacity = cfg.Effects.MaxParticles
	}
	if capacity <= 0 {
		capacity = DefaultConfig().Effects.MaxParticles
	}

	var rng *rand.Rand
	if m.Seed != 0 {
		rng = rand.New(rand.NewSource(m.Seed))
	}
	pool := NewParticlePool(capacity, rng)
	if haveCfg {
		pool.Cloud().Size = cfg.Effects.PointSize
		pool.Cloud().Opacity = cfg.Effects.Opacity
	}
	cmd.AddResources(pool)
	cmd.Logger().Debugf("particle pool: capacity %d", capacity)

	app.UseSystem(
		System(particleSystem).
			InStage(PostUpdate).
			RunAlways(),
	)
}

func particleSystem(t *Time, pool *ParticlePool) {
	pool.Update(t.Seconds())
}
