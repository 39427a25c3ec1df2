package bossfx

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	particlePhysicsSpeed = 10.0 // position multiplier on velocity
	particleGravity      = 5.0  // downward velocity change per second
	particleLifeJitter   = 0.5  // max extra seconds added at emission
)

// Particle is one simulated point. MaxLife is fixed at emission and always > 0.
type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Color    mgl32.Vec3
	Life     float32
	MaxLife  float32
}

// PointCloud is the renderable side of a particle pool: flat xyz / rgb
// buffers, the valid draw range and per-buffer dirty flags.
type PointCloud struct {
	Positions []float32
	Colors    []float32

	DrawStart int
	DrawCount int

	PositionsDirty bool
	ColorsDirty    bool

	Size     float32
	Opacity  float32
	Additive bool
}

// Consume clears the dirty flags and reports whether any buffer changed.
func (c *PointCloud) Consume() bool {
	dirty := c.PositionsDirty || c.ColorsDirty
	c.PositionsDirty = false
	c.ColorsDirty = false
	return dirty
}

// Point returns the position and color of the i-th drawable point.
func (c *PointCloud) Point(i int) (mgl32.Vec3, mgl32.Vec3) {
	j := (c.DrawStart + i) * 3
	return mgl32.Vec3{c.Positions[j], c.Positions[j+1], c.Positions[j+2]},
		mgl32.Vec3{c.Colors[j], c.Colors[j+1], c.Colors[j+2]}
}

// ParticlePool keeps live particles packed in particles[:alive]. Every buffer
// is allocated once; Emit and Update never allocate.
type ParticlePool struct {
	particles []Particle
	alive     int
	cloud     PointCloud
	rng       *rand.Rand
}

func NewParticlePool(capacity int, rng *rand.Rand) *ParticlePool {
	if capacity <= 0 {
		capacity = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ParticlePool{
		particles: make([]Particle, capacity),
		cloud: PointCloud{
			Positions: make([]float32, capacity*3),
			Colors:    make([]float32, capacity*3),
			Size:      0.5,
			Opacity:   0.8,
			Additive:  true,
		},
		rng: rng,
	}
}

func (p *ParticlePool) Capacity() int { return len(p.particles) }

func (p *ParticlePool) Alive() int { return p.alive }

// Particle returns a copy of the i-th live particle, 0 <= i < Alive().
func (p *ParticlePool) Particle(i int) Particle { return p.particles[i] }

func (p *ParticlePool) Cloud() *PointCloud { return &p.cloud }

// Reset drops every live particle and publishes an empty range.
func (p *ParticlePool) Reset() {
	p.alive = 0
	p.publish()
}

// Emit spawns up to count particles around origin and returns how many were
// created. Emission stops silently at capacity. A non-positive lifeBase
// creates nothing, since fade alpha divides by it.
func (p *ParticlePool) Emit(origin, color mgl32.Vec3, count int, speed, spread, lifeBase float32) int {
	if lifeBase <= 0 {
		return 0
	}
	created := 0
	for ; created < count && p.alive < len(p.particles); created++ {
		offset := mgl32.Vec3{p.centered() * spread, p.centered() * spread, p.centered() * spread}
		p.particles[p.alive] = Particle{
			Position: origin.Add(offset),
			Velocity: p.direction().Mul(p.rng.Float32() * speed),
			Color:    color,
			Life:     lifeBase + p.rng.Float32()*particleLifeJitter,
			MaxLife:  lifeBase,
		}
		p.alive++
	}
	return created
}

// Update ages and moves every particle by dt seconds, drops the dead ones and
// repacks the survivors into the cloud buffers.
func (p *ParticlePool) Update(dt float32) {
	i := 0
	for i < p.alive {
		pt := &p.particles[i]
		pt.Life -= dt
		if pt.Life <= 0 {
			// swap-remove; the particle moved into i is handled on this same index
			p.alive--
			p.particles[i] = p.particles[p.alive]
			continue
		}
		pt.Position = pt.Position.Add(pt.Velocity.Mul(dt * particlePhysicsSpeed))
		pt.Velocity[1] -= dt * particleGravity

		alpha := pt.Alpha()
		j := i * 3
		p.cloud.Positions[j] = pt.Position[0]
		p.cloud.Positions[j+1] = pt.Position[1]
		p.cloud.Positions[j+2] = pt.Position[2]
		p.cloud.Colors[j] = pt.Color[0] * alpha
		p.cloud.Colors[j+1] = pt.Color[1] * alpha
		p.cloud.Colors[j+2] = pt.Color[2] * alpha
		i++
	}
	p.publish()
}

func (p *ParticlePool) publish() {
	p.cloud.DrawStart = 0
	p.cloud.DrawCount = p.alive
	p.cloud.PositionsDirty = true
	p.cloud.ColorsDirty = true
}

// Alpha is the linear fade factor life/maxLife, clamped to [0,1].
func (pt Particle) Alpha() float32 {
	return clamp32(pt.Life/pt.MaxLife, 0, 1)
}

func (p *ParticlePool) centered() float32 {
	return p.rng.Float32() - 0.5
}

// direction returns a random unit vector, or zero in the degenerate case
// where all three samples land on the center.
func (p *ParticlePool) direction() mgl32.Vec3 {
	d := mgl32.Vec3{p.centered(), p.centered(), p.centered()}
	if d.Len() == 0 {
		return d
	}
	return d.Normalize()
}
