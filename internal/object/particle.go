package object

import (
	"math/rand"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexrosrgz/GalacticVoyager/internal/physics"
)

// Explosion tuning.
const (
	ExplosionParticles = 20
	ExplosionSpeed     = 50.0 // Max per-axis particle speed
	ExplosionLifetime  = 0.6  // Seconds
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is one spark of an explosion.
type Particle struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// Release returns the particle to the pool for reuse.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Explosion is a burst of sparks that fades out over its lifetime.
type Explosion struct {
	Particles []*Particle
	Lifetime  float64
	Elapsed   float64
}

// NewExplosion bursts ExplosionParticles sparks from position with random
// per-axis velocities.
func NewExplosion(position mgl64.Vec3, rng *rand.Rand) *Explosion {
	x := &Explosion{
		Particles: make([]*Particle, 0, ExplosionParticles),
		Lifetime:  ExplosionLifetime,
	}
	for i := 0; i < ExplosionParticles; i++ {
		p := particlePool.Get().(*Particle)
		p.Position = position
		p.Velocity = mgl64.Vec3{
			physics.RandomRange(rng, -ExplosionSpeed, ExplosionSpeed),
			physics.RandomRange(rng, -ExplosionSpeed, ExplosionSpeed),
			physics.RandomRange(rng, -ExplosionSpeed, ExplosionSpeed),
		}
		x.Particles = append(x.Particles, p)
	}
	return x
}

// Update drifts the sparks. Returns true once the explosion has burned out.
func (x *Explosion) Update(dt float64) bool {
	x.Elapsed += dt
	if x.Elapsed >= x.Lifetime {
		return true
	}
	for _, p := range x.Particles {
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
	}
	return false
}

// Opacity fades linearly from 1 to 0 over the lifetime.
func (x *Explosion) Opacity() float64 {
	if x.Lifetime <= 0 {
		return 0
	}
	o := 1 - x.Elapsed/x.Lifetime
	if o < 0 {
		return 0
	}
	return o
}

// Release returns every spark to the particle pool.
func (x *Explosion) Release() {
	for _, p := range x.Particles {
		p.Release()
	}
	x.Particles = nil
}
