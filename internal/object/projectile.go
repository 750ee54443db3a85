package object

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexrosrgz/GalacticVoyager/internal/physics"
)

// Projectile tuning.
const (
	ProjectileSpeed    = 500.0 // Units per second
	ProjectileLifetime = 3.0   // Seconds before expiry
	ProjectileDamage   = 10.0
	ProjectileHitPad   = 1.0 // Added to the target's bounding radius on hit tests
)

// Projectile is a laser bolt travelling in a straight line.
type Projectile struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Lifetime float64 // Seconds remaining
	Source   Source
	Active   bool
}

// Init launches the projectile from position along direction.
// direction need not be normalized; a zero direction leaves the bolt stationary.
func (p *Projectile) Init(position, direction mgl64.Vec3, source Source) {
	p.Position = position
	p.Velocity = physics.Normalize(direction).Mul(ProjectileSpeed)
	p.Lifetime = ProjectileLifetime
	p.Source = source
	p.Active = true
}

// Update moves the projectile and counts down its lifetime.
// Returns true once the projectile has expired.
func (p *Projectile) Update(dt float64) bool {
	p.Position = p.Position.Add(p.Velocity.Mul(dt))
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		p.Active = false
	}
	return !p.Active
}

// Reset deactivates the projectile and clears its motion.
func (p *Projectile) Reset() {
	p.Active = false
	p.Velocity = mgl64.Vec3{}
	p.Lifetime = 0
}
