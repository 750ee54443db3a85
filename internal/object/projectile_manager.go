package object

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexrosrgz/GalacticVoyager/internal/physics"
	"github.com/alexrosrgz/GalacticVoyager/internal/pool"
)

// ProjectilePoolSize is the number of projectiles pre-allocated per manager.
// The pool grows past it when every bolt is in flight.
const ProjectilePoolSize = 30

// HitType distinguishes what a projectile struck.
type HitType int

const (
	HitEnemy HitType = iota
	HitPlayer
)

func (h HitType) String() string {
	if h == HitPlayer {
		return "player"
	}
	return "enemy"
}

// Hit records a projectile overlapping a target. Enemy is nil for HitPlayer.
type Hit struct {
	Type       HitType
	Projectile *Projectile
	Enemy      *Enemy
}

// ProjectileManager owns every projectile in flight.
type ProjectileManager struct {
	pool *pool.Pool[*Projectile]
	hits []Hit // Reused between frames
}

// NewProjectileManager creates a manager with a pre-allocated projectile pool.
func NewProjectileManager() *ProjectileManager {
	return &ProjectileManager{
		pool: pool.New(
			func() *Projectile { return &Projectile{} },
			(*Projectile).Reset,
			ProjectilePoolSize,
		),
	}
}

// Fire launches a projectile. Firing is never rejected for capacity.
func (m *ProjectileManager) Fire(position, direction mgl64.Vec3, source Source) {
	p := m.pool.Acquire()
	p.Init(position, direction, source)
}

// Update advances every projectile and releases the expired ones.
func (m *ProjectileManager) Update(dt float64) {
	m.pool.ForEach(func(p *Projectile) {
		if p.Update(dt) {
			m.pool.Release(p)
		}
	})
}

// CheckCollisions reports player bolts overlapping an enemy and enemy bolts
// overlapping the player. A player bolt hits at most one enemy: the first in
// enemies order. No state is modified; the returned slice is only valid until
// the next call.
func (m *ProjectileManager) CheckCollisions(enemies []*Enemy, player *Player) []Hit {
	m.hits = m.hits[:0]
	m.pool.ForEach(func(p *Projectile) {
		switch p.Source {
		case SourcePlayer:
			for _, e := range enemies {
				if physics.PointInSphere(p.Position, e.Position, e.Radius+ProjectileHitPad) {
					m.hits = append(m.hits, Hit{Type: HitEnemy, Projectile: p, Enemy: e})
					break
				}
			}
		case SourceEnemy:
			if player != nil && physics.PointInSphere(p.Position, player.Position, player.Radius+ProjectileHitPad) {
				m.hits = append(m.hits, Hit{Type: HitPlayer, Projectile: p})
			}
		}
	})
	return m.hits
}

// Release returns a projectile to the pool.
func (m *ProjectileManager) Release(p *Projectile) {
	m.pool.Release(p)
}

// Active returns the projectiles in flight.
func (m *ProjectileManager) Active() []*Projectile {
	return m.pool.Active()
}

// ActiveCount returns the number of projectiles in flight.
func (m *ProjectileManager) ActiveCount() int {
	return m.pool.ActiveCount()
}

// Capacity returns the number of projectiles the pool has allocated.
func (m *ProjectileManager) Capacity() int {
	return m.pool.Len()
}

// Clear releases every projectile.
func (m *ProjectileManager) Clear() {
	for _, p := range m.pool.Active() {
		m.pool.Release(p)
	}
}
