package object

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexrosrgz/GalacticVoyager/internal/physics"
	"github.com/alexrosrgz/GalacticVoyager/internal/pool"
)

// Spawn pacing.
const (
	MaxEnemies            = 8
	EnemySpawnIntervalMax = 8.0   // Seconds between spawns at score 0
	EnemySpawnIntervalMin = 3.0   // Fastest spawn cadence
	EnemySpawnScoreStep   = 500.0 // Score per second shaved off the interval
	EnemySpawnRadiusMin   = 500.0
	EnemySpawnRadiusMax   = 800.0
	InitialSpawnDelay     = 3.0 // Seconds before the first enemy
)

// EnemyManager schedules spawns and owns the enemy pool and death effects.
type EnemyManager struct {
	pool       *pool.Pool[*Enemy]
	rng        *rand.Rand
	spawnTimer float64
	explosions []*Explosion
	active     []*Enemy // Reused between frames
}

// NewEnemyManager creates a manager with MaxEnemies pre-allocated enemies.
func NewEnemyManager(rng *rand.Rand) *EnemyManager {
	return &EnemyManager{
		pool: pool.New(
			func() *Enemy { return NewEnemy(rng) },
			(*Enemy).Reset,
			MaxEnemies,
		),
		rng:        rng,
		spawnTimer: InitialSpawnDelay,
	}
}

// SpawnInterval returns the delay until the next spawn for a given score.
func SpawnInterval(score int) float64 {
	return math.Max(EnemySpawnIntervalMin, EnemySpawnIntervalMax-float64(score)/EnemySpawnScoreStep)
}

// Update runs the spawn scheduler, advances every active enemy and releases
// those that deactivated, then advances explosions.
func (m *EnemyManager) Update(dt float64, playerPos mgl64.Vec3, l Launcher, score int) {
	m.spawnTimer -= dt
	if m.spawnTimer <= 0 {
		if m.pool.ActiveCount() < MaxEnemies {
			m.Spawn(playerPos)
		}
		m.spawnTimer = SpawnInterval(score)
	}

	m.pool.ForEach(func(e *Enemy) {
		e.Update(dt, playerPos, l)
		if !e.Active {
			m.pool.Release(e)
		}
	})

	m.updateExplosions(dt)
}

// Spawn activates an enemy at a random point 500-800 units from center.
// The caller is responsible for the MaxEnemies cap.
func (m *EnemyManager) Spawn(center mgl64.Vec3) *Enemy {
	radius := physics.RandomRange(m.rng, EnemySpawnRadiusMin, EnemySpawnRadiusMax)
	return m.SpawnAt(center.Add(physics.RandomPointOnSphere(m.rng, radius)))
}

// SpawnAt activates an enemy at an exact position.
func (m *EnemyManager) SpawnAt(position mgl64.Vec3) *Enemy {
	e := m.pool.Acquire()
	e.Init(position)
	return e
}

// Active returns the active enemies in pool order.
// The slice is reused by the next call.
func (m *EnemyManager) Active() []*Enemy {
	m.active = m.pool.AppendActive(m.active[:0])
	return m.active
}

// ActiveCount returns the number of active enemies.
func (m *EnemyManager) ActiveCount() int {
	return m.pool.ActiveCount()
}

// HandleDeath bursts an explosion at the enemy and returns it to the pool.
func (m *EnemyManager) HandleDeath(e *Enemy) {
	m.explosions = append(m.explosions, NewExplosion(e.Position, m.rng))
	e.Active = false
	m.pool.Release(e)
}

// Explosions returns the explosions still burning.
func (m *EnemyManager) Explosions() []*Explosion {
	return m.explosions
}

// SpawnTimer returns the seconds until the next spawn attempt.
func (m *EnemyManager) SpawnTimer() float64 {
	return m.spawnTimer
}

// SetSpawnTimer overrides the seconds until the next spawn attempt.
func (m *EnemyManager) SetSpawnTimer(seconds float64) {
	m.spawnTimer = seconds
}

// Clear releases every enemy and explosion.
func (m *EnemyManager) Clear() {
	for _, e := range m.pool.Active() {
		m.pool.Release(e)
	}
	for _, x := range m.explosions {
		x.Release()
	}
	m.explosions = m.explosions[:0]
}

func (m *EnemyManager) updateExplosions(dt float64) {
	live := m.explosions[:0]
	for _, x := range m.explosions {
		if x.Update(dt) {
			x.Release()
			continue
		}
		live = append(live, x)
	}
	clear(m.explosions[len(live):])
	m.explosions = live
}
