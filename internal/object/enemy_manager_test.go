package object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexrosrgz/GalacticVoyager/internal/physics"
)

func TestSpawnInterval(t *testing.T) {
	assert.Equal(t, 8.0, SpawnInterval(0))
	assert.Equal(t, 6.0, SpawnInterval(1000))
	assert.Equal(t, 3.0, SpawnInterval(2500))
	assert.Equal(t, 3.0, SpawnInterval(100000))
}

func TestEnemyManagerFirstSpawnAfterDelay(t *testing.T) {
	m := NewEnemyManager(testRand())
	player := mgl64.Vec3{100, 0, 0}

	m.Update(2.5, player, nil, 0)
	m.Update(0.49, player, nil, 0)
	assert.Equal(t, 0, m.ActiveCount())

	m.Update(0.02, player, nil, 0)
	require.Equal(t, 1, m.ActiveCount())
	assert.Equal(t, 8.0, m.SpawnTimer())

	d := physics.Distance(m.Active()[0].Position, player)
	assert.GreaterOrEqual(t, d, EnemySpawnRadiusMin-1)
	assert.LessOrEqual(t, d, EnemySpawnRadiusMax+1)
}

func TestEnemyManagerSpawnTimerFollowsScore(t *testing.T) {
	m := NewEnemyManager(testRand())

	m.Update(3, mgl64.Vec3{}, nil, 1500)

	assert.Equal(t, 5.0, m.SpawnTimer())
}

func TestEnemyManagerCapsActiveEnemies(t *testing.T) {
	m := NewEnemyManager(testRand())
	for i := 0; i < MaxEnemies; i++ {
		m.SpawnAt(mgl64.Vec3{float64(i) * 100, 5000, 0})
	}

	m.SetSpawnTimer(0)
	m.Update(0.001, mgl64.Vec3{}, nil, 0)

	assert.Equal(t, MaxEnemies, m.ActiveCount())
	assert.Equal(t, 8.0, m.SpawnTimer(), "timer resets even when the spawn is skipped")
}

func TestEnemyManagerReleasesDeactivated(t *testing.T) {
	m := NewEnemyManager(testRand())
	e := m.SpawnAt(mgl64.Vec3{1000, 0, 0})
	e.TakeDamage(EnemyMaxHealth)

	m.Update(0.01, mgl64.Vec3{}, nil, 0)

	assert.Equal(t, 0, m.ActiveCount())
	assert.Equal(t, EnemyParkPosition, e.Position)
}

func TestEnemyManagerHandleDeath(t *testing.T) {
	m := NewEnemyManager(testRand())
	e := m.SpawnAt(mgl64.Vec3{10, 20, 30})

	m.HandleDeath(e)

	assert.Equal(t, 0, m.ActiveCount())
	require.Len(t, m.Explosions(), 1)
	x := m.Explosions()[0]
	require.Len(t, x.Particles, ExplosionParticles)
	for _, p := range x.Particles {
		assert.Equal(t, mgl64.Vec3{10, 20, 30}, p.Position)
		for i := 0; i < 3; i++ {
			assert.GreaterOrEqual(t, p.Velocity[i], -ExplosionSpeed)
			assert.Less(t, p.Velocity[i], ExplosionSpeed)
		}
	}
}

func TestEnemyManagerExplosionsBurnOut(t *testing.T) {
	m := NewEnemyManager(testRand())
	m.SetSpawnTimer(100)
	m.HandleDeath(m.SpawnAt(mgl64.Vec3{}))

	m.Update(0.3, mgl64.Vec3{}, nil, 0)
	require.Len(t, m.Explosions(), 1)
	assert.InDelta(t, 0.5, m.Explosions()[0].Opacity(), 1e-9)

	m.Update(0.4, mgl64.Vec3{}, nil, 0)
	assert.Empty(t, m.Explosions())
}

func TestEnemyManagerClear(t *testing.T) {
	m := NewEnemyManager(testRand())
	for i := 0; i < 5; i++ {
		m.SpawnAt(mgl64.Vec3{float64(i), 0, 0})
	}
	m.HandleDeath(m.Active()[0])

	m.Clear()

	assert.Equal(t, 0, m.ActiveCount())
	assert.Empty(t, m.Explosions())
}

func TestEnemyManagerReusesPooledEnemies(t *testing.T) {
	m := NewEnemyManager(testRand())
	first := m.SpawnAt(mgl64.Vec3{})
	m.HandleDeath(first)

	again := m.SpawnAt(mgl64.Vec3{1, 1, 1})

	assert.Same(t, first, again)
	assert.True(t, again.Active)
	assert.Equal(t, EnemyMaxHealth, again.Health)
}
