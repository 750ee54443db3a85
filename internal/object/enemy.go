package object

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexrosrgz/GalacticVoyager/internal/physics"
)

// Enemy tuning.
const (
	EnemySpeed       = 80.0 // Cruise speed, units/s
	EnemyFireRate    = 1.5  // Seconds between shots
	EnemyFireJitter  = 0.3  // ± seconds added to each reload
	EnemyMaxHealth   = 30.0
	EnemyRadius      = 5.0
	EnemyDrag        = 0.98
	EnemySteerRate   = 2.0 // Velocity lerp factor per second
	EnemyFlashTime   = 0.08
	EnemyEvadeTime   = 3.0
	EnemyEvadeHealth = 0.3 // Evade below this fraction of max health

	engageDistance    = 300.0 // approaching → attacking
	disengageDistance = 600.0 // attacking → approaching
	tooCloseDistance  = 200.0 // Back off below this
	tooFarDistance    = 400.0 // Close in above this
	muzzleOffset      = 5.0
	faceMinSpeedSq    = 0.1
)

// EnemyParkPosition is where released enemies wait for reuse.
var EnemyParkPosition = mgl64.Vec3{0, -10000, 0}

// EnemyState is the behavior an enemy is currently executing.
type EnemyState int

const (
	EnemyApproaching EnemyState = iota
	EnemyAttacking
	EnemyEvading
)

func (s EnemyState) String() string {
	switch s {
	case EnemyApproaching:
		return "approaching"
	case EnemyAttacking:
		return "attacking"
	case EnemyEvading:
		return "evading"
	default:
		return "unknown"
	}
}

// Enemy is a pooled fighter that hunts the player.
type Enemy struct {
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Orientation mgl64.Quat

	Health    float64
	MaxHealth float64
	Radius    float64
	Active    bool
	State     EnemyState

	FireCooldown   float64
	EvadeTimer     float64
	EvadeDirection mgl64.Vec3
	FlashTimer     float64 // Seconds of hit flash remaining

	rng *rand.Rand
}

// NewEnemy creates a parked, inactive enemy drawing randomness from rng.
func NewEnemy(rng *rand.Rand) *Enemy {
	e := &Enemy{
		MaxHealth:   EnemyMaxHealth,
		Radius:      EnemyRadius,
		Orientation: mgl64.QuatIdent(),
		rng:         rng,
	}
	e.Reset()
	return e
}

// Init activates the enemy at position with full health.
func (e *Enemy) Init(position mgl64.Vec3) {
	e.Position = position
	e.Velocity = mgl64.Vec3{}
	e.Health = e.MaxHealth
	e.Active = true
	e.State = EnemyApproaching
	e.FireCooldown = physics.RandomRange(e.rng, 0.5, 2)
	e.EvadeTimer = 0
	e.EvadeDirection = mgl64.Vec3{}
	e.FlashTimer = 0
}

// Update runs one frame of behavior and movement. Inactive enemies are skipped.
func (e *Enemy) Update(dt float64, playerPos mgl64.Vec3, l Launcher) {
	if !e.Active {
		return
	}

	toPlayer := playerPos.Sub(e.Position)
	distance := toPlayer.Len()
	dirToPlayer := physics.Normalize(toPlayer)

	switch e.State {
	case EnemyApproaching:
		e.steer(dirToPlayer, dt)
		if distance < engageDistance {
			e.State = EnemyAttacking
		}

	case EnemyAttacking:
		switch {
		case distance > disengageDistance:
			e.State = EnemyApproaching
		case e.Health < e.MaxHealth*EnemyEvadeHealth:
			e.State = EnemyEvading
			e.EvadeTimer = EnemyEvadeTime
			sign := 1.0
			if e.rng.Float64() <= 0.5 {
				sign = -1
			}
			e.EvadeDirection = physics.Normalize(dirToPlayer.Cross(physics.Up)).Mul(sign)
		default:
			switch {
			case distance < tooCloseDistance:
				e.steer(dirToPlayer.Mul(-1), dt)
			case distance > tooFarDistance:
				e.steer(dirToPlayer, dt)
			default:
				e.steer(dirToPlayer.Cross(physics.Up), dt)
			}

			e.FireCooldown -= dt
			if e.FireCooldown <= 0 {
				e.FireCooldown = EnemyFireRate + physics.RandomRange(e.rng, -EnemyFireJitter, EnemyFireJitter)
				if l != nil {
					l.Fire(e.Position.Add(dirToPlayer.Mul(muzzleOffset)), dirToPlayer, SourceEnemy)
				}
			}
		}

	case EnemyEvading:
		e.steer(e.EvadeDirection, dt)
		e.EvadeTimer -= dt
		if e.EvadeTimer <= 0 {
			e.State = EnemyApproaching
		}
	}

	if e.Velocity.Dot(e.Velocity) > faceMinSpeedSq {
		e.Orientation = LookAlong(e.Velocity)
	}

	e.Velocity = e.Velocity.Mul(EnemyDrag)
	e.Position = e.Position.Add(e.Velocity.Mul(dt))

	if e.FlashTimer > 0 {
		e.FlashTimer -= dt
	}
}

// steer eases velocity toward cruise speed along direction.
func (e *Enemy) steer(direction mgl64.Vec3, dt float64) {
	desired := physics.Normalize(direction).Mul(EnemySpeed)
	e.Velocity = physics.Lerp(e.Velocity, desired, EnemySteerRate*dt)
}

// TakeDamage applies damage and starts the hit flash.
// The enemy deactivates once health reaches zero.
func (e *Enemy) TakeDamage(amount float64) {
	e.Health -= amount
	e.FlashTimer = EnemyFlashTime
	if e.Health <= 0 {
		e.Active = false
	}
}

// Flashing reports whether the hit flash is showing.
func (e *Enemy) Flashing() bool {
	return e.FlashTimer > 0
}

// Reset deactivates the enemy and parks it out of play.
func (e *Enemy) Reset() {
	e.Active = false
	e.Position = EnemyParkPosition
	e.Velocity = mgl64.Vec3{}
	e.FlashTimer = 0
}
