package object

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Player tuning.
const (
	PlayerThrust          = 150.0 // Forward acceleration, units/s²
	PlayerBoostMultiplier = 3.0
	PlayerReverseFactor   = 0.5 // Reverse thrust as a fraction of forward thrust
	PlayerMaxHealth       = 100.0
	PlayerFireRate        = 0.15  // Seconds between volleys
	PlayerDrag            = 0.98  // Velocity multiplier applied once per frame
	PlayerRotationSpeed   = 0.002 // Radians per unit of pointer movement
	PlayerRollSpeed       = 2.0   // Radians per second
	PlayerRadius          = 5.0

	gunOffsetSide    = 3.0 // Units along the right axis
	gunOffsetForward = 8.0 // Units along the forward axis
)

// PlayerSpawn is where the ship starts and respawns.
var PlayerSpawn = mgl64.Vec3{350, 20, 0}

// Player is the ship flown by the local pilot.
type Player struct {
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Orientation mgl64.Quat

	Health    float64
	MaxHealth float64
	Radius    float64

	IsThrusting bool
	IsBoosting  bool

	fireCooldown float64
}

// NewPlayer creates a ship at the spawn transform.
func NewPlayer() *Player {
	p := &Player{
		MaxHealth: PlayerMaxHealth,
		Radius:    PlayerRadius,
	}
	p.Reset()
	return p
}

// Update applies steering, thrust and drag from one frame of input.
func (p *Player) Update(dt float64, in Input) {
	// Yaw and pitch axes both come from the orientation at the start of the frame.
	dx, dy := in.MouseDelta()
	yaw := mgl64.QuatRotate(-dx*PlayerRotationSpeed, UpOf(p.Orientation))
	pitch := mgl64.QuatRotate(-dy*PlayerRotationSpeed, RightOf(p.Orientation))
	p.Orientation = yaw.Mul(p.Orientation)
	p.Orientation = pitch.Mul(p.Orientation)

	if in.IsKeyDown(KeyA) {
		roll := mgl64.QuatRotate(PlayerRollSpeed*dt, p.Forward())
		p.Orientation = roll.Mul(p.Orientation)
	}
	if in.IsKeyDown(KeyD) {
		roll := mgl64.QuatRotate(-PlayerRollSpeed*dt, p.Forward())
		p.Orientation = roll.Mul(p.Orientation)
	}
	p.Orientation = p.Orientation.Normalize()

	boost := in.IsKeyDown(ShiftLeft) || in.IsKeyDown(ShiftRight)
	thrust := 0.0
	if in.IsKeyDown(KeyW) {
		thrust = PlayerThrust
		if boost {
			thrust *= PlayerBoostMultiplier
		}
	} else if in.IsKeyDown(KeyS) {
		thrust = -PlayerThrust * PlayerReverseFactor
	}

	p.IsThrusting = thrust > 0
	p.IsBoosting = p.IsThrusting && boost

	if thrust != 0 {
		p.Velocity = p.Velocity.Add(p.Forward().Mul(thrust * dt))
	}
	p.Velocity = p.Velocity.Mul(PlayerDrag)
	p.Position = p.Position.Add(p.Velocity.Mul(dt))

	if p.fireCooldown > 0 {
		p.fireCooldown -= dt
	}

	in.ResetMouseDelta()
}

// CanFire reports whether the guns have cooled down.
func (p *Player) CanFire() bool {
	return p.fireCooldown <= 0
}

// Fire launches a volley from both wing guns along the forward axis.
// Returns false without firing while the guns are cooling down.
func (p *Player) Fire(l Launcher) bool {
	if !p.CanFire() {
		return false
	}
	p.fireCooldown = PlayerFireRate

	forward := p.Forward()
	right := RightOf(p.Orientation)
	nose := p.Position.Add(forward.Mul(gunOffsetForward))

	l.Fire(nose.Sub(right.Mul(gunOffsetSide)), forward, SourcePlayer)
	l.Fire(nose.Add(right.Mul(gunOffsetSide)), forward, SourcePlayer)
	return true
}

// TakeDamage reduces health, never below zero.
func (p *Player) TakeDamage(amount float64) {
	p.Health = math.Max(0, p.Health-amount)
}

// Heal restores full health.
func (p *Player) Heal() {
	p.Health = p.MaxHealth
}

// Forward returns the world-space direction the nose points.
func (p *Player) Forward() mgl64.Vec3 {
	return ForwardOf(p.Orientation)
}

// Speed returns the velocity magnitude.
func (p *Player) Speed() float64 {
	return p.Velocity.Len()
}

// FireCooldown returns the seconds until the guns are ready (may be negative).
func (p *Player) FireCooldown() float64 {
	return p.fireCooldown
}

// Reset restores the spawn transform, full health and ready guns.
func (p *Player) Reset() {
	p.Position = PlayerSpawn
	p.Velocity = mgl64.Vec3{}
	p.Orientation = mgl64.QuatIdent()
	p.Health = p.MaxHealth
	p.IsThrusting = false
	p.IsBoosting = false
	p.fireCooldown = 0
}
