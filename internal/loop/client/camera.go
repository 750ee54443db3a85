package client

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexrosrgz/GalacticVoyager/internal/draw"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop/config"
	"github.com/alexrosrgz/GalacticVoyager/internal/object"
	"github.com/alexrosrgz/GalacticVoyager/internal/physics"
)

var chaseOffset = mgl64.Vec3{0, config.CameraOffsetY, config.CameraOffsetZ}

// chaseCamera implements loop.Camera for the terminal renderer.
type chaseCamera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	shake          mgl64.Vec3 // Current jitter added to Position
	shakeIntensity float64
	shakeDuration  float64
	shakeElapsed   float64
	rng            *rand.Rand
}

func newChaseCamera(rng *rand.Rand) *chaseCamera {
	c := &chaseCamera{rng: rng}
	c.Orbit(0)
	return c
}

// Orbit places the camera on the menu backdrop circle, looking at the origin.
func (c *chaseCamera) Orbit(angle float64) {
	c.Position = mgl64.Vec3{
		math.Cos(angle) * config.MenuOrbitRadius,
		config.MenuOrbitHeight,
		math.Sin(angle) * config.MenuOrbitRadius,
	}
	c.Target = mgl64.Vec3{}
	c.Up = mgl64.Vec3{0, 1, 0}
	c.shake = mgl64.Vec3{}
}

// Follow eases toward the chase position behind and above the ship.
// The remaining gap shrinks to CameraLerpFactor of itself every second.
func (c *chaseCamera) Follow(position mgl64.Vec3, orientation mgl64.Quat, dt float64) {
	desired := position.Add(orientation.Rotate(chaseOffset))
	t := 1 - math.Pow(config.CameraLerpFactor, dt)
	c.Position = physics.Lerp(c.Position, desired, t)
	c.Target = position.Add(object.ForwardOf(orientation).Mul(config.CameraLookAhead))
	c.Up = object.UpOf(orientation)
	c.advanceShake(dt)
}

// Shake starts a jolt whose intensity decays linearly to zero over duration.
func (c *chaseCamera) Shake(intensity, duration float64) {
	c.shakeIntensity = intensity
	c.shakeDuration = duration
	c.shakeElapsed = 0
}

func (c *chaseCamera) advanceShake(dt float64) {
	if c.shakeElapsed >= c.shakeDuration {
		c.shake = mgl64.Vec3{}
		return
	}
	c.shakeElapsed += dt
	k := c.shakeIntensity * (1 - c.shakeElapsed/c.shakeDuration)
	if k <= 0 {
		c.shake = mgl64.Vec3{}
		return
	}
	c.shake = mgl64.Vec3{
		physics.RandomRange(c.rng, -1, 1),
		physics.RandomRange(c.rng, -1, 1),
		physics.RandomRange(c.rng, -1, 1),
	}.Mul(k)
}

// Eye returns the camera position including shake.
func (c *chaseCamera) Eye() mgl64.Vec3 {
	return c.Position.Add(c.shake)
}

// Projector returns a projector for a canvas of width x height pixels.
func (c *chaseCamera) Projector(width, height int) draw.Projector {
	eye := c.Eye()
	return draw.NewProjector(eye, draw.LookRotation(eye, c.Target, c.Up), config.CameraFOV, width, height)
}
