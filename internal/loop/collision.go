package loop

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexrosrgz/GalacticVoyager/internal/loop/config"
	"github.com/alexrosrgz/GalacticVoyager/internal/object"
	"github.com/alexrosrgz/GalacticVoyager/internal/physics"
)

// resolveCollisions applies projectile hits, then bounces the player off at
// most one celestial body.
func (g *Game) resolveCollisions() {
	hits := g.projectiles.CheckCollisions(g.enemies.Active(), g.player)
	for _, hit := range hits {
		switch hit.Type {
		case object.HitEnemy:
			g.hitEnemy(hit.Enemy)
		case object.HitPlayer:
			g.player.TakeDamage(config.ProjectileDamage)
			g.camera.Shake(config.DamageShakeIntensity, config.DamageShakeDuration)
			g.audio.PlayDamage()
			g.logger.Debug("player hit", "health", g.player.Health)
		}
		g.projectiles.Release(hit.Projectile)
	}

	g.resolveBounce()
}

// hitEnemy damages an enemy; the killing blow scores, heals the player and
// hands the wreck to the enemy manager. Enemies already killed earlier in the
// same pass only absorb the projectile.
func (g *Game) hitEnemy(e *object.Enemy) {
	if !e.Active {
		return
	}
	e.TakeDamage(config.ProjectileDamage)
	if e.Health > 0 {
		return
	}
	g.session.Score += config.ScorePerKill
	g.player.Heal()
	g.enemies.HandleDeath(e)
	g.audio.PlayExplosion()
	g.logger.Debug("enemy destroyed", "score", g.session.Score)
}

// resolveBounce pushes the player out of the first overlapping body or moon
// and reflects its velocity. Bodies are tested in system order, each body's
// moons right after it.
func (g *Game) resolveBounce() {
	for _, b := range g.solar.Bodies() {
		if g.bounceOff(b.Position, b.Radius) {
			return
		}
		for _, m := range b.Moons {
			if g.bounceOff(m.Position, m.Radius) {
				return
			}
		}
	}
}

// bounceOff resolves contact with one sphere. Returns false when the player
// does not overlap it.
func (g *Game) bounceOff(center mgl64.Vec3, radius float64) bool {
	p := g.player
	push, normal, ok := physics.Separation(p.Position, p.Radius, center, radius, config.BounceSeparation)
	if !ok {
		return false
	}

	p.Position = p.Position.Add(push)
	p.Velocity = physics.Reflect(p.Velocity, normal, config.BounceRestitution)

	if g.clock-g.session.LastBounceAt >= config.BounceEffectCooldown {
		g.session.LastBounceAt = g.clock
		g.camera.Shake(config.BounceShakeIntensity, config.BounceShakeDuration)
		g.audio.PlayBounce()
		g.logger.Debug("bounce", "speed", p.Speed())
	}
	return true
}
