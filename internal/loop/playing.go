package loop

// updatePlaying runs one frame of play in the fixed order: player, enemies,
// projectiles, collisions, then the star systems.
func (g *Game) updatePlaying(dt float64) {
	p := g.player

	p.Update(dt, g.input)
	if g.input.IsMouseDown() && g.input.PointerLocked() {
		if p.Fire(g.projectiles) {
			g.audio.PlayLaser()
		}
	}

	if p.IsBoosting && !g.session.WasBoosting {
		g.audio.PlayBoost()
	}
	g.session.WasBoosting = p.IsBoosting
	g.audio.UpdateEngine(p.IsThrusting, p.IsBoosting, p.Speed())

	g.camera.Follow(p.Position, p.Orientation, dt)

	g.enemies.Update(dt, p.Position, g.projectiles, g.session.Score)
	g.projectiles.Update(dt)
	g.resolveCollisions()
	g.solar.Update(dt)

	system := g.solar.Locate(p.Position)
	if system != g.session.System {
		g.logger.Debug("entered system", "name", system)
		g.session.System = system
	}
	g.hud.SetSystem(system)
	g.hud.Update(p.Health, p.MaxHealth, g.session.Score, p.Speed())

	g.bodies = g.solar.Infos(g.bodies[:0])
	g.minimap.Update(p.Position, p.Orientation, g.enemies.Active(), g.bodies)

	if p.Health <= 0 {
		// State is playing here, so EndGame cannot fail.
		_ = g.EndGame()
	}
}
