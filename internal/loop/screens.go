package loop

import "github.com/alexrosrgz/GalacticVoyager/internal/loop/config"

// updateMenu circles the backdrop camera while the sky keeps moving.
func (g *Game) updateMenu(dt float64) {
	g.session.MenuAngle += dt * config.MenuOrbitSpeed
	g.camera.Orbit(g.session.MenuAngle)
	g.solar.Update(dt)
}

// updateGameOver freezes play but keeps the sky moving.
func (g *Game) updateGameOver(dt float64) {
	g.solar.Update(dt)
}
