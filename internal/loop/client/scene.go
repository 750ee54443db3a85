package client

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexrosrgz/GalacticVoyager/internal/draw"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop/config"
	"github.com/alexrosrgz/GalacticVoyager/internal/object"
	"github.com/alexrosrgz/GalacticVoyager/internal/physics"
	"github.com/alexrosrgz/GalacticVoyager/internal/world"
)

// bodyColors tints known bodies; the rest fall back by kind.
var bodyColors = map[string]draw.Color{
	"Mercury": draw.ColorGray,
	"Venus":   draw.ColorWhite,
	"Earth":   draw.ColorBlue,
	"Mars":    draw.ColorRed,
	"Jupiter": draw.ColorOrange,
	"Saturn":  draw.ColorYellow,
	"Uranus":  draw.ColorBrightCyan,
	"Neptune": draw.ColorBlue,
}

func bodyColor(name string, emissive, moon bool) draw.Color {
	if c, ok := bodyColors[name]; ok {
		return c
	}
	switch {
	case emissive:
		return draw.ColorYellow
	case moon:
		return draw.ColorGray
	default:
		return draw.ColorCyan
	}
}

type spriteKind int

const (
	spriteDisc spriteKind = iota
	spriteRing
	spriteLine
	spriteDot
)

// sprite is one projected primitive, drawn far to near.
type sprite struct {
	kind   spriteKind
	depth  float64
	a, b   draw.Point
	radius float64
	color  draw.Color
}

// drawScene projects the sky, the bodies, every ship and bolt onto the canvas.
func (c *Client) drawScene() {
	w, h := c.canvas.PixelWidth(), c.canvas.PixelHeight()
	if w == 0 || h == 0 {
		return
	}
	pr := c.camera.Projector(w, h)

	for _, dir := range c.stars {
		if pt, ok := pr.ProjectDirection(dir); ok {
			c.canvas.SetPoint(pt, draw.ColorGray)
		}
	}

	c.sprites = c.sprites[:0]
	solar := c.game.SolarSystem()
	eye := c.camera.Eye()
	for _, sys := range solar.Systems() {
		c.collectBelt(pr, eye, sys.Belt)
	}
	for _, b := range solar.Bodies() {
		c.collectBody(pr, b)
	}
	for _, e := range c.game.Enemies().Active() {
		color := draw.ColorRed
		if e.Flashing() {
			color = draw.ColorWhite
		}
		c.addDisc(pr, e.Position, e.Radius, color)
	}
	for _, x := range c.game.Enemies().Explosions() {
		color := draw.ColorYellow
		if x.Opacity() < 0.5 {
			color = draw.ColorOrange
		}
		for _, p := range x.Particles {
			c.addDot(pr, p.Position, color)
		}
	}
	for _, p := range c.game.Projectiles().Active() {
		color := draw.ColorGreen
		if p.Source == object.SourceEnemy {
			color = draw.ColorMagenta
		}
		tail := p.Position.Sub(physics.Normalize(p.Velocity).Mul(4))
		c.addLine(pr, p.Position, tail, color)
	}
	if c.game.State() == loop.GameStatePlaying {
		c.collectShip(pr, c.game.Player())
	}

	sort.Slice(c.sprites, func(i, j int) bool {
		return c.sprites[i].depth > c.sprites[j].depth
	})
	for i := range c.sprites {
		s := &c.sprites[i]
		switch s.kind {
		case spriteDisc:
			c.canvas.DrawDisc(s.a, s.radius, s.color)
		case spriteRing:
			c.canvas.DrawRing(s.a, s.radius, s.color)
		case spriteLine:
			c.canvas.DrawLine(s.a, s.b, s.color)
		case spriteDot:
			c.canvas.SetPoint(s.a, s.color)
		}
	}
}

func (c *Client) collectBelt(pr draw.Projector, eye mgl64.Vec3, belt *world.AsteroidBelt) {
	if belt == nil {
		return
	}
	maxSq := config.BeltDrawDistance * config.BeltDrawDistance
	for i := range belt.Rocks {
		r := &belt.Rocks[i]
		if physics.DistanceSquared(eye, r.Position) > maxSq {
			continue
		}
		c.addDot(pr, r.Position, draw.ColorGray)
	}
}

func (c *Client) collectBody(pr draw.Projector, b *world.CelestialBody) {
	color := bodyColor(b.Name, b.Emissive, false)
	if pt, depth, ok := pr.Project(b.Position); ok {
		r := pr.Scale(b.Radius, depth)
		if pr.Visible(pt, r*2) {
			c.sprites = append(c.sprites, sprite{kind: spriteDisc, depth: depth, a: pt, radius: r, color: color})
			if b.Rings {
				c.sprites = append(c.sprites, sprite{kind: spriteRing, depth: depth - b.Radius, a: pt, radius: r * 1.8, color: draw.ColorYellow})
			}
		}
	}
	for _, m := range b.Moons {
		c.addDisc(pr, m.Position, m.Radius, bodyColor(m.Name, false, true))
	}
}

func (c *Client) collectShip(pr draw.Projector, p *object.Player) {
	fwd := object.ForwardOf(p.Orientation)
	right := object.RightOf(p.Orientation)
	up := object.UpOf(p.Orientation)

	nose := p.Position.Add(fwd.Mul(6))
	back := p.Position.Sub(fwd.Mul(3))
	left := back.Sub(right.Mul(4))
	rightWing := back.Add(right.Mul(4))
	fin := back.Add(up.Mul(1.5))

	c.addLine(pr, nose, left, draw.ColorWhite)
	c.addLine(pr, nose, rightWing, draw.ColorWhite)
	c.addLine(pr, left, rightWing, draw.ColorWhite)
	c.addLine(pr, nose, fin, draw.ColorGray)
	if p.IsThrusting {
		flame := draw.ColorOrange
		if p.IsBoosting {
			flame = draw.ColorBrightCyan
		}
		c.addDot(pr, back.Sub(fwd.Mul(1.5)), flame)
	}
}

func (c *Client) addDisc(pr draw.Projector, pos mgl64.Vec3, radius float64, color draw.Color) {
	pt, depth, ok := pr.Project(pos)
	if !ok {
		return
	}
	r := pr.Scale(radius, depth)
	if !pr.Visible(pt, r) {
		return
	}
	c.sprites = append(c.sprites, sprite{kind: spriteDisc, depth: depth, a: pt, radius: r, color: color})
}

func (c *Client) addDot(pr draw.Projector, pos mgl64.Vec3, color draw.Color) {
	pt, depth, ok := pr.Project(pos)
	if !ok || !pr.Visible(pt, 0) {
		return
	}
	c.sprites = append(c.sprites, sprite{kind: spriteDot, depth: depth, a: pt, color: color})
}

func (c *Client) addLine(pr draw.Projector, from, to mgl64.Vec3, color draw.Color) {
	a, da, okA := pr.Project(from)
	b, db, okB := pr.Project(to)
	if !okA || !okB {
		return
	}
	if !pr.Visible(a, 0) && !pr.Visible(b, 0) {
		return
	}
	c.sprites = append(c.sprites, sprite{kind: spriteLine, depth: (da + db) / 2, a: a, b: b, color: color})
}
