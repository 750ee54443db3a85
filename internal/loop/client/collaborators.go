package client

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexrosrgz/GalacticVoyager/internal/loop"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop/config"
	"github.com/alexrosrgz/GalacticVoyager/internal/object"
	"github.com/alexrosrgz/GalacticVoyager/internal/world"
)

var (
	_ loop.HUD     = (*termHUD)(nil)
	_ loop.Minimap = (*radar)(nil)
	_ loop.Menu    = (*termMenu)(nil)
	_ loop.Audio   = (*bellAudio)(nil)
	_ loop.Camera  = (*chaseCamera)(nil)
)

// termHUD keeps the vitals drawn by drawPlayingHUD.
type termHUD struct {
	visible   bool
	health    float64
	maxHealth float64
	score     int
	speed     float64
	system    string
}

func (h *termHUD) Show() { h.visible = true }
func (h *termHUD) Hide() { h.visible = false }

func (h *termHUD) Update(health, maxHealth float64, score int, speed float64) {
	h.health = health
	h.maxHealth = maxHealth
	h.score = score
	h.speed = speed
}

func (h *termHUD) SetSystem(name string) { h.system = name }

// blipKind orders radar contacts; higher kinds win a shared cell.
type blipKind int

const (
	blipMoon blipKind = iota + 1
	blipBody
	blipStar
	blipEnemy
)

// blip is a radar contact in [-1, 1] radar space. Negative Y is ahead.
type blip struct {
	X, Y float64
	Kind blipKind
}

// radar implements loop.Minimap as a top-down scope centered on the ship,
// turned so the nose points up.
type radar struct {
	blips []blip
}

// radarPoint places target on the scope of a ship at position with the
// given orientation. ok is false beyond MinimapRange.
func radarPoint(position mgl64.Vec3, orientation mgl64.Quat, target mgl64.Vec3) (x, y float64, ok bool) {
	local := orientation.Conjugate().Rotate(target.Sub(position))
	x = local.X() / config.MinimapRange
	y = local.Z() / config.MinimapRange
	return x, y, x*x+y*y <= 1
}

// pinToRim scales (x, y) back onto the scope edge.
func pinToRim(x, y float64) (float64, float64) {
	d := math.Hypot(x, y)
	if d <= 1 || d == 0 {
		return x, y
	}
	return x / d, y / d
}

// Update replots every contact. Stars out of range stay on the rim as
// bearings.
func (r *radar) Update(position mgl64.Vec3, orientation mgl64.Quat, enemies []*object.Enemy, bodies []world.BodyInfo) {
	r.blips = r.blips[:0]
	for _, b := range bodies {
		x, y, ok := radarPoint(position, orientation, b.Position)
		kind := blipBody
		switch {
		case b.Emissive:
			kind = blipStar
			if !ok {
				x, y = pinToRim(x, y)
				ok = true
			}
		case b.Moon:
			kind = blipMoon
		}
		if ok {
			r.blips = append(r.blips, blip{X: x, Y: y, Kind: kind})
		}
	}
	for _, e := range enemies {
		if x, y, ok := radarPoint(position, orientation, e.Position); ok {
			r.blips = append(r.blips, blip{X: x, Y: y, Kind: blipEnemy})
		}
	}
}

// menuScreen is the overlay the menu collaborator is showing.
type menuScreen int

const (
	menuHidden menuScreen = iota
	menuStart
	menuGameOver
)

// termMenu implements loop.Menu. Trigger plays the role of the on-screen
// button.
type termMenu struct {
	screen    menuScreen
	score     int
	onStart   func()
	onRestart func()
}

func (m *termMenu) ShowStart() { m.screen = menuStart }

func (m *termMenu) ShowGameOver(score int) {
	m.screen = menuGameOver
	m.score = score
}

func (m *termMenu) HideAll() { m.screen = menuHidden }

func (m *termMenu) OnStart(fn func()) { m.onStart = fn }

func (m *termMenu) OnRestart(fn func()) { m.onRestart = fn }

// Trigger presses the button of the current screen. Reports whether a
// callback ran.
func (m *termMenu) Trigger() bool {
	switch m.screen {
	case menuStart:
		if m.onStart != nil {
			m.onStart()
			return true
		}
	case menuGameOver:
		if m.onRestart != nil {
			m.onRestart()
			return true
		}
	}
	return false
}

// bellAudio implements loop.Audio on a terminal: hits ring the bell, every
// other cue is only logged.
type bellAudio struct {
	logger    *log.Logger
	ring      bool
	thrusting bool
	boosting  bool
	speed     float64
}

func (a *bellAudio) PlayLaser()  { a.logger.Debug("sfx", "cue", "laser") }
func (a *bellAudio) PlayBoost()  { a.logger.Debug("sfx", "cue", "boost") }
func (a *bellAudio) PlayBounce() { a.logger.Debug("sfx", "cue", "bounce") }

func (a *bellAudio) PlayDamage() {
	a.logger.Debug("sfx", "cue", "damage")
	a.ring = true
}

func (a *bellAudio) PlayExplosion() {
	a.logger.Debug("sfx", "cue", "explosion")
	a.ring = true
}

func (a *bellAudio) UpdateEngine(thrusting, boosting bool, speed float64) {
	a.thrusting = thrusting
	a.boosting = boosting
	a.speed = speed
}

// takeRing reports and clears a pending bell.
func (a *bellAudio) takeRing() bool {
	r := a.ring
	a.ring = false
	return r
}
