package loop

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexrosrgz/GalacticVoyager/internal/object"
	"github.com/alexrosrgz/GalacticVoyager/internal/world"
)

// Audio receives fire-and-forget sound triggers and the engine feed.
type Audio interface {
	PlayLaser()
	PlayDamage()
	PlayBoost()
	PlayExplosion()
	PlayBounce()
	UpdateEngine(thrusting, boosting bool, speed float64)
}

// HUD shows the pilot's vitals while playing.
type HUD interface {
	Show()
	Hide()
	Update(health, maxHealth float64, score int, speed float64)
	SetSystem(name string)
}

// Minimap plots the player, enemies and bodies.
type Minimap interface {
	Update(position mgl64.Vec3, orientation mgl64.Quat, enemies []*object.Enemy, bodies []world.BodyInfo)
}

// Menu shows the start and game over screens. The game registers its start
// and restart entry points through OnStart and OnRestart.
type Menu interface {
	ShowStart()
	ShowGameOver(score int)
	HideAll()
	OnStart(fn func())
	OnRestart(fn func())
}

// Camera frames the scene.
type Camera interface {
	// Orbit places the camera on the menu backdrop orbit.
	Orbit(angle float64)
	// Follow eases the camera toward its chase position behind the ship.
	Follow(position mgl64.Vec3, orientation mgl64.Quat, dt float64)
	// Shake jolts the view with a linearly decaying intensity.
	Shake(intensity, duration float64)
}

type nopAudio struct{}

func (nopAudio) PlayLaser()                       {}
func (nopAudio) PlayDamage()                      {}
func (nopAudio) PlayBoost()                       {}
func (nopAudio) PlayExplosion()                   {}
func (nopAudio) PlayBounce()                      {}
func (nopAudio) UpdateEngine(bool, bool, float64) {}

type nopHUD struct{}

func (nopHUD) Show()                                 {}
func (nopHUD) Hide()                                 {}
func (nopHUD) Update(float64, float64, int, float64) {}
func (nopHUD) SetSystem(string)                      {}

type nopMinimap struct{}

func (nopMinimap) Update(mgl64.Vec3, mgl64.Quat, []*object.Enemy, []world.BodyInfo) {}

type nopMenu struct{}

func (nopMenu) ShowStart()       {}
func (nopMenu) ShowGameOver(int) {}
func (nopMenu) HideAll()         {}
func (nopMenu) OnStart(func())   {}
func (nopMenu) OnRestart(func()) {}

type nopCamera struct{}

func (nopCamera) Orbit(float64)                          {}
func (nopCamera) Follow(mgl64.Vec3, mgl64.Quat, float64) {}
func (nopCamera) Shake(float64, float64)                 {}

type nopInput struct{}

func (nopInput) IsKeyDown(string) bool          { return false }
func (nopInput) IsMouseDown() bool              { return false }
func (nopInput) MouseDelta() (float64, float64) { return 0, 0 }
func (nopInput) ResetMouseDelta()               {}
func (nopInput) PointerLocked() bool            { return false }
