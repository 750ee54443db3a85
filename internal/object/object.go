// Package object holds the simulated entities (player ship, enemy fighters,
// projectiles, explosion particles) and the managers that own their pools.
package object

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Logical key codes queried through Input.IsKeyDown.
const (
	KeyW       = "KeyW"
	KeyA       = "KeyA"
	KeyS       = "KeyS"
	KeyD       = "KeyD"
	ShiftLeft  = "ShiftLeft"
	ShiftRight = "ShiftRight"
)

// Input is the control source the simulation reads each frame.
type Input interface {
	// IsKeyDown reports whether the key with the given logical code is held.
	IsKeyDown(code string) bool
	// IsMouseDown reports whether the fire button is held.
	IsMouseDown() bool
	// MouseDelta returns the pointer movement accumulated since the last reset.
	MouseDelta() (dx, dy float64)
	// ResetMouseDelta clears the accumulated pointer movement.
	ResetMouseDelta()
	// PointerLocked reports whether the pointer is captured by the game.
	PointerLocked() bool
}

// Source identifies who fired a projectile.
type Source int

const (
	SourcePlayer Source = iota
	SourceEnemy
)

func (s Source) String() string {
	switch s {
	case SourcePlayer:
		return "player"
	case SourceEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Launcher is the fire-capable handle entities receive instead of the full
// projectile manager.
type Launcher interface {
	Fire(position, direction mgl64.Vec3, source Source)
}

// Body-frame axes. Ships face -Z with +Y up.
var (
	localForward = mgl64.Vec3{0, 0, -1}
	localRight   = mgl64.Vec3{1, 0, 0}
	localUp      = mgl64.Vec3{0, 1, 0}
)

// ForwardOf returns the world-space forward axis of an orientation.
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(localForward).Normalize()
}

// RightOf returns the world-space right axis of an orientation.
func RightOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(localRight).Normalize()
}

// UpOf returns the world-space up axis of an orientation.
func UpOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(localUp).Normalize()
}

// LookAlong returns the orientation whose forward axis points along dir.
// dir must be non-zero.
func LookAlong(dir mgl64.Vec3) mgl64.Quat {
	return mgl64.QuatBetweenVectors(localForward, dir.Normalize())
}
