// Package world simulates the star systems the player flies through: orbiting
// bodies, their moons and asteroid belts, plus which system a point lies in.
package world

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// InterstellarSpace is the location name reported outside every system boundary.
const InterstellarSpace = "Interstellar Space"

var (
	// ErrUnknownParent is returned when a body names a parent or companion
	// that is not declared earlier in the same system.
	ErrUnknownParent = errors.New("unknown parent body")
	// ErrInvalidOrbit is returned for eccentricity outside [0, 1) or a
	// negative orbit distance or radius.
	ErrInvalidOrbit = errors.New("invalid orbit")
)

// MoonConfig describes a moon on a circular orbit around its body.
type MoonConfig struct {
	Name        string
	Radius      float64
	OrbitRadius float64
	OrbitSpeed  float64 // Radians per second
}

// BodyConfig describes a star or planet.
type BodyConfig struct {
	Name          string
	Radius        float64
	Distance      float64 // Semi-major axis; 0 pins the body to its origin
	OrbitalSpeed  float64 // Mean motion, radians per second
	RotationSpeed float64 // Spin, radians per second
	Eccentricity  float64 // 0 = circle
	Tilt          float64 // Orbit inclination about the X axis, radians
	Reversed      bool    // Mirror the orbit through its focus (binary companion)
	Parent        string  // Body orbited instead of the system center
	Companion     string  // Body whose orbital phase this one starts with
	Emissive      bool
	Rings         bool
	Moons         []MoonConfig
}

// BeltConfig describes a ring of asteroids around a system center.
type BeltConfig struct {
	InnerRadius  float64
	OuterRadius  float64
	Count        int
	MinSize      float64
	MaxSize      float64
	Thickness    float64 // Vertical spread
	OrbitalSpeed float64 // Radians per second at the inner edge, before falloff
}

// SystemConfig describes one star system.
type SystemConfig struct {
	Name   string
	Center mgl64.Vec3
	Radius float64 // Boundary used for location lookup
	Bodies []BodyConfig
	Belt   *BeltConfig
}

func (c BodyConfig) validate() error {
	if c.Eccentricity < 0 || c.Eccentricity >= 1 || c.Distance < 0 || c.Radius < 0 {
		return ErrInvalidOrbit
	}
	return nil
}
