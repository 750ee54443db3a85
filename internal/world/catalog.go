package world

import "github.com/go-gl/mathgl/mgl64"

// System names.
const (
	SolName           = "Sol"
	AlphaCentauriName = "Alpha Centauri"
)

// AlphaCentauriCenter is the barycenter of the Alpha Centauri system.
var AlphaCentauriCenter = mgl64.Vec3{16000, 0, -12000}

// Catalog returns the playable star systems: Sol at the origin and Alpha
// Centauri far out along -Z.
func Catalog() []SystemConfig {
	return []SystemConfig{Sol(), AlphaCentauri()}
}

// Sol is the home system.
func Sol() SystemConfig {
	return SystemConfig{
		Name:   SolName,
		Center: mgl64.Vec3{},
		Radius: 4000,
		Bodies: []BodyConfig{
			{Name: "Sun", Radius: 80, RotationSpeed: 0.05, Emissive: true},
			{Name: "Mercury", Radius: 3, Distance: 200, OrbitalSpeed: 0.04, RotationSpeed: 0.01, Eccentricity: 0.2056, Tilt: 0.122},
			{Name: "Venus", Radius: 7.5, Distance: 300, OrbitalSpeed: 0.035, RotationSpeed: 0.005},
			{Name: "Earth", Radius: 8, Distance: 400, OrbitalSpeed: 0.03, RotationSpeed: 0.3, Moons: []MoonConfig{
				{Name: "Moon", Radius: 2.2, OrbitRadius: 20, OrbitSpeed: 0.5},
			}},
			{Name: "Mars", Radius: 4.3, Distance: 600, OrbitalSpeed: 0.02, RotationSpeed: 0.28, Moons: []MoonConfig{
				{Name: "Phobos", Radius: 0.8, OrbitRadius: 9, OrbitSpeed: 1.2},
				{Name: "Deimos", Radius: 0.6, OrbitRadius: 14, OrbitSpeed: 0.7},
			}},
			{Name: "Jupiter", Radius: 34, Distance: 1200, OrbitalSpeed: 0.01, RotationSpeed: 0.5, Moons: []MoonConfig{
				{Name: "Io", Radius: 2, OrbitRadius: 48, OrbitSpeed: 0.6},
				{Name: "Europa", Radius: 1.8, OrbitRadius: 60, OrbitSpeed: 0.45},
				{Name: "Ganymede", Radius: 2.8, OrbitRadius: 75, OrbitSpeed: 0.3},
				{Name: "Callisto", Radius: 2.6, OrbitRadius: 92, OrbitSpeed: 0.2},
			}},
			{Name: "Saturn", Radius: 30, Distance: 1800, OrbitalSpeed: 0.007, RotationSpeed: 0.45, Rings: true, Moons: []MoonConfig{
				{Name: "Titan", Radius: 2.7, OrbitRadius: 80, OrbitSpeed: 0.25},
			}},
			{Name: "Uranus", Radius: 18, Distance: 2500, OrbitalSpeed: 0.004, RotationSpeed: 0.4},
			{Name: "Neptune", Radius: 17.5, Distance: 3200, OrbitalSpeed: 0.003, RotationSpeed: 0.42},
		},
		Belt: &BeltConfig{
			InnerRadius:  750,
			OuterRadius:  1000,
			Count:        400,
			MinSize:      1,
			MaxSize:      6,
			Thickness:    30,
			OrbitalSpeed: 0.015,
		},
	}
}

// AlphaCentauri is the neighbouring triple system. A and B share an
// eccentric orbit around the barycenter on opposite sides; Proxima keeps
// its planets through the parent reference.
func AlphaCentauri() SystemConfig {
	return SystemConfig{
		Name:   AlphaCentauriName,
		Center: AlphaCentauriCenter,
		Radius: 3500,
		Bodies: []BodyConfig{
			{Name: "Alpha Centauri A", Radius: 70, Distance: 300, OrbitalSpeed: 0.01, RotationSpeed: 0.04, Eccentricity: 0.52, Emissive: true},
			{Name: "Alpha Centauri B", Radius: 60, Distance: 360, OrbitalSpeed: 0.01, RotationSpeed: 0.05, Eccentricity: 0.52, Reversed: true, Companion: "Alpha Centauri A", Emissive: true},
			{Name: "Proxima Centauri", Radius: 20, Distance: 2600, OrbitalSpeed: 0.002, RotationSpeed: 0.1, Tilt: 0.2, Emissive: true},
			{Name: "Proxima b", Radius: 6, Distance: 60, OrbitalSpeed: 0.08, RotationSpeed: 0.3, Parent: "Proxima Centauri"},
			{Name: "Proxima d", Radius: 3, Distance: 35, OrbitalSpeed: 0.12, RotationSpeed: 0.2, Parent: "Proxima Centauri"},
		},
		Belt: &BeltConfig{
			InnerRadius:  1200,
			OuterRadius:  1500,
			Count:        250,
			MinSize:      1,
			MaxSize:      5,
			Thickness:    40,
			OrbitalSpeed: 0.01,
		},
	}
}
