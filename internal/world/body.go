package world

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// keplerIterations bounds the Newton solve; e < 1 converges well within it.
const keplerIterations = 12

// BodyInfo is a read-only snapshot of a collidable body.
type BodyInfo struct {
	Name     string
	Position mgl64.Vec3
	Radius   float64
	Emissive bool
	Moon     bool
}

// Moon circles its body on a flat orbit.
type Moon struct {
	Name        string
	Radius      float64
	Position    mgl64.Vec3
	orbitRadius float64
	orbitSpeed  float64
	angle       float64
}

func (m *Moon) place(center mgl64.Vec3) {
	m.Position = center.Add(mgl64.Vec3{
		math.Cos(m.angle) * m.orbitRadius,
		0,
		math.Sin(m.angle) * m.orbitRadius,
	})
}

// CelestialBody is a star or planet on a circular or Kepler-ellipse orbit.
type CelestialBody struct {
	Name     string
	Radius   float64
	Position mgl64.Vec3
	Spin     float64 // Accumulated rotation, radians
	Emissive bool
	Rings    bool
	Moons    []*Moon
	Parent   *CelestialBody

	center        mgl64.Vec3
	distance      float64
	orbitalSpeed  float64
	rotationSpeed float64
	eccentricity  float64
	tilt          float64
	reversed      bool
	anomaly       float64 // Mean anomaly, radians
}

func newCelestialBody(cfg BodyConfig, center mgl64.Vec3, parent *CelestialBody, rng *rand.Rand) *CelestialBody {
	b := &CelestialBody{
		Name:          cfg.Name,
		Radius:        cfg.Radius,
		Emissive:      cfg.Emissive,
		Rings:         cfg.Rings,
		Parent:        parent,
		center:        center,
		distance:      cfg.Distance,
		orbitalSpeed:  cfg.OrbitalSpeed,
		rotationSpeed: cfg.RotationSpeed,
		eccentricity:  cfg.Eccentricity,
		tilt:          cfg.Tilt,
		reversed:      cfg.Reversed,
		anomaly:       rng.Float64() * 2 * math.Pi,
	}
	for _, mc := range cfg.Moons {
		b.Moons = append(b.Moons, &Moon{
			Name:        mc.Name,
			Radius:      mc.Radius,
			orbitRadius: mc.OrbitRadius,
			orbitSpeed:  mc.OrbitSpeed,
			angle:       rng.Float64() * 2 * math.Pi,
		})
	}
	b.place()
	return b
}

// Update advances spin, orbit and moons by dt seconds. A parent must be
// updated before its children.
func (b *CelestialBody) Update(dt float64) {
	b.Spin += b.rotationSpeed * dt
	if b.distance > 0 {
		b.anomaly += b.orbitalSpeed * dt
	}
	for _, m := range b.Moons {
		m.angle += m.orbitSpeed * dt
	}
	b.place()
}

// Origin is the point the body orbits: its parent, or the system center.
func (b *CelestialBody) Origin() mgl64.Vec3 {
	if b.Parent != nil {
		return b.Parent.Position
	}
	return b.center
}

// Info returns a collision snapshot of the body.
func (b *CelestialBody) Info() BodyInfo {
	return BodyInfo{Name: b.Name, Position: b.Position, Radius: b.Radius, Emissive: b.Emissive}
}

func (b *CelestialBody) place() {
	b.Position = b.Origin().Add(OrbitOffset(b.distance, b.eccentricity, b.tilt, b.anomaly, b.reversed))
	for _, m := range b.Moons {
		m.place(b.Position)
	}
}

// OrbitOffset returns the position relative to the focus of an orbit with
// semi-major axis a and eccentricity e at mean anomaly m, inclined by tilt
// about the X axis. Reversed mirrors the point through the focus.
func OrbitOffset(a, e, tilt, m float64, reversed bool) mgl64.Vec3 {
	if a == 0 {
		return mgl64.Vec3{}
	}
	E := SolveKepler(m, e)
	x := a * (math.Cos(E) - e)
	z := a * math.Sqrt(1-e*e) * math.Sin(E)
	off := mgl64.Vec3{x, -z * math.Sin(tilt), z * math.Cos(tilt)}
	if reversed {
		off = off.Mul(-1)
	}
	return off
}

// SolveKepler returns the eccentric anomaly E satisfying E - e·sin(E) = m.
func SolveKepler(m, e float64) float64 {
	if e == 0 {
		return m
	}
	m = math.Mod(m, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	E := m
	if e > 0.8 {
		E = math.Pi
	}
	for i := 0; i < keplerIterations; i++ {
		d := (E - e*math.Sin(E) - m) / (1 - e*math.Cos(E))
		E -= d
		if math.Abs(d) < 1e-12 {
			break
		}
	}
	return E
}
