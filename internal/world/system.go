package world

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexrosrgz/GalacticVoyager/internal/physics"
)

// StarSystem groups the bodies and belt sharing one center and boundary.
type StarSystem struct {
	Name   string
	Center mgl64.Vec3
	Radius float64
	Bodies []*CelestialBody
	Belt   *AsteroidBelt
}

// Contains reports whether p lies inside the system boundary.
func (s *StarSystem) Contains(p mgl64.Vec3) bool {
	return physics.DistanceSquared(p, s.Center) <= s.Radius*s.Radius
}

// SolarSystem owns every star system and advances their motion.
type SolarSystem struct {
	systems []*StarSystem
	bodies  []*CelestialBody // All systems, in declaration order
}

// NewSolarSystem builds the systems described by configs. Orbit phases are
// drawn from rng.
func NewSolarSystem(configs []SystemConfig, rng *rand.Rand) (*SolarSystem, error) {
	ss := &SolarSystem{}
	for _, sc := range configs {
		sys := &StarSystem{Name: sc.Name, Center: sc.Center, Radius: sc.Radius}
		byName := make(map[string]*CelestialBody, len(sc.Bodies))
		for _, bc := range sc.Bodies {
			if err := bc.validate(); err != nil {
				return nil, fmt.Errorf("system %q body %q: %w", sc.Name, bc.Name, err)
			}
			var parent *CelestialBody
			if bc.Parent != "" {
				p, ok := byName[bc.Parent]
				if !ok {
					return nil, fmt.Errorf("system %q body %q parent %q: %w", sc.Name, bc.Name, bc.Parent, ErrUnknownParent)
				}
				parent = p
			}
			b := newCelestialBody(bc, sc.Center, parent, rng)
			if bc.Companion != "" {
				c, ok := byName[bc.Companion]
				if !ok {
					return nil, fmt.Errorf("system %q body %q companion %q: %w", sc.Name, bc.Name, bc.Companion, ErrUnknownParent)
				}
				b.anomaly = c.anomaly
				b.place()
			}
			byName[bc.Name] = b
			sys.Bodies = append(sys.Bodies, b)
			ss.bodies = append(ss.bodies, b)
		}
		if sc.Belt != nil {
			sys.Belt = NewAsteroidBelt(*sc.Belt, sc.Center, rng)
		}
		ss.systems = append(ss.systems, sys)
	}
	return ss, nil
}

// Update advances every body, moon and belt by dt seconds.
func (ss *SolarSystem) Update(dt float64) {
	for _, sys := range ss.systems {
		for _, b := range sys.Bodies {
			b.Update(dt)
		}
		if sys.Belt != nil {
			sys.Belt.Update(dt)
		}
	}
}

// Systems returns the star systems in declaration order.
func (ss *SolarSystem) Systems() []*StarSystem {
	return ss.systems
}

// Bodies returns every body of every system in declaration order.
func (ss *SolarSystem) Bodies() []*CelestialBody {
	return ss.bodies
}

// Infos appends a snapshot of every body followed by its moons to dst.
func (ss *SolarSystem) Infos(dst []BodyInfo) []BodyInfo {
	for _, b := range ss.bodies {
		dst = append(dst, b.Info())
		for _, m := range b.Moons {
			dst = append(dst, BodyInfo{Name: m.Name, Position: m.Position, Radius: m.Radius, Moon: true})
		}
	}
	return dst
}

// Locate names the system whose boundary contains p, preferring the nearest
// center when boundaries overlap. Returns InterstellarSpace otherwise.
func (ss *SolarSystem) Locate(p mgl64.Vec3) string {
	name := InterstellarSpace
	best := -1.0
	for _, sys := range ss.systems {
		if !sys.Contains(p) {
			continue
		}
		d := physics.DistanceSquared(p, sys.Center)
		if best < 0 || d < best {
			best = d
			name = sys.Name
		}
	}
	return name
}

// Find returns the body with the given name.
func (ss *SolarSystem) Find(name string) (*CelestialBody, bool) {
	for _, b := range ss.bodies {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}
