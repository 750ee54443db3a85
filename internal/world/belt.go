package world

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Rock is one asteroid of a belt.
type Rock struct {
	Position mgl64.Vec3
	Radius   float64

	distance float64
	angle    float64
	yOffset  float64
	speed    float64
}

// AsteroidBelt is a band of rocks orbiting a system center. Inner rocks
// travel faster than outer ones.
type AsteroidBelt struct {
	InnerRadius float64
	OuterRadius float64
	Center      mgl64.Vec3
	Rocks       []Rock
	MaxRadius   float64
}

// NewAsteroidBelt scatters cfg.Count rocks between the inner and outer radius.
// Sizes skew small.
func NewAsteroidBelt(cfg BeltConfig, center mgl64.Vec3, rng *rand.Rand) *AsteroidBelt {
	b := &AsteroidBelt{
		InnerRadius: cfg.InnerRadius,
		OuterRadius: cfg.OuterRadius,
		Center:      center,
		Rocks:       make([]Rock, cfg.Count),
	}
	span := cfg.OuterRadius - cfg.InnerRadius
	for i := range b.Rocks {
		r := &b.Rocks[i]
		r.distance = cfg.InnerRadius + rng.Float64()*span
		r.angle = rng.Float64() * 2 * math.Pi
		r.yOffset = ((rng.Float64()+rng.Float64())/2 - 0.5) * cfg.Thickness
		r.Radius = cfg.MinSize + math.Pow(rng.Float64(), 3)*(cfg.MaxSize-cfg.MinSize)
		b.MaxRadius = math.Max(b.MaxRadius, r.Radius)

		norm := 0.0
		if span > 0 {
			norm = (r.distance - cfg.InnerRadius) / span
		}
		r.speed = cfg.OrbitalSpeed * (1.2 - 0.4*norm) * (0.9 + rng.Float64()*0.2)
		r.place(center)
	}
	return b
}

// Update advances every rock along its orbit.
func (b *AsteroidBelt) Update(dt float64) {
	for i := range b.Rocks {
		r := &b.Rocks[i]
		r.angle += r.speed * dt
		r.place(b.Center)
	}
}

// Contains reports whether the point lies within the belt's annulus in the
// orbital plane.
func (b *AsteroidBelt) Contains(p mgl64.Vec3) bool {
	dx := p.X() - b.Center.X()
	dz := p.Z() - b.Center.Z()
	d := math.Hypot(dx, dz)
	return d >= b.InnerRadius && d <= b.OuterRadius
}

func (r *Rock) place(center mgl64.Vec3) {
	r.Position = center.Add(mgl64.Vec3{
		math.Cos(r.angle) * r.distance,
		r.yOffset,
		math.Sin(r.angle) * r.distance,
	})
}
