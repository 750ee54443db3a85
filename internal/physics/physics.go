// Package physics provides collision detection, distance and sampling utilities
// for the 3D world.
package physics

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world-up axis.
var Up = mgl64.Vec3{0, 1, 0}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b mgl64.Vec3) float64 {
	return b.Sub(a).Len()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b mgl64.Vec3) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// PointInSphere checks if a point is strictly within radius of a center.
func PointInSphere(p, center mgl64.Vec3, radius float64) bool {
	return DistanceSquared(p, center) < radius*radius
}

// SpheresOverlap checks if two spheres overlap.
func SpheresOverlap(c1 mgl64.Vec3, r1 float64, c2 mgl64.Vec3, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(c1, c2) < minDist*minDist
}

// Normalize returns v scaled to unit length, or the zero vector when v has no length.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Reflect bounces v off a surface with unit normal n using restitution e.
// Velocity moving away from the surface (v·n >= 0) is returned unchanged.
func Reflect(v, n mgl64.Vec3, e float64) mgl64.Vec3 {
	dvn := v.Dot(n)
	if dvn >= 0 {
		return v
	}
	return v.Sub(n.Mul((1 + e) * dvn))
}

// Separation returns the push-out vector that moves a sphere at p (radius r1)
// clear of a sphere at c (radius r2) plus buffer, along the center-to-p normal.
// The returned normal is the unit contact normal; ok is false when the spheres
// do not overlap.
func Separation(p mgl64.Vec3, r1 float64, c mgl64.Vec3, r2, buffer float64) (push, normal mgl64.Vec3, ok bool) {
	if !SpheresOverlap(p, r1, c, r2) {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	delta := p.Sub(c)
	dist := delta.Len()
	if dist == 0 {
		// Concentric: pick world-up so the push is still well defined.
		normal = Up
	} else {
		normal = delta.Mul(1 / dist)
	}
	overlap := r1 + r2 + buffer - dist
	return normal.Mul(overlap), normal, true
}

// RandomRange returns a uniformly distributed value in [min, max).
func RandomRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// RandomPointOnSphere returns a uniformly distributed point on a sphere of the
// given radius centered at the origin.
func RandomPointOnSphere(rng *rand.Rand, radius float64) mgl64.Vec3 {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)
	return mgl64.Vec3{
		radius * math.Sin(phi) * math.Cos(theta),
		radius * math.Sin(phi) * math.Sin(theta),
		radius * math.Cos(phi),
	}
}
