package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	a := mgl64.Vec3{1, 2, 3}
	b := mgl64.Vec3{4, 6, 3}

	assert.InDelta(t, 5.0, Distance(a, b), 1e-12)
	assert.InDelta(t, 25.0, DistanceSquared(a, b), 1e-12)
}

func TestPointInSphereIsStrict(t *testing.T) {
	c := mgl64.Vec3{}

	assert.True(t, PointInSphere(mgl64.Vec3{5.9, 0, 0}, c, 6))
	assert.False(t, PointInSphere(mgl64.Vec3{6, 0, 0}, c, 6))
}

func TestSpheresOverlap(t *testing.T) {
	assert.True(t, SpheresOverlap(mgl64.Vec3{}, 5, mgl64.Vec3{0, 14, 0}, 10))
	assert.False(t, SpheresOverlap(mgl64.Vec3{}, 5, mgl64.Vec3{0, 15, 0}, 10))
}

func TestNormalizeZero(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{}, Normalize(mgl64.Vec3{}))
	assert.InDelta(t, 1.0, Normalize(mgl64.Vec3{3, 4, 12}).Len(), 1e-12)
}

func TestReflectDampensIncomingVelocity(t *testing.T) {
	n := mgl64.Vec3{0, 1, 0}
	v := mgl64.Vec3{4, -10, 2}

	out := Reflect(v, n, 0.5)

	assert.InDelta(t, -0.5*v.Dot(n), out.Dot(n), 1e-12)
	assert.InDelta(t, 4.0, out.X(), 1e-12)
	assert.InDelta(t, 2.0, out.Z(), 1e-12)
}

func TestReflectIgnoresOutgoingVelocity(t *testing.T) {
	n := mgl64.Vec3{1, 0, 0}
	v := mgl64.Vec3{3, 1, 0}

	assert.Equal(t, v, Reflect(v, n, 0.5))
}

func TestSeparation(t *testing.T) {
	push, normal, ok := Separation(mgl64.Vec3{12, 0, 0}, 5, mgl64.Vec3{}, 10, 1)

	assert.True(t, ok)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, normal)
	assert.InDelta(t, 4.0, push.X(), 1e-12)

	_, _, ok = Separation(mgl64.Vec3{20, 0, 0}, 5, mgl64.Vec3{}, 10, 1)
	assert.False(t, ok)
}

func TestSeparationConcentric(t *testing.T) {
	push, normal, ok := Separation(mgl64.Vec3{}, 5, mgl64.Vec3{}, 10, 1)

	assert.True(t, ok)
	assert.Equal(t, Up, normal)
	assert.InDelta(t, 16.0, push.Len(), 1e-12)
}

func TestRandomRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := RandomRange(rng, -3, 5)
		assert.GreaterOrEqual(t, v, -3.0)
		assert.Less(t, v, 5.0)
	}
}

func TestRandomPointOnSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		p := RandomPointOnSphere(rng, 650)
		assert.InDelta(t, 650.0, p.Len(), 1e-9)
		assert.False(t, math.IsNaN(p.X()))
	}
}
