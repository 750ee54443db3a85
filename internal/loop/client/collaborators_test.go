package client

import (
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexrosrgz/GalacticVoyager/internal/loop/config"
	"github.com/alexrosrgz/GalacticVoyager/internal/object"
	"github.com/alexrosrgz/GalacticVoyager/internal/world"
)

func TestRadarPointOrientation(t *testing.T) {
	ident := mgl64.QuatIdent()

	x, y, ok := radarPoint(mgl64.Vec3{}, ident, mgl64.Vec3{0, 0, -1000})
	require.True(t, ok)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, -0.5, y, 1e-9, "ahead is up on the scope")

	x, _, ok = radarPoint(mgl64.Vec3{}, ident, mgl64.Vec3{500, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 0.25, x, 1e-9)

	_, _, ok = radarPoint(mgl64.Vec3{}, ident, mgl64.Vec3{config.MinimapRange + 1, 0, 0})
	assert.False(t, ok)

	// Turned left a quarter: world -X is now ahead.
	yaw := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	x, y, ok = radarPoint(mgl64.Vec3{}, yaw, mgl64.Vec3{-1000, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, -0.5, y, 1e-9)
}

func TestRadarUpdate(t *testing.T) {
	r := &radar{}
	e := object.NewEnemy(rand.New(rand.NewSource(1)))
	e.Init(mgl64.Vec3{0, 0, -200})
	far := object.NewEnemy(rand.New(rand.NewSource(2)))
	far.Init(mgl64.Vec3{0, 0, -9000})

	bodies := []world.BodyInfo{
		{Name: "Sun", Position: mgl64.Vec3{10000, 0, 0}, Emissive: true},
		{Name: "Rock", Position: mgl64.Vec3{0, 0, 400}},
		{Name: "Moon", Position: mgl64.Vec3{0, 0, 100}, Moon: true},
		{Name: "Far", Position: mgl64.Vec3{0, 0, 9000}},
	}
	r.Update(mgl64.Vec3{}, mgl64.QuatIdent(), []*object.Enemy{e, far}, bodies)

	kinds := map[blipKind]int{}
	for _, b := range r.blips {
		kinds[b.Kind]++
	}
	assert.Equal(t, map[blipKind]int{blipStar: 1, blipBody: 1, blipMoon: 1, blipEnemy: 1}, kinds)

	for _, b := range r.blips {
		if b.Kind == blipStar {
			assert.InDelta(t, 1, b.X, 1e-9, "distant star pinned to the rim")
		}
	}
}

func TestRadarCell(t *testing.T) {
	col, row := radarCell(blip{})
	assert.Equal(t, radarWidth/2, col)
	assert.Equal(t, radarHeight/2, row)

	col, row = radarCell(blip{X: 1, Y: -1})
	assert.Equal(t, radarWidth-1, col)
	assert.Equal(t, 0, row)
}

func TestMenuTrigger(t *testing.T) {
	m := &termMenu{}
	var started, restarted int
	m.OnStart(func() { started++ })
	m.OnRestart(func() { restarted++ })

	assert.False(t, m.Trigger(), "hidden menu has no button")

	m.ShowStart()
	assert.True(t, m.Trigger())
	m.ShowGameOver(300)
	assert.Equal(t, 300, m.score)
	assert.True(t, m.Trigger())
	m.HideAll()
	assert.False(t, m.Trigger())

	assert.Equal(t, 1, started)
	assert.Equal(t, 1, restarted)
}

func TestBellRingsOnHits(t *testing.T) {
	a := &bellAudio{logger: log.New(io.Discard)}
	a.PlayLaser()
	a.PlayBounce()
	assert.False(t, a.takeRing())

	a.PlayDamage()
	assert.True(t, a.takeRing())
	assert.False(t, a.takeRing())

	a.PlayExplosion()
	assert.True(t, a.takeRing())

	a.UpdateEngine(true, true, 120)
	assert.True(t, a.boosting)
	assert.Equal(t, 120.0, a.speed)
}

func TestHullBar(t *testing.T) {
	assert.Equal(t, "#####-----", hullBar(50, 100, 10, asciiGlyphs))
	assert.Equal(t, "----------", hullBar(0, 100, 10, asciiGlyphs))
	assert.Equal(t, "##########", hullBar(150, 100, 10, asciiGlyphs))
	assert.Equal(t, "#---------", hullBar(1, 100, 10, asciiGlyphs))
}

func TestParseGlyphs(t *testing.T) {
	set, err := parseGlyphs(glyphData)
	require.NoError(t, err)
	assert.Equal(t, '▲', set.Self)
	assert.Equal(t, '░', set.HullEmpty)

	set, err = parseGlyphs([]byte("# comment\n\nenemy X\n"))
	require.NoError(t, err)
	assert.Equal(t, 'X', set.Enemy)
	assert.Equal(t, asciiGlyphs.Self, set.Self)

	_, err = parseGlyphs([]byte("warp !"))
	assert.ErrorContains(t, err, "unknown glyph")

	_, err = parseGlyphs([]byte("enemy xx"))
	assert.Error(t, err)
}
