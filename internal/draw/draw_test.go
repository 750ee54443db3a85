package draw

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasSetAndBounds(t *testing.T) {
	c := NewCanvas(4, 2)
	assert.Equal(t, 4, c.PixelWidth())
	assert.Equal(t, 4, c.PixelHeight())

	c.Set(1, 3, ColorRed)
	c.Set(-1, 0, ColorRed)
	c.Set(4, 0, ColorRed)
	assert.Equal(t, ColorRed, c.At(1, 3))
	assert.Equal(t, ColorNone, c.At(-1, 0))

	c.Clear()
	assert.Equal(t, ColorNone, c.At(1, 3))
}

func TestRenderOnlyWritesChangedCells(t *testing.T) {
	c := NewCanvas(3, 1)
	var out bytes.Buffer

	c.Render(&out)
	assert.Equal(t, 3, strings.Count(out.String(), ColorReset+" "), "first render paints every cell")

	out.Reset()
	c.Render(&out)
	assert.Empty(t, out.String())

	c.Set(1, 0, ColorYellow)
	c.Set(1, 1, ColorYellow)
	c.Render(&out)
	assert.Contains(t, out.String(), "\033[1;2H")
	assert.Contains(t, out.String(), string(BlockFull))

	out.Reset()
	c.MarkTextDirty(1, 1, 1)
	c.Render(&out)
	assert.Contains(t, out.String(), "\033[1;1H")
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(0, 0, ColorRed)
	c.Set(1, 1, ColorBlue)
	c.Set(2, 0, ColorRed)
	c.Set(2, 1, ColorBlue)

	var out bytes.Buffer
	c.Render(&out)
	s := out.String()
	assert.Contains(t, s, string(BlockUpperHalf))
	assert.Contains(t, s, string(BlockLowerHalf))
	assert.Contains(t, s, "\033[104m", "mixed cell uses a background color")
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(Point{0, 0}, Point{9, 9}, ColorWhite)
	assert.Equal(t, ColorWhite, c.At(0, 0))
	assert.Equal(t, ColorWhite, c.At(9, 9))
	assert.Equal(t, ColorWhite, c.At(5, 5))
}

func TestDrawDisc(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawDisc(Point{10, 10}, 3, ColorYellow)
	assert.Equal(t, ColorYellow, c.At(10, 10))
	assert.Equal(t, ColorYellow, c.At(12, 10))
	assert.Equal(t, ColorNone, c.At(14, 10))
	assert.Equal(t, ColorNone, c.At(13, 13))

	c.DrawDisc(Point{1, 1}, 0.2, ColorRed)
	assert.Equal(t, ColorRed, c.At(1, 1))
}

func TestChunkWriterFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 1)
	cw.WriteAt(1, 1, "hi")
	cw.WriteCentered(10, 2, "abcd")
	require.NoError(t, cw.Flush())

	assert.Equal(t, "\033[2;3Hhi\033[3;10Habcd", out.String())
	assert.Zero(t, cw.Len())
}

func TestProjectorCenterAndSides(t *testing.T) {
	pr := NewProjector(mgl64.Vec3{}, mgl64.QuatIdent(), math.Pi/2, 100, 60)

	pt, depth, ok := pr.Project(mgl64.Vec3{0, 0, -10})
	require.True(t, ok)
	assert.InDelta(t, 10, depth, 1e-9)
	assert.InDelta(t, 50, pt.X, 1e-9)
	assert.InDelta(t, 30, pt.Y, 1e-9)

	right, _, ok := pr.Project(mgl64.Vec3{5, 0, -10})
	require.True(t, ok)
	assert.Greater(t, right.X, 50.0)

	up, _, ok := pr.Project(mgl64.Vec3{0, 5, -10})
	require.True(t, ok)
	assert.Less(t, up.Y, 30.0)

	_, _, ok = pr.Project(mgl64.Vec3{0, 0, 10})
	assert.False(t, ok, "behind the camera")

	// 90 degree FOV: focal length is half the height.
	assert.InDelta(t, 30*2.0/10, pr.Scale(2, 10), 1e-9)
}

func TestProjectorFollowsOrientation(t *testing.T) {
	// Turned 90 degrees left: world -X is straight ahead.
	q := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	pr := NewProjector(mgl64.Vec3{}, q, math.Pi/2, 100, 60)

	pt, _, ok := pr.Project(mgl64.Vec3{-10, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 50, pt.X, 1e-6)

	_, ok = pr.ProjectDirection(mgl64.Vec3{1, 0, 0})
	assert.False(t, ok)
}

func TestLookRotation(t *testing.T) {
	eye := mgl64.Vec3{10, 5, 0}
	target := mgl64.Vec3{10, 5, -50}
	q := LookRotation(eye, target, mgl64.Vec3{0, 1, 0})

	fwd := q.Rotate(mgl64.Vec3{0, 0, -1})
	assert.InDelta(t, 0, fwd.X(), 1e-9)
	assert.InDelta(t, -1, fwd.Z(), 1e-9)

	pr := NewProjector(eye, LookRotation(eye, mgl64.Vec3{40, 5, 0}, mgl64.Vec3{0, 1, 0}), math.Pi/3, 80, 40)
	pt, _, ok := pr.Project(mgl64.Vec3{40, 5, 0})
	require.True(t, ok)
	assert.InDelta(t, 40, pt.X, 1e-6)
	assert.InDelta(t, 20, pt.Y, 1e-6)

	// Degenerate up still yields a valid rotation.
	q = LookRotation(mgl64.Vec3{}, mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, 1, 0})
	fwd = q.Rotate(mgl64.Vec3{0, 0, -1})
	assert.InDelta(t, 1, fwd.Y(), 1e-6)
}
