package object

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

type fakeInput struct {
	keys      map[string]bool
	mouseDown bool
	locked    bool
	dx, dy    float64
	resets    int
}

func newFakeInput(keys ...string) *fakeInput {
	in := &fakeInput{keys: map[string]bool{}, locked: true}
	for _, k := range keys {
		in.keys[k] = true
	}
	return in
}

func (f *fakeInput) IsKeyDown(code string) bool     { return f.keys[code] }
func (f *fakeInput) IsMouseDown() bool              { return f.mouseDown }
func (f *fakeInput) MouseDelta() (float64, float64) { return f.dx, f.dy }
func (f *fakeInput) PointerLocked() bool            { return f.locked }

func (f *fakeInput) ResetMouseDelta() {
	f.dx, f.dy = 0, 0
	f.resets++
}

type shot struct {
	position  mgl64.Vec3
	direction mgl64.Vec3
	source    Source
}

type recordingLauncher struct {
	shots []shot
}

func (r *recordingLauncher) Fire(position, direction mgl64.Vec3, source Source) {
	r.shots = append(r.shots, shot{position, direction, source})
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
