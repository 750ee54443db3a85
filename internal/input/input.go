// Package input turns a raw terminal byte stream into the held-key and
// pointer state the simulation reads.
package input

import (
	"bufio"
	"io"
	"sync/atomic"
	"time"

	"github.com/alexrosrgz/GalacticVoyager/internal/object"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report repeats, so this bridges the gap between them.
const keyHoldDuration = 120 * time.Millisecond

// LookStep is the pointer movement, in pixels, one look-key press adds.
const LookStep = 25.0

// Stream delivers input bytes via a channel.
type Stream struct {
	ch     chan byte
	closed atomic.Bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				s.closed.Store(true)
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed.Load()
}

// drain returns every byte available without blocking.
func (s *Stream) drain(buf []byte) []byte {
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	thrust    time.Time
	reverse   time.Time
	rollLeft  time.Time
	rollRight time.Time
	boost     time.Time
	fire      time.Time
}

// State is the per-frame view of a Stream. It implements object.Input:
// W/S thrust and reverse, A/D roll, uppercase W boosts, arrows or IJKL
// steer the pointer and space fires.
type State struct {
	stream *Stream
	keys   keyState
	now    time.Time
	dx, dy float64

	// Edge-triggered flags for the current frame.
	Quit    bool
	Enter   bool
	Escape  bool
	Pressed []byte
}

// Compile-time check that State implements object.Input.
var _ object.Input = (*State)(nil)

// NewState creates a state fed from s. s may be nil when bytes are pushed
// through Feed directly.
func NewState(s *Stream) *State {
	return &State{stream: s}
}

// Poll drains the stream (non-blocking) and applies the bytes.
func (st *State) Poll(now time.Time) {
	var buf []byte
	if st.stream != nil {
		buf = st.stream.drain(st.Pressed[:0])
	}
	st.Feed(buf, now)
}

// Feed applies raw terminal bytes received at now. Handles escape
// sequences for arrow keys.
func (st *State) Feed(buf []byte, now time.Time) {
	st.now = now
	st.Quit = false
	st.Enter = false
	st.Escape = false
	st.Pressed = buf

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				st.dy -= LookStep
				i += 2
				continue
			case 'B':
				st.dy += LookStep
				i += 2
				continue
			case 'C':
				st.dx += LookStep
				i += 2
				continue
			case 'D':
				st.dx -= LookStep
				i += 2
				continue
			}
		}

		st.applyByte(b, now)
	}
}

func (st *State) applyByte(b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03:
		st.Quit = true
	case 'w':
		st.keys.thrust = now
	case 'W':
		st.keys.thrust = now
		st.keys.boost = now
	case 's', 'S':
		st.keys.reverse = now
	case 'a', 'A':
		st.keys.rollLeft = now
	case 'd', 'D':
		st.keys.rollRight = now
	case 'i', 'I':
		st.dy -= LookStep
	case 'k', 'K':
		st.dy += LookStep
	case 'j', 'J':
		st.dx -= LookStep
	case 'l', 'L':
		st.dx += LookStep
	case ' ':
		st.keys.fire = now
	case '\n', '\r':
		st.Enter = true
	case '\x1b':
		st.Escape = true
	}
}

func (st *State) held(t time.Time) bool {
	return !t.IsZero() && st.now.Sub(t) < keyHoldDuration
}

// IsKeyDown reports whether the key with the given logical code is held.
func (st *State) IsKeyDown(code string) bool {
	switch code {
	case object.KeyW:
		return st.held(st.keys.thrust)
	case object.KeyS:
		return st.held(st.keys.reverse)
	case object.KeyA:
		return st.held(st.keys.rollLeft)
	case object.KeyD:
		return st.held(st.keys.rollRight)
	case object.ShiftLeft, object.ShiftRight:
		return st.held(st.keys.boost)
	default:
		return false
	}
}

// IsMouseDown reports whether the fire key is held.
func (st *State) IsMouseDown() bool {
	return st.held(st.keys.fire)
}

// MouseDelta returns the look movement accumulated since the last reset.
func (st *State) MouseDelta() (dx, dy float64) {
	return st.dx, st.dy
}

// ResetMouseDelta clears the accumulated look movement.
func (st *State) ResetMouseDelta() {
	st.dx, st.dy = 0, 0
}

// PointerLocked is always true: a terminal has no pointer to release.
func (st *State) PointerLocked() bool {
	return true
}

// Reset forgets all held keys and pending look movement.
func (st *State) Reset() {
	st.keys = keyState{}
	st.dx, st.dy = 0, 0
}
