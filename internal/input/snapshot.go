// Package input models per-frame input as a plain snapshot, decoupling the
// camera rig from any windowing or event-loop implementation.
package input

// Key identifies one of the keys the camera rig reacts to.
type Key int

const (
	KeyW Key = iota
	KeyS
	KeyA
	KeyD
	KeySpace
	KeyShiftLeft
	numKeys
)

// MouseDelta is one buffered mouse-motion event.
type MouseDelta struct {
	DX, DY float64
}

// Snapshot captures everything the camera rig reads in one frame: which keys
// are held, whether the right mouse button is down, and the mouse-motion
// events buffered since the last frame, in arrival order.
type Snapshot struct {
	held        [numKeys]bool
	RightMouse  bool
	MouseDeltas []MouseDelta
}

// Press marks a key as held for this frame.
func (s *Snapshot) Press(k Key) {
	if k >= 0 && k < numKeys {
		s.held[k] = true
	}
}

// Held reports whether a key is held in this snapshot.
func (s *Snapshot) Held(k Key) bool {
	return k >= 0 && k < numKeys && s.held[k]
}

// AddMouseDelta appends a buffered mouse-motion event.
func (s *Snapshot) AddMouseDelta(dx, dy float64) {
	s.MouseDeltas = append(s.MouseDeltas, MouseDelta{DX: dx, DY: dy})
}
