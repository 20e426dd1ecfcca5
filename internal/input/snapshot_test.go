package input

import "testing"

func TestPressHeld(t *testing.T) {
	var s Snapshot
	if s.Held(KeyW) {
		t.Error("fresh snapshot should hold nothing")
	}

	s.Press(KeyW)
	s.Press(KeySpace)

	if !s.Held(KeyW) || !s.Held(KeySpace) {
		t.Error("pressed keys should be held")
	}
	if s.Held(KeyS) {
		t.Error("unpressed key reported as held")
	}
}

func TestMouseDeltaOrder(t *testing.T) {
	var s Snapshot
	s.AddMouseDelta(1, 0)
	s.AddMouseDelta(2, 0)
	s.AddMouseDelta(3, 0)

	if len(s.MouseDeltas) != 3 {
		t.Fatalf("expected 3 deltas, got %d", len(s.MouseDeltas))
	}
	for i, d := range s.MouseDeltas {
		if d.DX != float64(i+1) {
			t.Errorf("delta %d out of order: %+v", i, d)
		}
	}
}
