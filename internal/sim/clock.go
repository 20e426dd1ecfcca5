package sim

// Clock bounds the per-frame time step. Clamping exists purely for the
// numerical stability of the explicit Euler step, not for scheduling.
type Clock struct {
	MaxDt float64
}

// DefaultMaxDt caps each simulated step at one sixtieth of a second.
const DefaultMaxDt = 1.0 / 60.0

func NewClock() Clock {
	return Clock{MaxDt: DefaultMaxDt}
}

// Clamp returns the frame time bounded to [0, MaxDt]. A MaxDt of zero or
// less disables the upper bound.
func (c Clock) Clamp(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if c.MaxDt > 0 && dt > c.MaxDt {
		return c.MaxDt
	}
	return dt
}
