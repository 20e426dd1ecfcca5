package physics

import "github.com/san-kum/orbitlab/internal/body"

// Params holds the gravity tuning constants. The defaults reproduce a slow,
// watchable orbit; none of the values are physically meaningful.
type Params struct {
	// G is the gravitational constant.
	G float64
	// ForceDamping scales every velocity kick. Stacked on the reduced G it
	// weakens the interaction by another factor of 100.
	ForceDamping float64
	// MinDistance is the singularity floor: pairs closer than this are
	// skipped outright for the frame, not clamped.
	MinDistance float64
}

func DefaultParams() Params {
	return Params{
		G:            10.0,
		ForceDamping: 0.01,
		MinDistance:  2.0,
	}
}

// ApplyGravity updates the velocity of every body from the mutual attraction
// of every unordered pair, visiting each pair exactly once. The kicks on the
// two bodies of a pair are equal and opposite up to the 1/mass scaling.
// Mass is not validated; a non-positive mass propagates as erratic motion,
// never an error.
func ApplyGravity(bodies []body.Body, dt float64, p Params) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			dir := bodies[j].Position.Sub(bodies[i].Position)
			dist := dir.Length()
			if dist < p.MinDistance {
				continue
			}

			force := p.G * bodies[i].Mass * bodies[j].Mass / (dist * dist)
			unit := dir.Scale(1 / dist)
			kick := force * dt * p.ForceDamping

			bodies[i].Velocity = bodies[i].Velocity.Add(unit.Scale(kick / bodies[i].Mass))
			bodies[j].Velocity = bodies[j].Velocity.Sub(unit.Scale(kick / bodies[j].Mass))
		}
	}
}
