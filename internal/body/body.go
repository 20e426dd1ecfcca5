package body

import (
	"image/color"

	"github.com/san-kum/orbitlab/internal/mathx"
)

// Body is a simulated point mass rendered as a sphere. Bodies are created
// once at startup and mutated in place every frame; mass stays constant for
// the life of the process.
type Body struct {
	Name     string
	Mass     float64
	Position mathx.Vec3
	Velocity mathx.Vec3

	// Rendering-only attributes, ignored by the physics passes.
	Radius   float64
	Color    color.RGBA
	Emissive bool
}

// Momentum returns the total linear momentum of the slice.
func Momentum(bodies []Body) mathx.Vec3 {
	var p mathx.Vec3
	for i := range bodies {
		p = p.Add(bodies[i].Velocity.Scale(bodies[i].Mass))
	}
	return p
}

// KineticEnergy returns the total kinetic energy of the slice.
func KineticEnergy(bodies []Body) float64 {
	ke := 0.0
	for i := range bodies {
		v := bodies[i].Velocity
		ke += 0.5 * bodies[i].Mass * v.Dot(v)
	}
	return ke
}

// PotentialEnergy returns the total gravitational potential energy for
// constant g, summed over unordered pairs. Coincident bodies are skipped.
func PotentialEnergy(bodies []Body, g float64) float64 {
	pe := 0.0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			r := bodies[j].Position.Sub(bodies[i].Position).Length()
			if r == 0 {
				continue
			}
			pe -= g * bodies[i].Mass * bodies[j].Mass / r
		}
	}
	return pe
}
