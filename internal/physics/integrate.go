package physics

import "github.com/san-kum/orbitlab/internal/body"

// Integrate advances every body by velocity times dt. It must run after
// ApplyGravity within the same frame so positions pick up this frame's
// velocities.
func Integrate(bodies []body.Body, dt float64) {
	for i := range bodies {
		bodies[i].Position = bodies[i].Position.Add(bodies[i].Velocity.Scale(dt))
	}
}
