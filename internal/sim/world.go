// Package sim owns the simulation state and the fixed-order frame pipeline.
//
// A frame is three calls in a strict total order over shared state:
// gravity kicks, position integration, then the camera rig. Nothing runs
// concurrently; each pass has exclusive access to the world for the
// duration of its call.
package sim

import (
	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/camera"
	"github.com/san-kum/orbitlab/internal/input"
	"github.com/san-kum/orbitlab/internal/physics"
	"github.com/san-kum/orbitlab/internal/scene"
)

// World is the explicit simulation state passed through every frame: the
// bodies, the camera rig, the frame clock, and the gravity tuning.
type World struct {
	Bodies  []body.Body
	Camera  camera.Rig
	Clock   Clock
	Params  physics.Params
	Light   scene.PointLight
	Ambient scene.AmbientLight

	// Elapsed is total simulated (clamped) time.
	Elapsed float64

	initial scene.Scene
}

// NewWorld spawns a world from a scene. The scene is retained so Reset can
// restore the starting state.
func NewWorld(sc scene.Scene, p physics.Params) *World {
	w := &World{
		Clock:   NewClock(),
		Params:  p,
		Light:   sc.Light,
		Ambient: sc.Ambient,
		initial: sc.Clone(),
	}
	w.restore()
	return w
}

// Step advances one frame. The raw frame time is clamped once and the same
// dt feeds all three passes; their order is load-bearing: integration must
// see this frame's velocities, and the camera is independent of both.
func (w *World) Step(rawDt float64, in input.Snapshot) {
	dt := w.Clock.Clamp(rawDt)

	physics.ApplyGravity(w.Bodies, dt, w.Params)
	physics.Integrate(w.Bodies, dt)
	w.Camera.Update(in, dt)

	w.Elapsed += dt
}

// Reset restores the initial scene and zeroes the elapsed clock.
func (w *World) Reset() {
	w.restore()
	w.Elapsed = 0
}

func (w *World) restore() {
	sc := w.initial.Clone()
	w.Bodies = sc.Bodies
	w.Camera = sc.Camera
}

// Momentum returns the total linear momentum of the bodies.
func (w *World) Momentum() float64 {
	return body.Momentum(w.Bodies).Length()
}

// KineticEnergy returns the total kinetic energy of the bodies.
func (w *World) KineticEnergy() float64 {
	return body.KineticEnergy(w.Bodies)
}

// TotalEnergy returns kinetic plus gravitational potential energy.
func (w *World) TotalEnergy() float64 {
	return body.KineticEnergy(w.Bodies) + body.PotentialEnergy(w.Bodies, w.Params.G)
}
