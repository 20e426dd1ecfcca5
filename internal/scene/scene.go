// Package scene builds the initial world: bodies, lights, and the camera rig.
package scene

import (
	"image/color"
	"math"

	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/camera"
	"github.com/san-kum/orbitlab/internal/mathx"
)

// PointLight is a positional light consumed by the GUI renderer.
type PointLight struct {
	Position  mathx.Vec3
	Intensity float64
	Range     float64
}

// AmbientLight is the scene-wide fill light.
type AmbientLight struct {
	Color      color.RGBA
	Brightness float64
}

// Scene is everything spawned before the first frame.
type Scene struct {
	Bodies  []body.Body
	Camera  camera.Rig
	Light   PointLight
	Ambient AmbientLight
}

// Default returns the hand-tuned sun-and-three-planets system. The planet
// velocities are purely tangential and were picked for slow, watchable
// motion; they are not derived from a circular-orbit formula and the orbits
// are not guaranteed stable.
func Default() Scene {
	cam := camera.Rig{
		Position:    mathx.Vec3{X: -50, Y: 30, Z: 50},
		Sensitivity: 2.0,
		Speed:       25.0,
	}
	cam.LookAt(mathx.Vec3{})

	return Scene{
		Bodies: []body.Body{
			{
				Name:     "Sun",
				Mass:     1000.0,
				Radius:   3.0,
				Color:    color.RGBA{R: 255, G: 255, B: 0, A: 255},
				Emissive: true,
			},
			{
				Name:     "Inner Planet",
				Mass:     5.0,
				Position: mathx.Vec3{X: 12},
				Velocity: mathx.Vec3{Z: 0.8},
				Radius:   0.8,
				Color:    color.RGBA{R: 204, G: 102, B: 51, A: 255},
			},
			{
				Name:     "Middle Planet",
				Mass:     8.0,
				Position: mathx.Vec3{X: 20},
				Velocity: mathx.Vec3{Z: 0.6},
				Radius:   1.0,
				Color:    color.RGBA{R: 51, G: 102, B: 204, A: 255},
			},
			{
				Name:     "Outer Planet",
				Mass:     6.0,
				Position: mathx.Vec3{X: 30},
				Velocity: mathx.Vec3{Z: 0.4},
				Radius:   0.9,
				Color:    color.RGBA{R: 204, G: 77, B: 26, A: 255},
			},
		},
		Camera: cam,
		Light: PointLight{
			Position:  mathx.Vec3{Y: 5},
			Intensity: 10000.0,
			Range:     200.0,
		},
		Ambient: AmbientLight{
			Color:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Brightness: 0.4,
		},
	}
}

// Clone returns a deep copy of the scene, so a run can be reset to its
// starting state without rebuilding it.
func (s Scene) Clone() Scene {
	c := s
	c.Bodies = make([]body.Body, len(s.Bodies))
	copy(c.Bodies, s.Bodies)
	return c
}

// OrbitalVelocity returns the tangential velocity for a circular orbit of
// the given position around central, under gravitational constant g. The
// direction follows the default scene's planets (counter-clockwise seen from
// above for a body on +X).
func OrbitalVelocity(central body.Body, pos mathx.Vec3, g float64) mathx.Vec3 {
	radial := pos.Sub(central.Position)
	r := radial.Length()
	if r == 0 {
		return mathx.Vec3{}
	}
	speed := math.Sqrt(g * central.Mass / r)
	tangent := radial.Scale(1 / r).Cross(mathx.Up)
	return tangent.Scale(speed).Add(central.Velocity)
}
