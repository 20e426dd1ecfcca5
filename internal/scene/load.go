package scene

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/camera"
	"github.com/san-kum/orbitlab/internal/mathx"
)

var (
	ErrNoBodies    = errors.New("scene: no bodies defined")
	ErrBadBody     = errors.New("scene: invalid body")
	ErrOrbitCentre = errors.New("scene: orbit requires a preceding central body")
)

type fileScene struct {
	Bodies []fileBody `yaml:"bodies"`
	Camera fileCamera `yaml:"camera"`
}

type fileBody struct {
	Name     string     `yaml:"name"`
	Mass     float64    `yaml:"mass"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
	Radius   float64    `yaml:"radius"`
	Color    [3]uint8   `yaml:"color"`
	Emissive bool       `yaml:"emissive"`
	// Orbit derives a tangential circular-orbit velocity around the first
	// body, overriding the velocity field.
	Orbit bool `yaml:"orbit"`
}

type fileCamera struct {
	Position    [3]float64 `yaml:"position"`
	Target      [3]float64 `yaml:"target"`
	Sensitivity float64    `yaml:"sensitivity"`
	Speed       float64    `yaml:"speed"`
}

// Load reads a scene from a yaml file. Unset lighting and camera tuning fall
// back to the defaults; g is the gravitational constant used for orbit
// derivation.
func Load(path string, g float64) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}

	var fs fileScene
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return Scene{}, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	if len(fs.Bodies) == 0 {
		return Scene{}, ErrNoBodies
	}

	sc := Default()
	sc.Bodies = make([]body.Body, 0, len(fs.Bodies))

	for i, fb := range fs.Bodies {
		if fb.Name == "" {
			return Scene{}, fmt.Errorf("%w: body %d has no name", ErrBadBody, i)
		}
		if fb.Mass <= 0 {
			return Scene{}, fmt.Errorf("%w: %s has non-positive mass %f", ErrBadBody, fb.Name, fb.Mass)
		}
		if fb.Radius <= 0 {
			return Scene{}, fmt.Errorf("%w: %s has non-positive radius %f", ErrBadBody, fb.Name, fb.Radius)
		}

		b := body.Body{
			Name:     fb.Name,
			Mass:     fb.Mass,
			Position: vec(fb.Position),
			Velocity: vec(fb.Velocity),
			Radius:   fb.Radius,
			Color:    color.RGBA{R: fb.Color[0], G: fb.Color[1], B: fb.Color[2], A: 255},
			Emissive: fb.Emissive,
		}
		if fb.Orbit {
			if i == 0 {
				return Scene{}, ErrOrbitCentre
			}
			b.Velocity = OrbitalVelocity(sc.Bodies[0], b.Position, g)
		}
		sc.Bodies = append(sc.Bodies, b)
	}

	if fs.Camera != (fileCamera{}) {
		cam := camera.Rig{
			Position:    vec(fs.Camera.Position),
			Sensitivity: fs.Camera.Sensitivity,
			Speed:       fs.Camera.Speed,
		}
		if cam.Sensitivity == 0 {
			cam.Sensitivity = sc.Camera.Sensitivity
		}
		if cam.Speed == 0 {
			cam.Speed = sc.Camera.Speed
		}
		cam.LookAt(vec(fs.Camera.Target))
		sc.Camera = cam
	}

	return sc, nil
}

func vec(a [3]float64) mathx.Vec3 {
	return mathx.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
