package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/orbitlab/internal/mathx"
)

func TestDefaultScene(t *testing.T) {
	sc := Default()

	if len(sc.Bodies) != 4 {
		t.Fatalf("expected 4 bodies, got %d", len(sc.Bodies))
	}

	sun := sc.Bodies[0]
	if sun.Mass != 1000.0 {
		t.Errorf("expected sun mass 1000, got %f", sun.Mass)
	}
	if !sun.Position.IsZero() || !sun.Velocity.IsZero() {
		t.Error("sun should start stationary at the origin")
	}

	// planets at increasing radii, tangential velocities decreasing
	prevR, prevV := 0.0, math.Inf(1)
	for _, b := range sc.Bodies[1:] {
		r := b.Position.Length()
		v := b.Velocity.Length()
		if r <= prevR {
			t.Errorf("%s: radius %f not increasing", b.Name, r)
		}
		if v >= prevV {
			t.Errorf("%s: speed %f not decreasing", b.Name, v)
		}
		if d := b.Position.Dot(b.Velocity); math.Abs(d) > 1e-12 {
			t.Errorf("%s: velocity not tangential, dot %f", b.Name, d)
		}
		prevR, prevV = r, v
	}
}

func TestDefaultSceneDeterministic(t *testing.T) {
	a, b := Default(), Default()
	for i := range a.Bodies {
		if a.Bodies[i] != b.Bodies[i] {
			t.Errorf("body %d differs between calls", i)
		}
	}
	if a.Camera != b.Camera {
		t.Error("camera differs between calls")
	}
}

func TestDefaultCameraLooksAtOrigin(t *testing.T) {
	sc := Default()
	fwd := sc.Camera.Forward()
	toOrigin := mathx.Vec3{}.Sub(sc.Camera.Position).Normalize()
	if fwd.Sub(toOrigin).Length() > 1e-9 {
		t.Errorf("camera forward %+v does not face the origin (%+v)", fwd, toOrigin)
	}
}

func TestClone(t *testing.T) {
	sc := Default()
	c := sc.Clone()
	c.Bodies[0].Mass = 1.0

	if sc.Bodies[0].Mass != 1000.0 {
		t.Error("clone shares body storage with original")
	}
}

func TestOrbitalVelocity(t *testing.T) {
	sc := Default()
	sun := sc.Bodies[0]
	g := 10.0
	pos := mathx.Vec3{X: 16}

	v := OrbitalVelocity(sun, pos, g)

	wantSpeed := math.Sqrt(g * sun.Mass / 16.0)
	if math.Abs(v.Length()-wantSpeed) > 1e-12 {
		t.Errorf("expected orbital speed %f, got %f", wantSpeed, v.Length())
	}
	if d := v.Dot(pos.Sub(sun.Position)); math.Abs(d) > 1e-9 {
		t.Errorf("orbital velocity not tangential, dot %f", d)
	}
	// same handedness as the default planets
	if v.Z <= 0 {
		t.Errorf("expected +Z velocity for a body on +X, got %+v", v)
	}
}

func TestOrbitalVelocityAtCentre(t *testing.T) {
	sc := Default()
	if v := OrbitalVelocity(sc.Bodies[0], mathx.Vec3{}, 10.0); !v.IsZero() {
		t.Errorf("expected zero velocity at the central body, got %+v", v)
	}
}

func writeScene(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScene(t *testing.T) {
	path := writeScene(t, `
bodies:
  - name: Star
    mass: 500
    radius: 2.5
    color: [255, 255, 0]
    emissive: true
  - name: Rock
    mass: 2
    radius: 0.5
    position: [10, 0, 0]
    orbit: true
camera:
  position: [0, 20, 40]
  target: [0, 0, 0]
`)

	sc, err := Load(path, 10.0)
	if err != nil {
		t.Fatal(err)
	}

	if len(sc.Bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(sc.Bodies))
	}

	rock := sc.Bodies[1]
	wantSpeed := math.Sqrt(10.0 * 500.0 / 10.0)
	if math.Abs(rock.Velocity.Length()-wantSpeed) > 1e-9 {
		t.Errorf("expected derived orbital speed %f, got %f", wantSpeed, rock.Velocity.Length())
	}

	// unset camera tuning falls back to the defaults
	def := Default()
	if sc.Camera.Speed != def.Camera.Speed || sc.Camera.Sensitivity != def.Camera.Sensitivity {
		t.Errorf("expected default camera tuning, got speed=%f sens=%f", sc.Camera.Speed, sc.Camera.Sensitivity)
	}
}

func TestLoadSceneInvalid(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty", "bodies: []", ErrNoBodies},
		{"zero mass", "bodies:\n  - name: X\n    mass: 0\n    radius: 1\n", ErrBadBody},
		{"negative radius", "bodies:\n  - name: X\n    mass: 1\n    radius: -1\n", ErrBadBody},
		{"unnamed", "bodies:\n  - mass: 1\n    radius: 1\n", ErrBadBody},
		{"orbit first", "bodies:\n  - name: X\n    mass: 1\n    radius: 1\n    orbit: true\n", ErrOrbitCentre},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeScene(t, tc.text), 10.0)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
