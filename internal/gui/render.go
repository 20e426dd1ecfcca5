package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orbitlab/internal/body"
	"github.com/san-kum/orbitlab/internal/mathx"
)

const trailLen = 400

func toVec3(v mathx.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// drawWorld renders the 3D scene: floor grid, bodies, trails, and the point
// light marker.
func (a *App) drawWorld() {
	rl.BeginMode3D(a.Camera)

	a.drawGrid(40, 5.0)

	for i := range a.World.Bodies {
		b := &a.World.Bodies[i]
		a.drawBody(b)
		if a.Running {
			a.recordTrail(i, b)
		}
		a.drawTrail(i, b)
	}

	// Point light marker: a small wire sphere, dimmed by the ambient tint.
	lp := toVec3(a.World.Light.Position)
	rl.DrawSphereWires(lp, 0.5, 6, 6, rl.Fade(rl.White, float32(a.World.Ambient.Brightness)))

	rl.EndMode3D()
}

func (a *App) drawBody(b *body.Body) {
	col := rl.NewColor(b.Color.R, b.Color.G, b.Color.B, b.Color.A)
	pos := toVec3(b.Position)
	rl.DrawSphere(pos, float32(b.Radius), col)
	if b.Emissive {
		// Cheap glow: translucent shells around the core sphere.
		rl.DrawSphere(pos, float32(b.Radius)*1.15, rl.Fade(col, 0.25))
		rl.DrawSphere(pos, float32(b.Radius)*1.35, rl.Fade(col, 0.1))
	} else {
		rl.DrawSphereWires(pos, float32(b.Radius)*1.01, 8, 8, rl.Fade(rl.White, 0.1))
	}
}

func (a *App) recordTrail(i int, b *body.Body) {
	if b.Emissive {
		return
	}
	for len(a.trails) <= i {
		a.trails = append(a.trails, nil)
	}
	a.trails[i] = append(a.trails[i], toVec3(b.Position))
	if len(a.trails[i]) > trailLen {
		a.trails[i] = a.trails[i][1:]
	}
}

func (a *App) drawTrail(i int, b *body.Body) {
	if i >= len(a.trails) || len(a.trails[i]) < 2 {
		return
	}
	col := rl.NewColor(b.Color.R, b.Color.G, b.Color.B, b.Color.A)
	pts := a.trails[i]
	for j := 1; j < len(pts); j++ {
		alpha := 0.6 * float32(j) / float32(len(pts))
		rl.DrawLine3D(pts[j-1], pts[j], rl.Fade(col, alpha))
	}
}

func (a *App) drawGrid(slices int, spacing float32) {
	halfSize := float32(slices) * spacing / 2
	for i := -slices / 2; i <= slices/2; i++ {
		pos := float32(i) * spacing
		rl.DrawLine3D(rl.NewVector3(pos, 0, -halfSize), rl.NewVector3(pos, 0, halfSize), ColGrid)
		rl.DrawLine3D(rl.NewVector3(-halfSize, 0, pos), rl.NewVector3(halfSize, 0, pos), ColGrid)
	}
}
