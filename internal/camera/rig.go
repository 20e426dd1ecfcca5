// Package camera implements the free-flying camera rig: WASD translation on
// the horizontal plane, Space/Shift for world-up, and right-button mouse-look
// with a pitch clamp.
package camera

import (
	"math"

	"github.com/san-kum/orbitlab/internal/input"
	"github.com/san-kum/orbitlab/internal/mathx"
)

// PitchLimit keeps pitch just short of straight up or down to avoid gimbal
// flip at the poles.
const PitchLimit = 1.54

// Rig holds the camera position and its orientation as a running yaw/pitch
// pair. Yaw rotates about world up, pitch about the local right axis; the
// world-space basis is rebuilt from the pair on demand rather than
// accumulated as a rotation.
type Rig struct {
	Position mathx.Vec3
	Yaw      float64
	Pitch    float64

	Sensitivity float64
	Speed       float64
}

// Forward returns the world-space look direction.
func (r *Rig) Forward() mathx.Vec3 {
	cp := math.Cos(r.Pitch)
	return mathx.Vec3{
		X: -math.Sin(r.Yaw) * cp,
		Y: math.Sin(r.Pitch),
		Z: -math.Cos(r.Yaw) * cp,
	}
}

// forwardFlat and rightFlat are the movement basis: unit vectors on the
// horizontal plane, independent of pitch.
func (r *Rig) forwardFlat() mathx.Vec3 {
	return mathx.Vec3{X: -math.Sin(r.Yaw), Z: -math.Cos(r.Yaw)}
}

func (r *Rig) rightFlat() mathx.Vec3 {
	return mathx.Vec3{X: math.Cos(r.Yaw), Z: -math.Sin(r.Yaw)}
}

// LookAt points the rig at target, decomposing the direction into yaw and
// pitch. A target coincident with the position leaves the rig unchanged.
func (r *Rig) LookAt(target mathx.Vec3) {
	d := target.Sub(r.Position)
	l := d.Length()
	if l == 0 {
		return
	}
	r.Yaw = math.Atan2(-d.X, -d.Z)
	r.Pitch = clamp(math.Asin(d.Y/l), -PitchLimit, PitchLimit)
}

// Update applies one frame of input to the rig. Movement sums the held key
// directions and normalizes the result (or leaves it zero), so diagonal
// movement is never faster than axis-aligned movement. Mouse-look consumes
// the buffered deltas in order, only while the right button is held, and
// clamps pitch per event.
func (r *Rig) Update(in input.Snapshot, dt float64) {
	var move mathx.Vec3
	fwd, right := r.forwardFlat(), r.rightFlat()

	if in.Held(input.KeyW) {
		move = move.Add(fwd)
	}
	if in.Held(input.KeyS) {
		move = move.Sub(fwd)
	}
	if in.Held(input.KeyD) {
		move = move.Add(right)
	}
	if in.Held(input.KeyA) {
		move = move.Sub(right)
	}
	if in.Held(input.KeySpace) {
		move = move.Add(mathx.Up)
	}
	if in.Held(input.KeyShiftLeft) {
		move = move.Sub(mathx.Up)
	}

	move = move.Normalize()
	r.Position = r.Position.Add(move.Scale(r.Speed * dt))

	if in.RightMouse {
		for _, d := range in.MouseDeltas {
			r.Yaw -= d.DX * r.Sensitivity * dt
			r.Pitch = clamp(r.Pitch-d.DY*r.Sensitivity*dt, -PitchLimit, PitchLimit)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
