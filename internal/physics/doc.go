// Package physics implements the per-frame gravity passes over a body slice.
//
// A frame applies two passes in strict order:
//
//   - [ApplyGravity]: pairwise velocity kicks from mutual attraction
//   - [Integrate]: position advance using this frame's velocities
//
// Together they form a semi-implicit Euler step. All constants live in
// [Params]; the defaults are tuned for visual stability, not physical
// accuracy.
package physics
