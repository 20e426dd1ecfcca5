// Package viz renders a live top-down view of the orbits in the terminal.
//
// The view is a Bubble Tea program drawing onto a Braille pixel canvas:
// bodies as filled dots sized by radius, planet trails, and a stats panel
// with momentum, kinetic energy, and an orbital radius graph.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset to the initial scene
//	+/-   - Zoom
//	Q     - Quit
package viz
