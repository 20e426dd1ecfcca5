// Package gui runs the interactive 3D view: a raylib window with a
// free-flying camera over the orbiting bodies.
package gui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orbitlab/internal/input"
	"github.com/san-kum/orbitlab/internal/sim"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColGrid    = rl.NewColor(30, 30, 30, 255)    // Barely visible grid
)

type App struct {
	World   *sim.World
	Camera  rl.Camera3D
	Running bool
	Looking bool
	Font    rl.Font

	trails [][]rl.Vector3
}

// initWindow initializes the Raylib window with size 1280x720 and title
// "orbitlab", sets the target FPS to 60, and disables the default exit key.
func initWindow() {
	rl.InitWindow(1280, 720, "orbitlab")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp wraps a world in an App with the window camera synced to the
// world's rig.
func NewApp(w *sim.World) *App {
	a := &App{
		World: w,
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, 50),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
		Running: true,
		Font:    loadFont(),
	}
	a.syncCamera()
	return a
}

// Run initializes the window and enters the main update-draw loop for the
// given world. It blocks until the window is closed.
func Run(w *sim.World) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(w)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// pollInput collects the frame's keyboard and mouse state into a snapshot.
// The mouse delta is buffered only while the right button is held, matching
// the rig's look gate.
func pollInput() input.Snapshot {
	var in input.Snapshot
	if rl.IsKeyDown(rl.KeyW) {
		in.Press(input.KeyW)
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Press(input.KeyS)
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Press(input.KeyA)
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Press(input.KeyD)
	}
	if rl.IsKeyDown(rl.KeySpace) {
		in.Press(input.KeySpace)
	}
	if rl.IsKeyDown(rl.KeyLeftShift) {
		in.Press(input.KeyShiftLeft)
	}

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		in.RightMouse = true
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			in.AddMouseDelta(float64(delta.X), float64(delta.Y))
		}
	}
	return in
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		rl.CloseWindow()
		os.Exit(0)
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.World.Reset()
		a.trails = nil
	}

	// Hide the cursor while looking around so deltas keep flowing at the
	// screen edge.
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		rl.DisableCursor()
		a.Looking = true
	}
	if rl.IsMouseButtonReleased(rl.MouseRightButton) && a.Looking {
		rl.EnableCursor()
		a.Looking = false
	}

	in := pollInput()
	dt := float64(rl.GetFrameTime())
	if !a.Running {
		// Paused still flies the camera.
		a.World.Camera.Update(in, a.World.Clock.Clamp(dt))
	} else {
		a.World.Step(dt, in)
	}
	a.syncCamera()
}

// syncCamera mirrors the rig into the raylib camera.
func (a *App) syncCamera() {
	rig := &a.World.Camera
	target := rig.Position.Add(rig.Forward())
	a.Camera.Position = rl.NewVector3(float32(rig.Position.X), float32(rig.Position.Y), float32(rig.Position.Z))
	a.Camera.Target = rl.NewVector3(float32(target.X), float32(target.Y), float32(target.Z))
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawWorld()
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText("orbitlab", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: t=%.1fs", a.World.Elapsed), 150, 34, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, 1150, 30, 16, col)

	a.drawText(fmt.Sprintf("p=%.3f  ke=%.1f", a.World.Momentum(), a.World.KineticEnergy()), 30, 60, 16, ColText)

	a.drawText("[WASD] MOVE  [RMB] LOOK  [SPACE/SHIFT] UP/DOWN  [P] PAUSE  [R] RESET  [Q] QUIT", 550, 680, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
