package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitlab/internal/input"
	"github.com/san-kum/orbitlab/internal/mathx"
	"github.com/san-kum/orbitlab/internal/sim"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	trailCapacity   = 600
	historyCapacity = 600
)

type TickMsg time.Time

// Model runs the world at a fixed frame rate and draws a top-down (XZ plane)
// view of the orbits.
type Model struct {
	world  *sim.World
	canvas *Canvas

	fps     int
	zoom    float64
	running bool

	trails     [][]mathx.Vec3
	radiusHist []float64
}

// NewModel wraps a world for live viewing at the given frame rate.
func NewModel(w *sim.World, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		world:   w,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		fps:     fps,
		zoom:    1.2,
		running: true,
		trails:  make([][]mathx.Vec3, len(w.Bodies)),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.world.Reset()
			m.trails = make([][]mathx.Vec3, len(m.world.Bodies))
			m.radiusHist = m.radiusHist[:0]
		case "+", "=":
			m.zoom *= 1.2
		case "-", "_":
			m.zoom /= 1.2
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances the world by one fixed frame with no camera input; the free
// camera belongs to the GUI, the TUI view is always top-down.
func (m *Model) step() {
	m.world.Step(1.0/float64(m.fps), input.Snapshot{})

	for i := range m.world.Bodies {
		b := &m.world.Bodies[i]
		if b.Emissive {
			continue
		}
		m.trails[i] = append(m.trails[i], b.Position)
		if len(m.trails[i]) > trailCapacity {
			m.trails[i] = m.trails[i][1:]
		}
	}

	if len(m.world.Bodies) > 1 {
		r := m.world.Bodies[1].Position.Sub(m.world.Bodies[0].Position).Length()
		m.radiusHist = append(m.radiusHist, r)
		if len(m.radiusHist) > historyCapacity {
			m.radiusHist = m.radiusHist[1:]
		}
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	cx, cy := canvasWidth, canvasHeight*2 // sub-pixel centre

	for i := range m.world.Bodies {
		b := &m.world.Bodies[i]

		for _, pt := range m.trails[i] {
			m.canvas.Set(cx+int(pt.X*m.zoom), cy+int(pt.Z*m.zoom))
		}

		r := int(b.Radius * m.zoom)
		if r < 1 {
			r = 1
		}
		m.canvas.Fill(cx+int(b.Position.X*m.zoom), cy+int(b.Position.Z*m.zoom), r)
	}
}

func (m Model) View() string {
	m.draw()

	var s strings.Builder
	s.WriteString(headerStyle.Render("ORBITLAB") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.radiusHist) > 1 {
		chart := asciigraph.Plot(m.radiusHist,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("inner orbit radius"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.world.Elapsed)) + "\n")
	s.WriteString(labelStyle.Render("Momentum") + valueStyle.Render(fmt.Sprintf("%.4f", m.world.Momentum())) + "\n")
	s.WriteString(labelStyle.Render("Kinetic") + valueStyle.Render(fmt.Sprintf("%.4f", m.world.KineticEnergy())) + "\n")
	s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprintf("%.2fx", m.zoom)) + "\n\n")

	for _, b := range m.world.Bodies {
		r := b.Position.Length()
		s.WriteString(labelStyle.Render(b.Name) + valueStyle.Render(fmt.Sprintf("r=%.1f v=%.2f", r, b.Velocity.Length())) + "\n")
	}

	s.WriteString(helpStyle.Render("\n────────────────────\nSP:Pause R:Reset Q:Quit +/-:Zoom"))

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
