// Package viz renders the live orbital map in the terminal: a top-down
// braille-canvas view of the body hierarchy next to a stats pane with
// clock and scale controls. It consumes engine poses as opaque transforms
// and never inspects them for physics meaning.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/engine"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	orbitSteps   = 96
)

type TickMsg time.Time

// Model drives the live view: it advances the simulation clock by real
// elapsed time each frame and recomputes every pose.
type Model struct {
	eng      *engine.Engine
	clock    *engine.Clock
	settings engine.Settings

	canvas   *Canvas
	fps      int
	start    time.Time // simulated start, for reset
	lastReal time.Time
	poses    []engine.BodyPose
	names    []string
	focus    int
	paused   bool
	saved    float64 // speed stashed while paused
	maxA     float64
	showHelp bool
}

func NewModel(eng *engine.Engine, clock *engine.Clock, settings engine.Settings, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	m := Model{
		eng:      eng,
		clock:    clock,
		settings: settings,
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		fps:      fps,
		start:    clock.Now(),
	}
	for i := range eng.Table().Bodies {
		b := &eng.Table().Bodies[i]
		if b.Elements.A > m.maxA {
			m.maxA = b.Elements.A
		}
	}
	if m.maxA == 0 {
		m.maxA = 1
	}
	m.poses = eng.Tick(clock.Now(), settings)
	for _, p := range m.poses {
		m.names = append(m.names, p.Name)
	}
	return m
}

func (m Model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.fps)
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.paused {
				m.clock.SetSpeed(m.saved)
			} else {
				m.saved = m.clock.Speed()
				m.clock.SetSpeed(0)
			}
			m.paused = !m.paused
		case ".":
			m.bumpSpeed(2)
		case ",":
			m.bumpSpeed(0.5)
		case "r":
			m.bumpSpeed(-1)
		case "0":
			m.clock.SetNow(m.start)
		case "p":
			m.settings.PlanetScale *= 1.25
		case "P":
			m.settings.PlanetScale /= 1.25
		case "u":
			m.settings.UniverseScale *= 1.25
		case "U":
			m.settings.UniverseScale /= 1.25
		case "tab":
			m.focus = (m.focus + 1) % len(m.names)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		now := time.Time(msg)
		if !m.lastReal.IsZero() {
			m.clock.Advance(now.Sub(m.lastReal))
		}
		m.lastReal = now
		m.poses = m.eng.Tick(m.clock.Now(), m.settings)
		return m, tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// bumpSpeed scales the live speed, or the stashed one while paused.
func (m *Model) bumpSpeed(factor float64) {
	if m.paused {
		m.saved *= factor
		return
	}
	m.clock.SetSpeed(m.clock.Speed() * factor)
}

// project maps a world position onto the canvas, top-down: world X runs
// right, world Z runs down, the vertical (Y) component is flattened out.
func (m *Model) project(x, z float64) (int, int) {
	cw, ch := canvasWidth*2, canvasHeight*4
	extent := m.maxA * m.settings.UniverseScale * 1.1
	px := cw/2 + int(x/extent*float64(cw/2))
	py := ch/2 + int(z/extent*float64(ch/2))
	return px, py
}

func (m *Model) draw() {
	m.canvas.Clear()

	byName := make(map[string]engine.BodyPose, len(m.poses))
	for _, p := range m.poses {
		byName[p.Name] = p
	}

	for i := range m.eng.Table().Bodies {
		m.drawOrbits(&m.eng.Table().Bodies[i], byName, false)
	}
	for _, p := range m.poses {
		px, py := m.project(p.World.X, p.World.Z)
		r := 0
		if p.Parent == "" {
			r = 1
		}
		m.canvas.Blob(px, py, r)
	}
}

// drawOrbits traces a body's orbit in its parent's frame, then recurses.
func (m *Model) drawOrbits(b *body.Body, byName map[string]engine.BodyPose, satellite bool) {
	parentWorld := [2]float64{0, 0}
	parentScale := 1.0
	worldScale := 1.0
	if satellite {
		// Satellite orbits are centered on the parent's current position
		// and stretched by the scale the renderer applies to children.
		if pp, ok := byName[b.Name]; ok {
			if parent, ok := byName[pp.Parent]; ok {
				parentWorld = [2]float64{parent.World.X, parent.World.Z}
				parentScale = parent.Scale
				worldScale = parent.Scale
			}
		}
	}

	path := engine.OrbitPath(b, m.settings, parentScale, satellite, orbitSteps)
	if path != nil {
		points := make([][2]int, 0, len(path))
		for _, v := range path {
			px, py := m.project(parentWorld[0]+v.X*worldScale, parentWorld[1]+v.Z*worldScale)
			points = append(points, [2]int{px, py})
		}
		m.canvas.Path(points)
	}

	for i := range b.Satellites {
		m.drawOrbits(&b.Satellites[i], byName, true)
	}
}

func (m Model) View() string {
	m.draw()

	var s strings.Builder
	s.WriteString(headerStyle.Render("ORRERY") + "\n")

	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	} else if m.clock.Speed() < 0 {
		status = "REWIND"
	}
	s.WriteString(status + "\n\n")

	speed := m.clock.Speed()
	if m.paused {
		speed = m.saved
	}
	s.WriteString(labelStyle.Render("Sim time") + valueStyle.Render(m.clock.Now().UTC().Format("2006-01-02 15:04")) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%+.2f d/s", speed/86400)) + "\n")
	s.WriteString(labelStyle.Render("Planet scale") + valueStyle.Render(fmt.Sprintf("%.2f", m.settings.PlanetScale)) + "\n")
	s.WriteString(labelStyle.Render("Universe scale") + valueStyle.Render(fmt.Sprintf("%.2f", m.settings.UniverseScale)) + "\n")

	s.WriteString("\nBODIES\n")
	for i, p := range m.poses {
		line := fmt.Sprintf("%-10s r=%7.3f", p.Name, p.World.Norm())
		if i == m.focus {
			s.WriteString(focusStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\nSP:Pause  ./,:Speed  R:Reverse  0:Restart\nP/U:Scales  Tab:Select  ?:Help  Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()),
	)
	if m.showHelp {
		return helpOverlay + "\n\n" + main
	}
	return main
}

const helpOverlay = `
╔═══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS          ║
╠═══════════════════════════════════════╣
║  Space    - Pause/Resume clock        ║
║  .        - Double clock speed        ║
║  ,        - Halve clock speed         ║
║  R        - Reverse time              ║
║  0        - Jump back to start        ║
║  P / p    - Planet scale down/up      ║
║  U / u    - Universe scale down/up    ║
║  Tab      - Cycle body selection      ║
║  ?        - Toggle this help          ║
║  Q        - Quit                      ║
╚═══════════════════════════════════════╝`
