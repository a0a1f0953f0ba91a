package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/approx/internal/calculus"
)

const (
	canvasWidth  = 60
	canvasHeight = 16
)

type tickMsg time.Time

// Replay steps through a recorded trace one point at a time.
type Replay struct {
	title   string
	points  []calculus.Coordinate
	pos     int
	playing bool
	delay   time.Duration
	canvas  *Canvas
}

func NewReplay(title string, points []calculus.Coordinate, delay time.Duration) Replay {
	if delay <= 0 {
		delay = 50 * time.Millisecond
	}
	return Replay{
		title:  title,
		points: points,
		delay:  delay,
		canvas: NewCanvas(canvasWidth, canvasHeight),
	}
}

func (m Replay) Position() int { return m.pos }
func (m Replay) Playing() bool { return m.playing }

func (m Replay) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Replay) Init() tea.Cmd {
	return m.tick()
}

func (m Replay) last() int {
	if len(m.points) == 0 {
		return 0
	}
	return len(m.points) - 1
}

func (m Replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
			if m.pos == m.last() {
				m.pos = 0
			}
		case "right", "l", "n":
			m.playing = false
			if m.pos < m.last() {
				m.pos++
			}
		case "left", "h", "p":
			m.playing = false
			if m.pos > 0 {
				m.pos--
			}
		case "home", "r":
			m.pos = 0
		case "end", "G":
			m.playing = false
			m.pos = m.last()
		}
	case tickMsg:
		if m.playing {
			if m.pos < m.last() {
				m.pos++
			}
			if m.pos == m.last() {
				m.playing = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Replay) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")

	if len(m.points) == 0 {
		b.WriteString(warnStyle.Render("trace is empty") + "\n")
		b.WriteString(helpStyle.Render("q quit"))
		return b.String()
	}

	m.canvas.PlotIn(m.points[:m.pos+1], m.points)
	b.WriteString(graphStyle.Render(m.canvas.String()))

	p := m.points[m.pos]
	status := "paused"
	if m.playing {
		status = goodStyle.Render("playing")
	}
	b.WriteString(row("step", fmt.Sprintf("%d / %d", m.pos, m.last())) + "\n")
	b.WriteString(row("x", num(p.X)) + "\n")
	b.WriteString(row("y", num(p.Y)) + "\n")
	b.WriteString(row("status", status) + "\n")
	b.WriteString(helpStyle.Render("space play/pause • ←/→ step • r restart • G end • q quit"))
	return b.String()
}

// RunReplay opens the replay view in the terminal.
func RunReplay(title string, points []calculus.Coordinate, delay time.Duration) error {
	p := tea.NewProgram(NewReplay(title, points, delay))
	_, err := p.Run()
	return err
}
