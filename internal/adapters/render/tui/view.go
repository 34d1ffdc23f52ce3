package tui

import (
	"strings"

	"github.com/bnema/superuser/internal/application"
	"github.com/bnema/superuser/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const winBanner = " ALL HOSTS ROOTED "

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	frame := m.session.Frame()
	l := newLayout(m.width, m.height)
	c := newCanvas(m.width, m.height)

	m.drawBoard(c, l.board, frame)
	m.drawGraph(c, l.graph, frame)
	m.drawConsole(c, l.console, frame)

	return c.String()
}

func (m Model) drawConsole(c *canvas, pane domain.Rect, frame application.Frame) {
	c.fill(pane, m.styles.console, pane)

	lines := frame.Lines
	if room := pane.Size.Y - 1; len(lines) > room {
		lines = lines[len(lines)-max(room, 0):]
	}

	row := pane.Pos.Y
	for _, line := range lines {
		c.text(pane.Pos.X, row, line, m.styles.console, pane)
		row++
	}

	end := c.text(pane.Pos.X, row, frame.Prompt, m.styles.console, pane)
	if frame.CaretVisible {
		c.set(end, row, ' ', m.styles.caret, pane)
	}
}

func (m Model) drawGraph(c *canvas, pane domain.Rect, frame application.Frame) {
	c.fill(pane, m.styles.graph, pane)
	c.text(pane.Pos.X+1, pane.Pos.Y, "network", m.styles.graphTitle, pane)

	spin := strings.TrimSpace(m.spinner.View())
	for _, host := range frame.Hosts {
		x, y := nodeCell(pane, host.Position)

		marker, b := "○", m.styles.hostLocked
		if host.Hacked {
			marker, b = "●", m.styles.hostRooted
		}
		label := b
		switch host.Address {
		case frame.Target:
			marker, label = spin, m.styles.hostTarget
			b = label
		case frame.Current:
			label = m.styles.hostCurrent
		}

		next := c.text(x, y, marker, b, pane)
		c.text(next+1, y, host.Address, label, pane)
	}

	if frame.Won {
		x := pane.Pos.X + max(pane.Size.X-len(winBanner), 0)/2
		c.text(x, pane.Pos.Y+pane.Size.Y-1, winBanner, m.styles.win, pane)
	}
}

// nodeCell maps a host position given in percent of the pane to a cell below the title row.
func nodeCell(pane domain.Rect, pos domain.Vec) (int, int) {
	px := min(max(pos.X, 0), 100)
	py := min(max(pos.Y, 0), 100)

	width := max(pane.Size.X-2, 1)
	height := max(pane.Size.Y-2, 1)

	return pane.Pos.X + 1 + px*(width-1)/100, pane.Pos.Y + 1 + py*(height-1)/100
}

func (m Model) drawBoard(c *canvas, pane domain.Rect, frame application.Frame) {
	c.fill(pane, m.styles.board, pane)

	for i := len(frame.Placed) - 1; i >= 0; i-- {
		m.drawManual(c, frame.Placed[i], pane)
	}
	for i := len(frame.InFlight) - 1; i >= 0; i-- {
		m.drawManual(c, frame.InFlight[i], pane)
	}
}

func (m Model) drawManual(c *canvas, doc domain.Manual, clip domain.Rect) {
	paper := lipgloss.Color(doc.Color)
	rect := doc.Rect()
	c.fill(rect, brush{bg: paper}, clip)

	title := doc.Title
	if title == "" {
		title = doc.ID
	}
	c.text(rect.Pos.X+1, rect.Pos.Y, title, brush{fg: m.styles.manualText, bg: paper, bold: true}, clip)

	body := brush{fg: m.styles.manualText, bg: paper}
	inner := domain.Rect{
		Pos:  domain.Vec{X: rect.Pos.X + 1, Y: rect.Pos.Y + 2},
		Size: domain.Vec{X: rect.Size.X - 2, Y: rect.Size.Y - 2},
	}
	for i, line := range m.manualLines(doc) {
		if i >= inner.Size.Y {
			break
		}
		c.text(inner.Pos.X, inner.Pos.Y+i, line, body, intersect(clip, inner))
	}
}

func intersect(a, b domain.Rect) domain.Rect {
	x0 := max(a.Pos.X, b.Pos.X)
	y0 := max(a.Pos.Y, b.Pos.Y)
	x1 := min(a.Pos.X+a.Size.X, b.Pos.X+b.Size.X)
	y1 := min(a.Pos.Y+a.Size.Y, b.Pos.Y+b.Size.Y)

	return domain.Rect{
		Pos:  domain.Vec{X: x0, Y: y0},
		Size: domain.Vec{X: max(x1-x0, 0), Y: max(y1-y0, 0)},
	}
}
