package tui

import (
	"strings"

	"github.com/bnema/superuser/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type brush struct {
	fg   lipgloss.Color
	bg   lipgloss.Color
	bold bool
}

func (b brush) style() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(b.bold)
	if b.fg != "" {
		s = s.Foreground(b.fg)
	}
	if b.bg != "" {
		s = s.Background(b.bg)
	}
	return s
}

type cell struct {
	r rune
	b brush
}

// canvas is a grid of styled cells. Later writes cover earlier ones.
type canvas struct {
	width  int
	height int
	cells  []cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, cells: make([]cell, width*height)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *canvas) bounds() domain.Rect {
	return domain.Rect{Size: domain.Vec{X: c.width, Y: c.height}}
}

func (c *canvas) set(x, y int, r rune, b brush, clip domain.Rect) {
	if !within(clip, x, y) || !within(c.bounds(), x, y) {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, b: b}
}

func (c *canvas) fill(rect domain.Rect, b brush, clip domain.Rect) {
	for y := rect.Pos.Y; y < rect.Pos.Y+rect.Size.Y; y++ {
		for x := rect.Pos.X; x < rect.Pos.X+rect.Size.X; x++ {
			c.set(x, y, ' ', b, clip)
		}
	}
}

// text writes s starting at (x, y) and returns the column after the last rune.
func (c *canvas) text(x, y int, s string, b brush, clip domain.Rect) int {
	for _, r := range s {
		c.set(x, y, r, b, clip)
		x++
	}
	return x
}

func (c *canvas) String() string {
	styles := make(map[brush]lipgloss.Style)
	rows := make([]string, 0, c.height)

	for y := 0; y < c.height; y++ {
		var sb strings.Builder
		row := c.cells[y*c.width : (y+1)*c.width]

		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].b == row[start].b {
				end++
			}

			run := make([]rune, 0, end-start)
			for _, cl := range row[start:end] {
				run = append(run, cl.r)
			}

			style, ok := styles[row[start].b]
			if !ok {
				style = row[start].b.style()
				styles[row[start].b] = style
			}
			sb.WriteString(style.Render(string(run)))
			start = end
		}
		rows = append(rows, sb.String())
	}

	return strings.Join(rows, "\n")
}

// within is inclusive on the top-left edges, unlike domain.Rect.Contains.
func within(r domain.Rect, x, y int) bool {
	return x >= r.Pos.X && x < r.Pos.X+r.Size.X && y >= r.Pos.Y && y < r.Pos.Y+r.Size.Y
}
