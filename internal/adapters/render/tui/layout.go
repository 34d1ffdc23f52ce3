package tui

import "github.com/bnema/superuser/internal/domain"

// layout splits the terminal: console on the left half, host graph in the top quarter of
// the right half, document board below it.
type layout struct {
	console domain.Rect
	graph   domain.Rect
	board   domain.Rect
}

func newLayout(width, height int) layout {
	half := width / 2
	top := height / 4

	return layout{
		console: domain.Rect{Size: domain.Vec{X: half, Y: height}},
		graph: domain.Rect{
			Pos:  domain.Vec{X: half},
			Size: domain.Vec{X: width - half, Y: top},
		},
		board: domain.Rect{
			Pos:  domain.Vec{X: half, Y: top},
			Size: domain.Vec{X: width - half, Y: height - top},
		},
	}
}

// BoardRegion is the board rectangle for a terminal of the given size.
func BoardRegion(width, height int) domain.Rect {
	return newLayout(width, height).board
}
