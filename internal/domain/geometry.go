package domain

// Vec is a position or size in board units. The terminal shell maps one unit to one cell.
type Vec struct {
	X int
	Y int
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

type Rect struct {
	Pos  Vec
	Size Vec
}

// Contains reports whether p lies strictly inside r. Points on an edge are outside.
func (r Rect) Contains(p Vec) bool {
	return r.Pos.X < p.X &&
		p.X < r.Pos.X+r.Size.X &&
		r.Pos.Y < p.Y &&
		p.Y < r.Pos.Y+r.Size.Y
}

func (r Rect) Center() Vec {
	return Vec{X: r.Pos.X + r.Size.X/2, Y: r.Pos.Y + r.Size.Y/2}
}

func (r Rect) Bottom() int {
	return r.Pos.Y + r.Size.Y
}
