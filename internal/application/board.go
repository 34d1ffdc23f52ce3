package application

import (
	"time"

	"github.com/bnema/superuser/internal/domain"
)

const (
	DefaultMovingPhase = 300 * time.Millisecond
	DefaultPausePhase  = 150 * time.Millisecond
	DefaultRiseStep    = 1
)

type AnimationPhase int

const (
	PhaseRising AnimationPhase = iota
	PhasePaused
)

// PrintAnimation slides a manual up into the board: rise for MovingTimer, pause for
// PauseTimer, repeat until the manual's bottom edge is inside the board.
type PrintAnimation struct {
	Manual      domain.Manual
	MovingTimer time.Duration
	PauseTimer  time.Duration
	Moving      bool
}

func (a PrintAnimation) Phase() AnimationPhase {
	if a.Moving {
		return PhaseRising
	}
	return PhasePaused
}

func (a *PrintAnimation) step(dt time.Duration, rise int) {
	if a.Moving {
		a.MovingTimer -= dt
		a.Manual.Pos.Y -= rise
		if a.MovingTimer < 0 {
			a.Moving = false
			a.PauseTimer = DefaultPausePhase
		}
		return
	}

	a.PauseTimer -= dt
	if a.PauseTimer < 0 {
		a.Moving = true
		a.MovingTimer = DefaultMovingPhase
	}
}

// DocumentBoard keeps placed manuals in render order (index 0 is on top) and a FIFO of
// print animations of which only the front one advances.
type DocumentBoard struct {
	region domain.Rect
	step   int
	placed []domain.Manual
	queue  []*PrintAnimation
}

func NewDocumentBoard(region domain.Rect, riseStep int) *DocumentBoard {
	if riseStep <= 0 {
		riseStep = DefaultRiseStep
	}
	return &DocumentBoard{region: region, step: riseStep}
}

// RequestPrint centers the manual horizontally on the board, parks it just below the
// board's bottom edge and queues its animation.
func (b *DocumentBoard) RequestPrint(manual domain.Manual) {
	manual.Pos = domain.Vec{
		X: b.region.Center().X - manual.Size.X/2,
		Y: b.region.Bottom(),
	}

	b.queue = append(b.queue, &PrintAnimation{
		Manual:      manual,
		MovingTimer: DefaultMovingPhase,
		PauseTimer:  DefaultPausePhase,
		Moving:      true,
	})
}

// Place puts a manual centered on the board, on top, without animation.
func (b *DocumentBoard) Place(manual domain.Manual) {
	center := b.region.Center()
	manual.Pos = domain.Vec{X: center.X - manual.Size.X/2, Y: center.Y - manual.Size.Y/2}
	b.placed = append([]domain.Manual{manual}, b.placed...)
}

// Tick advances the front animation by dt, promoting it once it is fully risen.
func (b *DocumentBoard) Tick(dt time.Duration) {
	front := b.front()
	if front == nil {
		return
	}

	if front.Manual.Pos.Y+front.Manual.Size.Y < b.region.Bottom() {
		b.queue[0] = nil
		b.queue = b.queue[1:]
		b.placed = append([]domain.Manual{front.Manual}, b.placed...)
		return
	}

	front.step(dt, b.step)
}

func (b *DocumentBoard) front() *PrintAnimation {
	if len(b.queue) == 0 {
		return nil
	}
	return b.queue[0]
}

// Front returns a copy of the animation currently in flight.
func (b *DocumentBoard) Front() (PrintAnimation, bool) {
	front := b.front()
	if front == nil {
		return PrintAnimation{}, false
	}
	return *front, true
}

// DragTo moves the topmost manual under previous by the pointer delta and brings it to
// the front. Nothing happens unless pointer is inside the board. Positions are not
// clamped, so a manual can be dragged outside the board.
func (b *DocumentBoard) DragTo(pointer, previous domain.Vec) bool {
	if !b.region.Contains(pointer) {
		return false
	}

	for i, manual := range b.placed {
		if !manual.Rect().Contains(previous) {
			continue
		}

		manual.Pos = manual.Pos.Add(pointer.Sub(previous))
		copy(b.placed[1:i+1], b.placed[:i])
		b.placed[0] = manual
		return true
	}

	return false
}

func (b *DocumentBoard) SetRegion(region domain.Rect) {
	b.region = region
}

func (b *DocumentBoard) Region() domain.Rect {
	return b.region
}

// Placed returns placed manuals in render order, topmost first.
func (b *DocumentBoard) Placed() []domain.Manual {
	return append([]domain.Manual(nil), b.placed...)
}

// InFlight returns the manuals waiting in or moving through the print queue, front first.
func (b *DocumentBoard) InFlight() []domain.Manual {
	out := make([]domain.Manual, 0, len(b.queue))
	for _, animation := range b.queue {
		out = append(out, animation.Manual)
	}
	return out
}

func (b *DocumentBoard) QueueLen() int {
	return len(b.queue)
}
