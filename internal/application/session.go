package application

import (
	"time"

	"github.com/bnema/superuser/internal/domain"
	"go.uber.org/zap"
)

// Event is an input already decoded by the shell.
type Event interface {
	isEvent()
}

type CharTyped struct {
	Rune rune
}

type Backspace struct{}

type Confirm struct{}

type PointerDown struct {
	Pos domain.Vec
}

// PointerMoved is a pointer motion; Held is true while the primary button is down.
type PointerMoved struct {
	Pos  domain.Vec
	Held bool
}

func (CharTyped) isEvent()    {}
func (Backspace) isEvent()    {}
func (Confirm) isEvent()      {}
func (PointerDown) isEvent()  {}
func (PointerMoved) isEvent() {}

// Frame is everything a shell needs to draw one frame.
type Frame struct {
	Lines        []string
	Prompt       string
	CaretVisible bool
	Placed       []domain.Manual
	InFlight     []domain.Manual
	Board        domain.Rect
	Hosts        []domain.Host
	Current      string
	Target       string
	Won          bool
}

// Session ties a console and a document board to one network and routes shell events
// to them. It is single-threaded: the shell applies events and ticks in order.
type Session struct {
	network *domain.Network
	console *Console
	board   *DocumentBoard
	logger  *zap.Logger
	elapsed time.Duration
	pointer domain.Vec
}

func NewSession(console *Console, board *DocumentBoard, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		network: console.network,
		console: console,
		board:   board,
		logger:  logger,
	}
}

func (s *Session) Handle(event Event) {
	switch ev := event.(type) {
	case CharTyped:
		s.console.PushChar(ev.Rune)
	case Backspace:
		s.console.Backspace()
	case Confirm:
		s.console.Submit()
	case PointerDown:
		s.pointer = ev.Pos
	case PointerMoved:
		if ev.Held {
			s.board.DragTo(ev.Pos, s.pointer)
		}
		s.pointer = ev.Pos
	default:
		s.logger.Debug("ignored event", zap.Any("event", event))
	}
}

func (s *Session) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.elapsed += dt
	s.board.Tick(dt)
}

func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

func (s *Session) Console() *Console {
	return s.console
}

func (s *Session) Board() *DocumentBoard {
	return s.board
}

func (s *Session) Network() *domain.Network {
	return s.network
}

func (s *Session) Frame() Frame {
	frame := Frame{
		Lines:        s.console.Lines(),
		Prompt:       s.console.FullPrompt(),
		CaretVisible: CaretVisible(s.elapsed),
		Placed:       s.board.Placed(),
		InFlight:     s.board.InFlight(),
		Board:        s.board.Region(),
		Hosts:        s.network.Hosts(),
		Current:      s.console.CurrentHost(),
		Won:          s.network.Len() > 0 && s.network.AllHacked(),
	}
	if pending, ok := s.console.State().(AwaitingAnswer); ok {
		frame.Target = pending.Target
	}
	return frame
}
