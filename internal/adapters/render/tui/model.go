// Package tui is the interactive terminal shell: it decodes keyboard and mouse input into
// session events, drives the session clock and draws every frame.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/superuser/internal/adapters/render/manual"
	"github.com/bnema/superuser/internal/application"
	"github.com/bnema/superuser/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const DefaultFrameInterval = 33 * time.Millisecond

var ErrUnexpectedModel = errors.New("unexpected final bubbletea model type")

type frameMsg time.Time

type Options struct {
	FrameInterval time.Duration
	Logger        *zap.Logger
}

type Model struct {
	session  *application.Session
	logger   *zap.Logger
	styles   styles
	spinner  spinner.Model
	interval time.Duration
	width    int
	height   int
	last     time.Time
	bodies   map[string][]string
}

func New(session *application.Session, opts Options) Model {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return Model{
		session:  session,
		logger:   opts.Logger,
		styles:   newStyles(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		interval: opts.FrameInterval,
		bodies:   make(map[string][]string),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.nextFrame(), m.spinner.Tick)
}

func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case frameMsg:
		at := time.Time(msg)
		if !m.last.IsZero() {
			m.session.Tick(at.Sub(m.last))
		}
		m.last = at
		m.trim()
		return m, m.nextFrame()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.session.Board().SetRegion(BoardRegion(width, height))
	m.trim()
	m.logger.Debug("window resized", zap.Int("width", width), zap.Int("height", height))
}

// trim keeps one row free under the scrollback for the prompt.
func (m Model) trim() {
	if m.height > 0 {
		m.session.Console().TrimTo(m.height)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.session.Handle(application.Confirm{})
		m.trim()
	case tea.KeyBackspace:
		m.session.Handle(application.Backspace{})
	case tea.KeySpace:
		m.session.Handle(application.CharTyped{Rune: ' '})
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.session.Handle(application.CharTyped{Rune: r})
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	pos := domain.Vec{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.session.Handle(application.PointerDown{Pos: pos})
		}
	case tea.MouseActionMotion:
		m.session.Handle(application.PointerMoved{Pos: pos, Held: msg.Button == tea.MouseButtonLeft})
	}
}

// manualLines returns the rendered body of a manual, cached per manual id.
func (m Model) manualLines(doc domain.Manual) []string {
	if lines, ok := m.bodies[doc.ID]; ok {
		return lines
	}

	lines, err := manual.Lines(doc)
	if err != nil {
		m.logger.Warn("render manual body", zap.String("manual", doc.ID), zap.Error(err))
		lines = nil
	}
	m.bodies[doc.ID] = lines
	return lines
}

// Run blocks until the player quits or ctx is cancelled.
func Run(ctx context.Context, session *application.Session, opts Options, programOpts ...tea.ProgramOption) error {
	programOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, programOpts...)
	p := tea.NewProgram(New(session, opts), programOpts...)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if _, ok := finalModel.(Model); !ok {
		return ErrUnexpectedModel
	}
	return nil
}
