package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/superuser/internal/application"
	"github.com/bnema/superuser/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type firstChallenge struct{}

func (firstChallenge) IntN(int) int { return 0 }

func newTestSession(t *testing.T) *application.Session {
	t.Helper()

	files := domain.NewListing()
	require.NoError(t, files.Add("readme.man", domain.ManualReference{ID: "readme"}))

	network, err := domain.NewNetwork("localhost",
		domain.Host{Address: "localhost", Hacked: true, Files: files, Position: domain.Vec{X: 10, Y: 50}},
		domain.Host{Address: "10.0.0.2", PuzzleKind: "math", Files: domain.NewListing(), Position: domain.Vec{X: 70, Y: 50}},
	)
	require.NoError(t, err)

	puzzles, err := domain.NewPuzzleCatalog(domain.PuzzleKind{
		Name:  "math",
		Pairs: []domain.Challenge{{Prompt: "What is 2 + 2?", Answer: "4"}},
	})
	require.NoError(t, err)

	manuals, err := domain.NewManualCatalog(domain.Manual{
		ID:    "readme",
		Title: "README",
		Size:  domain.Vec{X: 20, Y: 8},
		Body:  "Type ls to list files.",
		Color: "230",
	})
	require.NoError(t, err)

	board := application.NewDocumentBoard(BoardRegion(80, 24), 1)
	console := application.NewConsole(network, puzzles, manuals, board, firstChallenge{}, nil)
	return application.NewSession(console, board, nil)
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()

	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeKeys(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text)+1)
	for _, r := range text {
		if r == ' ' {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestKeysDriveTheConsole(t *testing.T) {
	session := newTestSession(t)
	m := update(t, New(session, Options{}), typeKeys("ls")...)

	assert.Equal(t, []string{"root@localhost> ls", "readme.man"}, session.Console().Lines())
	assert.Equal(t, "root@localhost> ", session.Console().FullPrompt())

	update(t, m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("xy")},
		tea.KeyMsg{Type: tea.KeyBackspace},
	)
	assert.Equal(t, "x", session.Console().Buffer())
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := New(newTestSession(t), Options{}).Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestWindowSizeMovesBoard(t *testing.T) {
	session := newTestSession(t)
	update(t, New(session, Options{}), tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, domain.Rect{
		Pos:  domain.Vec{X: 60, Y: 10},
		Size: domain.Vec{X: 60, Y: 30},
	}, session.Board().Region())
}

func TestWindowSizeTrimsScrollback(t *testing.T) {
	session := newTestSession(t)
	m := New(session, Options{})
	for range 10 {
		m = update(t, m, typeKeys("ls")...)
	}
	require.Len(t, session.Console().Lines(), 20)

	update(t, m, tea.WindowSizeMsg{Width: 80, Height: 6})

	lines := session.Console().Lines()
	assert.Len(t, lines, 5)
	assert.Equal(t, "readme.man", lines[len(lines)-1])
}

func TestFramesAnimatePrintedManual(t *testing.T) {
	session := newTestSession(t)
	m := update(t, New(session, Options{}), tea.WindowSizeMsg{Width: 80, Height: 24})
	m = update(t, m, typeKeys("print readme.man")...)
	require.Equal(t, 1, session.Board().QueueLen())

	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := range 300 {
		m = update(t, m, frameMsg(start.Add(time.Duration(i)*16*time.Millisecond)))
	}

	assert.Equal(t, 0, session.Board().QueueLen())
	placed := session.Board().Placed()
	require.Len(t, placed, 1)
	assert.Equal(t, "readme", placed[0].ID)
	assert.Less(t, placed[0].Pos.Y+placed[0].Size.Y, session.Board().Region().Bottom())
	assert.Equal(t, 299*16*time.Millisecond, session.Elapsed())
}

func TestFirstFrameDoesNotAdvanceTime(t *testing.T) {
	session := newTestSession(t)
	m := New(session, Options{})

	next, cmd := m.Update(frameMsg(time.Now()))
	require.NotNil(t, cmd)
	require.IsType(t, Model{}, next)
	assert.Zero(t, session.Elapsed())
}

func TestMouseDragMovesManual(t *testing.T) {
	session := newTestSession(t)
	m := update(t, New(session, Options{}), tea.WindowSizeMsg{Width: 80, Height: 24})

	doc, err := domain.NewManualCatalog(domain.Manual{ID: "note", Size: domain.Vec{X: 20, Y: 8}})
	require.NoError(t, err)
	clone, err := doc.Clone("note")
	require.NoError(t, err)
	session.Board().Place(clone)
	require.Equal(t, domain.Vec{X: 50, Y: 11}, session.Board().Placed()[0].Pos)

	update(t, m,
		tea.MouseMsg{X: 55, Y: 13, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 57, Y: 14, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 57, Y: 14, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 60, Y: 16, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
	)

	assert.Equal(t, domain.Vec{X: 52, Y: 12}, session.Board().Placed()[0].Pos)
}

func TestViewBeforeWindowSizeIsEmpty(t *testing.T) {
	assert.Empty(t, New(newTestSession(t), Options{}).View())
}

func TestViewDrawsAllPanes(t *testing.T) {
	session := newTestSession(t)
	m := update(t, New(session, Options{}), tea.WindowSizeMsg{Width: 80, Height: 24})
	m = update(t, m, typeKeys("print readme.man")...)
	session.Board().Place(session.Board().InFlight()[0])

	view := m.View()

	assert.Equal(t, 23, strings.Count(view, "\n"))
	assert.Contains(t, view, "root@localhost> print readme.man")
	assert.Contains(t, view, "network")
	assert.Contains(t, view, "localhost")
	assert.Contains(t, view, "10.0.0.2")
	assert.Contains(t, view, "README")
	assert.NotContains(t, view, winBanner)
}

func TestViewShowsWinBanner(t *testing.T) {
	session := newTestSession(t)
	m := update(t, New(session, Options{}), tea.WindowSizeMsg{Width: 80, Height: 24})
	m = update(t, m, typeKeys("hack 10.0.0.2")...)
	m = update(t, m, typeKeys("4")...)

	require.True(t, session.Frame().Won)
	assert.Contains(t, m.View(), winBanner)
}

func TestNodeCellScalesPercent(t *testing.T) {
	pane := domain.Rect{Pos: domain.Vec{X: 40}, Size: domain.Vec{X: 42, Y: 12}}

	x, y := nodeCell(pane, domain.Vec{})
	assert.Equal(t, 41, x)
	assert.Equal(t, 1, y)

	x, y = nodeCell(pane, domain.Vec{X: 100, Y: 100})
	assert.Equal(t, 80, x)
	assert.Equal(t, 10, y)

	x, y = nodeCell(pane, domain.Vec{X: 250, Y: -5})
	assert.Equal(t, 80, x)
	assert.Equal(t, 1, y)
}

func TestCanvasClipsWrites(t *testing.T) {
	c := newCanvas(4, 2)
	clip := domain.Rect{Pos: domain.Vec{X: 1}, Size: domain.Vec{X: 2, Y: 1}}

	c.text(0, 0, "abcd", brush{}, clip)
	c.text(0, 1, "zz", brush{}, c.bounds())

	assert.Equal(t, " bc \nzz  ", c.String())
}
