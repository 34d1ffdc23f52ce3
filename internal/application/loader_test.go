package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/superuser/internal/domain"
	"github.com/bnema/superuser/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

type loaderFixture struct {
	networks *mocks.MockNetworkRepository
	puzzles  *mocks.MockPuzzleRepository
	manuals  *mocks.MockManualRepository
	logs     *observer.ObservedLogs
	loader   *Loader
}

func newLoaderFixture(t *testing.T) loaderFixture {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	f := loaderFixture{
		networks: mocks.NewMockNetworkRepository(t),
		puzzles:  mocks.NewMockPuzzleRepository(t),
		manuals:  mocks.NewMockManualRepository(t),
		logs:     logs,
	}
	f.loader = NewLoader(f.networks, f.puzzles, f.manuals, fixedRandom{}, zap.New(core))
	return f
}

func TestLoaderBuildsSession(t *testing.T) {
	f := newLoaderFixture(t)
	f.puzzles.EXPECT().Load(mockAnyContext()).Return(testPuzzles(t), nil)
	f.manuals.EXPECT().Load(mockAnyContext()).Return(testManuals(t), nil)
	f.networks.EXPECT().Load(mockAnyContext()).Return(networkWithoutGhost(t), nil)

	session, err := f.loader.Load(context.Background(), SessionOptions{
		Board:         testBoard().Region(),
		WelcomeManual: "readme",
	})
	require.NoError(t, err)

	frame := session.Frame()
	assert.Len(t, frame.Hosts, 3)
	require.Len(t, frame.Placed, 1)
	assert.Equal(t, "readme", frame.Placed[0].ID)
	assert.Equal(t, "root@localhost> ", frame.Prompt)
	assert.Equal(t, 1, f.logs.FilterMessage("session ready").Len())
}

func TestLoaderPuzzleFailureIsFatal(t *testing.T) {
	f := newLoaderFixture(t)
	f.puzzles.EXPECT().Load(mockAnyContext()).Return(domain.PuzzleCatalog{}, errors.New("bad toml"))
	f.manuals.EXPECT().Load(mockAnyContext()).Return(testManuals(t), nil).Maybe()

	_, err := f.loader.Load(context.Background(), SessionOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load puzzle catalog")
}

func TestLoaderManualFailureIsFatal(t *testing.T) {
	f := newLoaderFixture(t)
	f.puzzles.EXPECT().Load(mockAnyContext()).Return(testPuzzles(t), nil).Maybe()
	f.manuals.EXPECT().Load(mockAnyContext()).Return(domain.ManualCatalog{}, domain.ErrManualNotFound)

	_, err := f.loader.Load(context.Background(), SessionOptions{})
	assert.ErrorIs(t, err, domain.ErrManualNotFound)
}

func TestLoaderNetworkFailureDegradesToEmptyNetwork(t *testing.T) {
	f := newLoaderFixture(t)
	f.puzzles.EXPECT().Load(mockAnyContext()).Return(testPuzzles(t), nil)
	f.manuals.EXPECT().Load(mockAnyContext()).Return(testManuals(t), nil)
	f.networks.EXPECT().Load(mockAnyContext()).Return(nil, errors.New("decode network file: boom"))

	session, err := f.loader.Load(context.Background(), SessionOptions{Board: testBoard().Region()})
	require.NoError(t, err)

	assert.Zero(t, session.Network().Len())
	assert.Equal(t, domain.DefaultEntryAddress, session.Console().CurrentHost())

	errorLogs := f.logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errorLogs, 1)
	assert.Contains(t, errorLogs[0].ContextMap()["error"], "boom")

	typeEvents(session, "ls")
	typeEvents(session, "hack 10.0.0.2")
	assert.Equal(t, "Connection refused: no host found", session.Console().LastLine())
}

func TestLoaderRejectsNetworkWithDanglingReferences(t *testing.T) {
	f := newLoaderFixture(t)
	f.puzzles.EXPECT().Load(mockAnyContext()).Return(testPuzzles(t), nil)
	f.manuals.EXPECT().Load(mockAnyContext()).Return(testManuals(t), nil)
	f.networks.EXPECT().Load(mockAnyContext()).Return(testNetwork(t), nil)

	network, err := f.loader.LoadNetwork(context.Background())
	require.NoError(t, err)
	assert.Zero(t, network.Len())
	assert.Equal(t, 1, f.logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestValidateNetworkReportsUnknownPuzzleKind(t *testing.T) {
	network, err := domain.NewNetwork("localhost",
		domain.Host{Address: "localhost", Hacked: true},
		domain.Host{Address: "10.0.0.9", PuzzleKind: "riddle"},
	)
	require.NoError(t, err)

	err = ValidateNetwork(network, testPuzzles(t), testManuals(t))
	assert.ErrorIs(t, err, ErrInvalidNetwork)
	assert.ErrorIs(t, err, domain.ErrPuzzleKindNotFound)
}

func networkWithoutGhost(t *testing.T) *domain.Network {
	t.Helper()

	network, err := domain.NewNetwork("localhost",
		domain.Host{
			Address: "localhost",
			Hacked:  true,
			Files:   testListing(t, map[string]string{"readme.man": "readme", "ssh.man": "ssh"}, "readme.man", "ssh.man"),
		},
		domain.Host{Address: "10.0.0.2", PuzzleKind: "math"},
		domain.Host{Address: "10.0.0.3", PuzzleKind: "caesar"},
	)
	require.NoError(t, err)
	return network
}
