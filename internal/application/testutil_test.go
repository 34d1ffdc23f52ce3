package application

import (
	"testing"

	"github.com/bnema/superuser/internal/domain"
	"github.com/stretchr/testify/require"
)

type recordingPrinter struct {
	printed []domain.Manual
}

func (p *recordingPrinter) RequestPrint(manual domain.Manual) {
	p.printed = append(p.printed, manual)
}

type fixedRandom struct {
	value int
}

func (r fixedRandom) IntN(n int) int {
	return r.value % n
}

func testListing(t *testing.T, files map[string]string, order ...string) domain.Listing {
	t.Helper()

	listing := domain.NewListing()
	for _, name := range order {
		require.NoError(t, listing.Add(name, domain.ManualReference{ID: files[name]}))
	}
	return listing
}

func testNetwork(t *testing.T) *domain.Network {
	t.Helper()

	network, err := domain.NewNetwork("localhost",
		domain.Host{
			Address: "localhost",
			Hacked:  true,
			Files: testListing(t, map[string]string{
				"readme.man": "readme",
				"ssh.man":    "ssh",
				"ghost.man":  "ghost",
			}, "readme.man", "ssh.man", "ghost.man"),
		},
		domain.Host{Address: "10.0.0.2", PuzzleKind: "math", Position: domain.Vec{X: 10, Y: 2}},
		domain.Host{
			Address:    "10.0.0.3",
			PuzzleKind: "caesar",
			Files:      testListing(t, map[string]string{"hack.man": "hack"}, "hack.man"),
		},
	)
	require.NoError(t, err)
	return network
}

func testPuzzles(t *testing.T) domain.PuzzleCatalog {
	t.Helper()

	catalog, err := domain.NewPuzzleCatalog(
		domain.PuzzleKind{Name: "math", Pairs: []domain.Challenge{
			{Prompt: "What is 2 + 2?", Answer: "4"},
			{Prompt: "What is 6 * 7?", Answer: "42"},
		}},
		domain.PuzzleKind{Name: "caesar", Pairs: []domain.Challenge{
			{Prompt: "Decode: uppg", Answer: "root"},
		}},
	)
	require.NoError(t, err)
	return catalog
}

func testManuals(t *testing.T) domain.ManualCatalog {
	t.Helper()

	catalog, err := domain.NewManualCatalog(
		domain.Manual{ID: "readme", Title: "README", Size: domain.Vec{X: 20, Y: 8}, Body: "Welcome", Color: "252"},
		domain.Manual{ID: "ssh", Title: "ssh(1)", Size: domain.Vec{X: 24, Y: 10}, Body: "ssh <address>", Color: "230"},
		domain.Manual{ID: "hack", Title: "hack(1)", Size: domain.Vec{X: 24, Y: 10}, Body: "hack <address>", Color: "194"},
	)
	require.NoError(t, err)
	return catalog
}

func newTestConsole(t *testing.T, rng fixedRandom) (*Console, *recordingPrinter) {
	t.Helper()

	printer := &recordingPrinter{}
	console := NewConsole(testNetwork(t), testPuzzles(t), testManuals(t), printer, rng, nil)
	return console, printer
}

func typeLine(c *Console, line string) {
	for _, r := range line {
		c.PushChar(r)
	}
	c.Submit()
}
