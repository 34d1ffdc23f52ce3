package manual

import (
	"strings"
	"testing"

	"github.com/bnema/superuser/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesProducesPlainWrappedText(t *testing.T) {
	m := domain.Manual{
		ID:   "hack",
		Size: domain.Vec{X: 24, Y: 10},
		Body: "Asks a challenge. Type the exact answer to get root.\n\nA wrong answer aborts.",
	}

	lines, err := Lines(m)
	require.NoError(t, err)
	require.NotEmpty(t, lines)

	joined := strings.Join(lines, " ")
	assert.Contains(t, joined, "challenge")
	assert.Contains(t, joined, "aborts")
	assert.NotContains(t, joined, "\x1b[")
	assert.NotEmpty(t, lines[0])
	assert.NotEmpty(t, lines[len(lines)-1])
}

func TestRenderIncludesTitle(t *testing.T) {
	out, err := Render(domain.Manual{ID: "ssh", Title: "ssh(1)", Body: "Open a shell."}, "notty", 60)
	require.NoError(t, err)

	assert.Contains(t, out, "ssh(1)")
	assert.Contains(t, out, "Open a shell.")
}

func TestTidyStripsMarginAndBlankEdges(t *testing.T) {
	got := tidy("\n  first  \n\n    nested\n  last\n\n")
	assert.Equal(t, []string{"first", "", "  nested", "last"}, got)
}
