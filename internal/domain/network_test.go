package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNetwork(t *testing.T) *Network {
	t.Helper()

	n, err := NewNetwork("localhost",
		Host{Address: "localhost", Hacked: true},
		Host{Address: "10.0.0.2", PuzzleKind: "math"},
		Host{Address: "10.0.0.3", PuzzleKind: "caesar"},
	)
	require.NoError(t, err)
	return n
}

func TestNetworkMarkHackedAndAllHacked(t *testing.T) {
	n := testNetwork(t)

	assert.False(t, n.AllHacked())
	assert.Equal(t, 1, n.HackedCount())

	n.MarkHacked("10.0.0.2")
	n.MarkHacked("10.0.0.3")

	assert.True(t, n.AllHacked())
	assert.Equal(t, 3, n.HackedCount())
}

func TestNetworkMarkHackedUnknownAddressIsNoop(t *testing.T) {
	n := testNetwork(t)
	before := n.Hosts()

	n.MarkHacked("192.168.1.1")

	assert.Equal(t, before, n.Hosts())
}

func TestNetworkHostsAreCopies(t *testing.T) {
	n := testNetwork(t)

	hosts := n.Hosts()
	hosts[1].Hacked = true

	host, ok := n.Lookup("10.0.0.2")
	require.True(t, ok)
	assert.False(t, host.Hacked)
	assert.Equal(t, []string{"localhost", "10.0.0.2", "10.0.0.3"}, addresses(n.Hosts()))
}

func TestNewNetworkValidation(t *testing.T) {
	_, err := NewNetwork("localhost", Host{Address: "a"}, Host{Address: "a"})
	assert.ErrorIs(t, err, ErrDuplicateHost)

	_, err = NewNetwork("localhost", Host{Address: "a"})
	assert.ErrorIs(t, err, ErrEntryHostMissing)

	n, err := NewNetwork("")
	require.NoError(t, err)
	assert.Equal(t, DefaultEntryAddress, n.Entry())
}

func TestEmptyNetwork(t *testing.T) {
	n := EmptyNetwork()

	assert.Equal(t, DefaultEntryAddress, n.Entry())
	assert.Zero(t, n.Len())
	_, ok := n.Lookup(DefaultEntryAddress)
	assert.False(t, ok)
}

func addresses(hosts []Host) []string {
	out := make([]string, 0, len(hosts))
	for _, host := range hosts {
		out = append(out, host.Address)
	}
	return out
}
