package domain

import "fmt"

// DefaultEntryAddress is where every session starts and where dc returns to.
const DefaultEntryAddress = "localhost"

// Network is the static host graph. Hacked flags are the only mutable state.
type Network struct {
	entry string
	order []string
	hosts map[string]*Host
}

func NewNetwork(entry string, hosts ...Host) (*Network, error) {
	if entry == "" {
		entry = DefaultEntryAddress
	}

	n := &Network{entry: entry, hosts: make(map[string]*Host, len(hosts))}
	for _, host := range hosts {
		if _, ok := n.hosts[host.Address]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateHost, host.Address)
		}
		host := host
		n.order = append(n.order, host.Address)
		n.hosts[host.Address] = &host
	}

	if len(n.hosts) > 0 {
		if _, ok := n.hosts[entry]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrEntryHostMissing, entry)
		}
	}

	return n, nil
}

// EmptyNetwork is the fallback used when network configuration cannot be loaded.
func EmptyNetwork() *Network {
	return &Network{entry: DefaultEntryAddress, hosts: map[string]*Host{}}
}

func (n *Network) Entry() string {
	return n.entry
}

func (n *Network) Lookup(address string) (Host, bool) {
	host, ok := n.hosts[address]
	if !ok {
		return Host{}, false
	}
	return *host, true
}

// Hosts returns a copy of every host in insertion order.
func (n *Network) Hosts() []Host {
	hosts := make([]Host, 0, len(n.order))
	for _, address := range n.order {
		hosts = append(hosts, *n.hosts[address])
	}
	return hosts
}

func (n *Network) Len() int {
	return len(n.order)
}

// MarkHacked flips the host's flag. Unknown addresses are ignored.
func (n *Network) MarkHacked(address string) {
	if host, ok := n.hosts[address]; ok {
		host.Hacked = true
	}
}

func (n *Network) AllHacked() bool {
	for _, host := range n.hosts {
		if !host.Hacked {
			return false
		}
	}
	return true
}

func (n *Network) HackedCount() int {
	count := 0
	for _, host := range n.hosts {
		if host.Hacked {
			count++
		}
	}
	return count
}
