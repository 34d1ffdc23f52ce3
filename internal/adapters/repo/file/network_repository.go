package file

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/superuser/internal/domain"
	"github.com/bnema/superuser/internal/ports"
	"github.com/spf13/viper"
)

const defaultNetworkFile = "network.toml"

type NetworkRepository struct {
	src source
}

var _ ports.NetworkRepository = (*NetworkRepository)(nil)

func NewNetworkRepository(cfg *viper.Viper) (*NetworkRepository, error) {
	src, err := newSource(cfg, NetworkPathKey, defaultNetworkFile)
	if err != nil {
		return nil, err
	}
	return &NetworkRepository{src: src}, nil
}

func (r *NetworkRepository) Load(ctx context.Context) (*domain.Network, error) {
	var file networkFileSchema
	if err := r.src.decode(ctx, &file); err != nil {
		return nil, err
	}
	if err := validateVersion("network", file.Version); err != nil {
		return nil, err
	}
	file.applyDefaults()

	return fromNetworkSchema(file)
}

func fromNetworkSchema(file networkFileSchema) (*domain.Network, error) {
	hosts := make([]domain.Host, 0, len(file.Hosts))
	for i, entry := range file.Hosts {
		address := strings.TrimSpace(entry.Address)
		if address == "" {
			return nil, fmt.Errorf("host %d: address is required", i)
		}

		listing := domain.NewListing()
		for _, f := range entry.Files {
			if strings.TrimSpace(f.Name) == "" {
				return nil, fmt.Errorf("host %s: file name is required", address)
			}
			if err := listing.Add(f.Name, domain.ManualReference{ID: f.Manual}); err != nil {
				return nil, fmt.Errorf("host %s: %w", address, err)
			}
		}

		hosts = append(hosts, domain.Host{
			Address:    address,
			Files:      listing,
			Hacked:     entry.Hacked,
			Position:   domain.Vec{X: entry.Position.X, Y: entry.Position.Y},
			PuzzleKind: entry.Puzzle,
		})
	}

	return domain.NewNetwork(strings.TrimSpace(file.Entry), hosts...)
}
