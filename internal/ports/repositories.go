package ports

import (
	"context"

	"github.com/bnema/superuser/internal/domain"
)

type NetworkRepository interface {
	Load(ctx context.Context) (*domain.Network, error)
}

type PuzzleRepository interface {
	Load(ctx context.Context) (domain.PuzzleCatalog, error)
}

type ManualRepository interface {
	Load(ctx context.Context) (domain.ManualCatalog, error)
}
