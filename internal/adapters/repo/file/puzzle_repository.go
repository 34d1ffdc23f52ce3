package file

import (
	"context"

	"github.com/bnema/superuser/internal/domain"
	"github.com/bnema/superuser/internal/ports"
	"github.com/spf13/viper"
)

const defaultPuzzlesFile = "puzzles.toml"

type PuzzleRepository struct {
	src source
}

var _ ports.PuzzleRepository = (*PuzzleRepository)(nil)

func NewPuzzleRepository(cfg *viper.Viper) (*PuzzleRepository, error) {
	src, err := newSource(cfg, PuzzlesPathKey, defaultPuzzlesFile)
	if err != nil {
		return nil, err
	}
	return &PuzzleRepository{src: src}, nil
}

func (r *PuzzleRepository) Load(ctx context.Context) (domain.PuzzleCatalog, error) {
	var file puzzleFileSchema
	if err := r.src.decode(ctx, &file); err != nil {
		return domain.PuzzleCatalog{}, err
	}
	if err := validateVersion("puzzles", file.Version); err != nil {
		return domain.PuzzleCatalog{}, err
	}
	file.applyDefaults()

	kinds := make([]domain.PuzzleKind, 0, len(file.Kinds))
	for _, entry := range file.Kinds {
		pairs := make([]domain.Challenge, 0, len(entry.Challenges))
		for _, challenge := range entry.Challenges {
			pairs = append(pairs, domain.Challenge{Prompt: challenge.Prompt, Answer: challenge.Answer})
		}
		kinds = append(kinds, domain.PuzzleKind{Name: entry.Name, Pairs: pairs})
	}

	return domain.NewPuzzleCatalog(kinds...)
}
