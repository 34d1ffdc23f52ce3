package file

import (
	"context"
	"strings"

	"github.com/bnema/superuser/internal/domain"
	"github.com/bnema/superuser/internal/ports"
	"github.com/spf13/viper"
)

const (
	defaultManualsFile = "manuals.toml"
	defaultManualColor = "230"
)

type ManualRepository struct {
	src source
}

var _ ports.ManualRepository = (*ManualRepository)(nil)

func NewManualRepository(cfg *viper.Viper) (*ManualRepository, error) {
	src, err := newSource(cfg, ManualsPathKey, defaultManualsFile)
	if err != nil {
		return nil, err
	}
	return &ManualRepository{src: src}, nil
}

func (r *ManualRepository) Load(ctx context.Context) (domain.ManualCatalog, error) {
	var file manualFileSchema
	if err := r.src.decode(ctx, &file); err != nil {
		return domain.ManualCatalog{}, err
	}
	if err := validateVersion("manuals", file.Version); err != nil {
		return domain.ManualCatalog{}, err
	}
	file.applyDefaults()

	manuals := make([]domain.Manual, 0, len(file.Manuals))
	for _, entry := range file.Manuals {
		color := strings.TrimSpace(entry.Color)
		if color == "" {
			color = defaultManualColor
		}

		manuals = append(manuals, domain.Manual{
			ID:    strings.TrimSpace(entry.ID),
			Title: entry.Title,
			Size:  domain.Vec{X: entry.Width, Y: entry.Height},
			Body:  strings.TrimRight(entry.Body, "\n"),
			Color: color,
		})
	}

	return domain.NewManualCatalog(manuals...)
}
