package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/superuser/internal/domain"
	"github.com/bnema/superuser/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidNetwork = errors.New("invalid network configuration")

type SessionOptions struct {
	Board              domain.Rect
	RiseStep           int
	WelcomeManual      string
	ScrollbackCapacity int
}

// Loader builds a Session from the configured catalogs. Puzzle and manual failures are
// fatal; a broken network degrades to an empty one.
type Loader struct {
	networks ports.NetworkRepository
	puzzles  ports.PuzzleRepository
	manuals  ports.ManualRepository
	rng      ports.Random
	logger   *zap.Logger
}

func NewLoader(networks ports.NetworkRepository, puzzles ports.PuzzleRepository, manuals ports.ManualRepository, rng ports.Random, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader{
		networks: networks,
		puzzles:  puzzles,
		manuals:  manuals,
		rng:      rng,
		logger:   logger,
	}
}

func (l *Loader) Load(ctx context.Context, opts SessionOptions) (*Session, error) {
	puzzles, manuals, err := l.loadCatalogs(ctx)
	if err != nil {
		return nil, err
	}

	network := l.loadNetwork(ctx, puzzles, manuals)

	board := NewDocumentBoard(opts.Board, opts.RiseStep)
	console := NewConsole(network, puzzles, manuals, board, l.rng, l.logger)
	if opts.ScrollbackCapacity > 0 {
		console.scrollback = NewScrollback(opts.ScrollbackCapacity)
	}

	if opts.WelcomeManual != "" {
		welcome, err := manuals.Clone(opts.WelcomeManual)
		if err != nil {
			l.logger.Warn("welcome manual unavailable", zap.String("manual", opts.WelcomeManual), zap.Error(err))
		} else {
			board.Place(welcome)
		}
	}

	l.logger.Info("session ready",
		zap.Int("hosts", network.Len()),
		zap.Int("puzzle_kinds", puzzles.Len()),
		zap.Int("manuals", len(manuals.IDs())),
	)

	return NewSession(console, board, l.logger), nil
}

// LoadNetwork returns the validated network, or an empty one when it cannot be used.
func (l *Loader) LoadNetwork(ctx context.Context) (*domain.Network, error) {
	puzzles, manuals, err := l.loadCatalogs(ctx)
	if err != nil {
		return nil, err
	}

	return l.loadNetwork(ctx, puzzles, manuals), nil
}

// loadCatalogs reads the puzzle and manual catalogs concurrently. Either failure is fatal.
func (l *Loader) loadCatalogs(ctx context.Context) (domain.PuzzleCatalog, domain.ManualCatalog, error) {
	var (
		puzzles domain.PuzzleCatalog
		manuals domain.ManualCatalog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if puzzles, err = l.puzzles.Load(gctx); err != nil {
			return fmt.Errorf("load puzzle catalog: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if manuals, err = l.manuals.Load(gctx); err != nil {
			return fmt.Errorf("load manual catalog: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.PuzzleCatalog{}, domain.ManualCatalog{}, err
	}
	return puzzles, manuals, nil
}

func (l *Loader) loadNetwork(ctx context.Context, puzzles domain.PuzzleCatalog, manuals domain.ManualCatalog) *domain.Network {
	network, err := l.networks.Load(ctx)
	if err == nil && network == nil {
		err = fmt.Errorf("%w: no network", ErrInvalidNetwork)
	}
	if err == nil {
		err = ValidateNetwork(network, puzzles, manuals)
	}
	if err != nil {
		l.logger.Error("network configuration unusable, starting with an empty network", zap.Error(err))
		return domain.EmptyNetwork()
	}

	return network
}

// ValidateNetwork checks that every locked host has a usable puzzle and that every file
// points at a known manual.
func ValidateNetwork(network *domain.Network, puzzles domain.PuzzleCatalog, manuals domain.ManualCatalog) error {
	var errs []error

	for _, host := range network.Hosts() {
		if !host.Hacked {
			if _, err := puzzles.Kind(host.PuzzleKind); err != nil {
				errs = append(errs, fmt.Errorf("host %s: %w", host.Address, err))
			}
		}

		for _, name := range host.Files.Names() {
			entry, _ := host.Files.Get(name)
			ref, ok := entry.(domain.ManualReference)
			if !ok {
				continue
			}
			if !manuals.Has(ref.ID) {
				errs = append(errs, fmt.Errorf("host %s file %s: %w: %q", host.Address, name, domain.ErrManualNotFound, ref.ID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidNetwork, errors.Join(errs...))
	}
	return nil
}
