package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bnema/superuser/internal/adapters/config"
	"github.com/bnema/superuser/internal/adapters/logging"
	hostsadapter "github.com/bnema/superuser/internal/adapters/render/hosts"
	manualadapter "github.com/bnema/superuser/internal/adapters/render/manual"
	"github.com/bnema/superuser/internal/adapters/render/tui"
	filerepo "github.com/bnema/superuser/internal/adapters/repo/file"
	"github.com/bnema/superuser/internal/application"
	"github.com/bnema/superuser/internal/domain"
	"github.com/bnema/superuser/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg            *viper.Viper
	logger         *zap.Logger
	loader         *application.Loader
	manuals        ports.ManualRepository
	hostsRenderer  func([]domain.Host, hostsadapter.RenderOptions) (string, error)
	manualRenderer func(domain.Manual, string, int) (string, error)
	runShell       func(context.Context, *application.Session, tui.Options, ...tea.ProgramOption) error
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.GetString(config.LogPathKey), cfg.GetString(config.LogLevelKey))
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	networks, err := filerepo.NewNetworkRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire network repository: %w", err)
	}
	puzzles, err := filerepo.NewPuzzleRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire puzzle repository: %w", err)
	}
	manuals, err := filerepo.NewManualRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire manual repository: %w", err)
	}

	return &app{
		cfg:            cfg,
		logger:         logger,
		loader:         application.NewLoader(networks, puzzles, manuals, newRandom(cfg.GetUint64(config.SeedKey)), logger),
		manuals:        manuals,
		hostsRenderer:  hostsadapter.Render,
		manualRenderer: manualadapter.Render,
		runShell:       tui.Run,
	}, nil
}

// newRandom seeds from the clock unless a fixed seed is configured.
func newRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}
