package cmd

import (
	"os"

	"github.com/bnema/superuser/internal/adapters/config"
	"github.com/bnema/superuser/internal/adapters/render/tui"
	"github.com/bnema/superuser/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func newPlayCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start the interactive console (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, app)
		},
	}
}

func runPlay(cmd *cobra.Command, app *app) error {
	width, height := terminalSize()

	session, err := app.loader.Load(cmd.Context(), application.SessionOptions{
		Board:         tui.BoardRegion(width, height),
		RiseStep:      app.cfg.GetInt(config.BoardStepKey),
		WelcomeManual: app.cfg.GetString(config.WelcomeKey),
	})
	if err != nil {
		return err
	}

	app.logger.Info("starting console", zap.Int("width", width), zap.Int("height", height))

	return app.runShell(cmd.Context(), session, tui.Options{Logger: app.logger},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
}

// terminalSize is only a first guess for placing the welcome page; the shell resizes the
// board once the real window size arrives.
func terminalSize() (int, int) {
	width, height, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 || height <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return width, height
}
