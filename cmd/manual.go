package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/bnema/superuser/internal/domain"
	"github.com/spf13/cobra"
)

const defaultManualWidth = 80

func newManualCmd(app *app) *cobra.Command {
	manualCmd := &cobra.Command{
		Use:   "manual",
		Short: "Browse manual pages",
	}

	manualCmd.AddCommand(
		newManualListCmd(app),
		newManualShowCmd(app),
	)

	return manualCmd
}

func newManualListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List manual pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.manuals.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load manual catalog: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, id := range catalog.IDs() {
				m, _ := catalog.Get(id)
				if _, err := fmt.Fprintf(w, "%s\t%s\t%dx%d\n", m.ID, m.Title, m.Size.X, m.Size.Y); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}

func newManualShowCmd(app *app) *cobra.Command {
	var (
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render a manual page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.manuals.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load manual catalog: %w", err)
			}

			m, ok := catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("manual %q: %w", args[0], domain.ErrManualNotFound)
			}

			rendered, err := app.manualRenderer(m, style, width)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&style, "style", "notty", "glamour style: dark, light or notty")
	cmd.Flags().IntVar(&width, "width", defaultManualWidth, "Wrap width")
	return cmd
}
