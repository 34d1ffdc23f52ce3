package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "superuser",
		Short:         "superuser: root every host on a make-believe network",
		Long:          "superuser is a terminal hacking puzzle. Type commands into the console, print manual pages onto the document board and answer each host's challenge until every host is rooted.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runPlay(cmd, app)
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(app),
		newHostsCmd(app),
		newManualCmd(app),
	)

	return rootCmd
}
