package cmd

import (
	"encoding/json"
	"fmt"

	hostsadapter "github.com/bnema/superuser/internal/adapters/render/hosts"
	"github.com/bnema/superuser/internal/domain"
	"github.com/spf13/cobra"
)

type hostJSON struct {
	Address  string   `json:"address"`
	Hacked   bool     `json:"hacked"`
	Puzzle   string   `json:"puzzle,omitempty"`
	Files    []string `json:"files"`
	Position struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"position"`
}

func newHostsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "Show the configured network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			network, err := app.loader.LoadNetwork(cmd.Context())
			if err != nil {
				return err
			}

			return writeHostsOutput(cmd, app, network, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print hosts as JSON")
	return cmd
}

func writeHostsOutput(cmd *cobra.Command, app *app, network *domain.Network, asJSON bool) error {
	hosts := network.Hosts()

	if asJSON {
		out := make([]hostJSON, 0, len(hosts))
		for _, host := range hosts {
			entry := hostJSON{
				Address: host.Address,
				Hacked:  host.Hacked,
				Puzzle:  host.PuzzleKind,
				Files:   host.Files.Names(),
			}
			entry.Position.X = host.Position.X
			entry.Position.Y = host.Position.Y
			out = append(out, entry)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rendered, err := app.hostsRenderer(hosts, hostsadapter.RenderOptions{Entry: network.Entry()})
	if err != nil {
		return fmt.Errorf("render hosts: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
