package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newShellsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "shells",
		Short: "List configured dev shells and their aliases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := app.service.ListShells(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}

			for _, summary := range summaries {
				line := fmt.Sprintf("%s  (%d tools, %d runtime deps)", summary.Name, summary.DevTools, summary.RuntimeDeps)
				if len(summary.Aliases) > 0 {
					aliases := make([]string, len(summary.Aliases))
					for i, alias := range summary.Aliases {
						aliases[i] = string(alias)
					}
					line += "  aliases: " + strings.Join(aliases, ", ")
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")

	return cmd
}
