package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avenk/nixdev-cli/internal/adapters/flake"
	"github.com/avenk/nixdev-cli/internal/domain"
)

func newFlakeCmd(app *app) *cobra.Command {
	var (
		shellName  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "flake",
		Short: "Generate the flake.nix for a configured shell",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := domain.ShellName(shellName)
			if name == "" {
				name = domain.DefaultShellName
			}

			shell, err := app.repo.GetByName(cmd.Context(), name)
			if err != nil {
				return fmt.Errorf("load shell %q: %w", name, err)
			}

			pins, err := app.repo.Pins(cmd.Context())
			if err != nil {
				return fmt.Errorf("load pinned inputs: %w", err)
			}

			aliases, err := app.repo.Aliases(cmd.Context())
			if err != nil {
				return fmt.Errorf("load shell aliases: %w", err)
			}

			var aliasNames []domain.ShellName
			for alias, target := range aliases {
				if target == shell.Name {
					aliasNames = append(aliasNames, alias)
				}
			}

			rendered, err := flake.Render(shell, aliasNames, pins)
			if err != nil {
				return err
			}

			if outputPath == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
				return err
			}

			if err := os.WriteFile(outputPath, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outputPath, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&shellName, "shell", "", "shell name (default shell when empty)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the flake to a file instead of stdout")

	return cmd
}
