package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avenk/nixdev-cli/internal/domain"
)

func newHookCmd(app *app) *cobra.Command {
	var (
		shellName string
		system    string
	)

	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Print the shell-entry script fragment",
		Long:  "Prints the POSIX fragment that exports the resolved environment bindings and clears deferred compiler variables. Meant for eval \"$(nixdev hook)\".",
		RunE: func(cmd *cobra.Command, _ []string) error {
			script, err := app.service.HookScript(cmd.Context(), domain.ShellName(shellName), resolveSystem(app, system))
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), script)
			return err
		},
	}

	cmd.Flags().StringVar(&shellName, "shell", "", "shell name (default shell when empty)")
	cmd.Flags().StringVar(&system, "system", "", "host system double (host system when empty)")

	return cmd
}
