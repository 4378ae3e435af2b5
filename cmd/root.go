package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nixdev",
		Short:         "nixdev: resolve pinned dev shells and watch Nix builds",
		Long:          "nixdev resolves declarative dev-shell descriptors (packages, environment bindings, shell hooks) against a pinned package snapshot, generates the matching flake, and watches in-flight Nix builds from the terminal.",
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

	rootCmd.AddCommand(
		newVersionCmd(),
		newResolveCmd(app),
		newShellsCmd(app),
		newHookCmd(app),
		newFlakeCmd(app),
		newWatchCmd(app),
	)

	return rootCmd
}
