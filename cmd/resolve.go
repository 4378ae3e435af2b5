package cmd

import (
	"encoding/json"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"github.com/avenk/nixdev-cli/internal/adapters/render/shellenv"
	"github.com/avenk/nixdev-cli/internal/domain"
)

func newResolveCmd(app *app) *cobra.Command {
	var (
		shellName string
		system    string
		format    string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a dev shell into its derivation descriptor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			descriptor, err := app.service.ResolveShell(cmd.Context(), domain.ShellName(shellName), resolveSystem(app, system))
			if err != nil {
				return err
			}

			if asJSON {
				format = "json"
			}

			return writeDescriptor(cmd, descriptor, format)
		},
	}

	cmd.Flags().StringVar(&shellName, "shell", "", "shell name (default shell when empty)")
	cmd.Flags().StringVar(&system, "system", "", "host system double, e.g. x86_64-linux (host system when empty)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json, toml or yaml")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON (shorthand for --format json)")

	return cmd
}

func resolveSystem(app *app, flagValue string) domain.System {
	if flagValue != "" {
		return domain.System(flagValue)
	}
	return app.hostSystem
}

// descriptorOutput is the serialization shape shared by the structured
// output formats, so json, toml and yaml stay field-compatible.
type descriptorOutput struct {
	Name              string            `json:"name" toml:"name" yaml:"name"`
	System            string            `json:"system" toml:"system" yaml:"system"`
	Libc              string            `json:"libc" toml:"libc" yaml:"libc"`
	Nixpkgs           string            `json:"nixpkgs" toml:"nixpkgs" yaml:"nixpkgs"`
	FlakeUtils        string            `json:"flake_utils" toml:"flake_utils" yaml:"flake_utils"`
	NativeBuildInputs []string          `json:"native_build_inputs" toml:"native_build_inputs" yaml:"native_build_inputs"`
	BuildInputs       []string          `json:"build_inputs" toml:"build_inputs" yaml:"build_inputs"`
	RuntimeDeps       []string          `json:"runtime_deps" toml:"runtime_deps" yaml:"runtime_deps"`
	Env               map[string]string `json:"env" toml:"env" yaml:"env"`
	ShellHook         string            `json:"shell_hook" toml:"shell_hook" yaml:"shell_hook"`
}

func toOutput(d domain.Descriptor) descriptorOutput {
	env := make(map[string]string, len(d.Env))
	for _, binding := range d.Env {
		env[binding.Name] = binding.Value
	}

	return descriptorOutput{
		Name:              string(d.Name),
		System:            string(d.System),
		Libc:              string(d.Libc),
		Nixpkgs:           string(d.Pins.Nixpkgs),
		FlakeUtils:        string(d.Pins.FlakeUtils),
		NativeBuildInputs: refStrings(d.NativeBuildInputs),
		BuildInputs:       refStrings(d.BuildInputs),
		RuntimeDeps:       refStrings(d.RuntimeDeps),
		Env:               env,
		ShellHook:         d.ShellHook,
	}
}

func writeDescriptor(cmd *cobra.Command, descriptor domain.Descriptor, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case "text":
		rendered, err := shellenv.Render(descriptor)
		if err != nil {
			return fmt.Errorf("render descriptor: %w", err)
		}
		_, err = fmt.Fprintln(out, rendered)
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toOutput(descriptor))
	case "toml":
		return toml.NewEncoder(out).Encode(toOutput(descriptor))
	case "yaml":
		data, err := yaml.Marshal(toOutput(descriptor))
		if err != nil {
			return fmt.Errorf("encode descriptor as yaml: %w", err)
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func refStrings(refs []domain.PackageRef) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, string(ref))
	}
	return out
}
