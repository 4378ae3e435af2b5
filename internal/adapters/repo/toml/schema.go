package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int               `toml:"version"`
	Inputs  inputsSchema      `toml:"inputs"`
	Shells  []shellSchema     `toml:"shells"`
	Aliases map[string]string `toml:"aliases,omitempty"`
}

type inputsSchema struct {
	Nixpkgs    string `toml:"nixpkgs"`
	FlakeUtils string `toml:"flake-utils"`
}

type shellSchema struct {
	Name        string   `toml:"name"`
	DriverDir   string   `toml:"driver_dir"`
	DevTools    []string `toml:"dev_tools"`
	BaseInputs  []string `toml:"base_inputs"`
	RuntimeDeps []string `toml:"runtime_deps,omitempty"`
	HookUnset   []string `toml:"hook_unset"`
}

// applyDefaults seeds the file with the stock rust shell (and its alias)
// when nothing is configured yet, mirroring the environment the tool was
// born with.
func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Inputs.Nixpkgs == "" {
		s.Inputs.Nixpkgs = "github:NixOS/nixpkgs/nixos-24.05"
	}
	if s.Inputs.FlakeUtils == "" {
		s.Inputs.FlakeUtils = "github:numtide/flake-utils/v1.0.0"
	}
	if len(s.Shells) == 0 {
		s.Shells = []shellSchema{defaultShellSchema()}
		if s.Aliases == nil {
			s.Aliases = map[string]string{"rust": "default"}
		}
	}
}

func defaultShellSchema() shellSchema {
	return shellSchema{
		Name:      "default",
		DriverDir: "/run/opengl-driver/lib",
		DevTools: []string{
			"cargo-audit", "cargo-deny", "cargo-flamegraph", "cargo-outdated",
			"rustfmt", "just", "cross", "gnumake", "mold",
		},
		BaseInputs: []string{"rustup", "libunwind"},
		HookUnset:  []string{"CC", "CFLAGS", "CXXFLAGS"},
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported shells schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
