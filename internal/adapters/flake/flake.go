// Package flake renders a configured shell back into a flake.nix, so the
// declarative store round-trips to the artifact the evaluator consumes.
// The libc conditional is emitted in nix itself, keeping the generated
// flake valid for every system the evaluator supports.
package flake

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/avenk/nixdev-cli/internal/domain"
)

//go:embed flake.tmpl
var flakeTemplate string

var tmpl = template.Must(template.New("flake").Parse(flakeTemplate))

type params struct {
	Description string
	Nixpkgs     string
	FlakeUtils  string
	ShellName   string
	Aliases     []string
	DevTools    []string
	BaseInputs  []string
	RuntimeDeps []string
	DriverDir   string
	HookUnset   []string
}

func Render(shell domain.Shell, aliases []domain.ShellName, pins domain.Snapshot) (string, error) {
	aliasNames := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		if alias == shell.Name {
			continue
		}
		aliasNames = append(aliasNames, string(alias))
	}
	sort.Strings(aliasNames)

	p := params{
		Description: fmt.Sprintf("%q dev shell (generated by nixdev)", shell.Name),
		Nixpkgs:     string(pins.Nixpkgs),
		FlakeUtils:  string(pins.FlakeUtils),
		ShellName:   string(shell.Name),
		Aliases:     aliasNames,
		DevTools:    refNames(shell.DevTools),
		BaseInputs:  refNames(shell.BaseInputs),
		RuntimeDeps: refNames(shell.RuntimeDeps),
		DriverDir:   shell.DriverDir,
		HookUnset:   append([]string(nil), shell.HookUnset...),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, p); err != nil {
		return "", fmt.Errorf("render flake template: %w", err)
	}

	return sb.String(), nil
}

func refNames(refs []domain.PackageRef) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, string(ref))
	}
	return names
}
