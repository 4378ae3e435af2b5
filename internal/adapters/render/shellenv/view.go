package shellenv

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avenk/nixdev-cli/internal/domain"
)

func renderView(d domain.Descriptor, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Dev shell %q for %s", d.Name, d.System)),
		s.header.Render(fmt.Sprintf("libc: %s · pinned nixpkgs: %s", d.Libc, d.Pins.Nixpkgs)),
	}

	lines = append(lines, s.section.Render(renderEnv(d, s)))
	lines = append(lines, s.section.Render(renderPackages("nativeBuildInputs", d.NativeBuildInputs, s)))
	lines = append(lines, s.section.Render(renderPackages("buildInputs", d.BuildInputs, s)))

	if hook := renderHook(d, s); hook != "" {
		lines = append(lines, s.section.Render(hook))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderEnv(d domain.Descriptor, s styles) string {
	parts := []string{s.key.Render("environment")}
	if len(d.Env) == 0 {
		parts = append(parts, s.empty.Render("  (none)"))
	}
	for _, binding := range d.Env {
		parts = append(parts, "  "+binding.Name+"="+s.value.Render(binding.Value))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderPackages(label string, refs []domain.PackageRef, s styles) string {
	parts := []string{s.key.Render(fmt.Sprintf("%s (%d)", label, len(refs)))}
	if len(refs) == 0 {
		parts = append(parts, s.empty.Render("  (none)"))
	}
	for _, ref := range refs {
		parts = append(parts, "  "+s.pkg.Render(string(ref)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHook(d domain.Descriptor, s styles) string {
	hook := strings.TrimRight(d.ShellHook, "\n")
	if hook == "" {
		return ""
	}

	parts := []string{s.key.Render("shellHook")}
	for _, line := range strings.Split(hook, "\n") {
		parts = append(parts, "  "+s.value.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
