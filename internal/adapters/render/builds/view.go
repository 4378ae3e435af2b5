package builds

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/avenk/nixdev-cli/internal/domain"
)

// viewLines lays out a snapshot the way the original terminal watcher
// did: a summary block, a separator, then one detail block per build
// user.
func viewLines(snapshot domain.BuildSnapshot, s styles) []string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Nix build summary (%d processes)", snapshot.ProcessCount())),
	}

	if len(snapshot.Groups) == 0 {
		lines = append(lines, s.empty.Render("    no builds running"))
		return lines
	}

	for _, group := range snapshot.Groups {
		lines = append(lines, fmt.Sprintf("    %s → %s",
			s.count.Render(fmt.Sprintf("%4d", len(group.PIDs))),
			s.path.Render(group.OutPath),
		))
	}

	lines = append(lines, "", s.separator.Render(" * * * "), "")

	for _, group := range snapshot.Groups {
		lines = append(lines, s.group.Render(fmt.Sprintf(":: (%s) → %s", group.User, group.OutPath)))
		for _, detail := range group.Detail {
			lines = append(lines, s.detail.Render(detail))
		}
	}

	return lines
}

// clip fits lines into a terminal: at most height lines, each truncated
// to width runes. Non-positive dimensions leave that axis unclipped.
func clip(lines []string, width, height int) []string {
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}

	if width <= 0 {
		return lines
	}

	clipped := make([]string, len(lines))
	for i, line := range lines {
		clipped[i] = ansi.Truncate(line, width, "")
	}

	return clipped
}

func renderView(snapshot domain.BuildSnapshot, width, height int, s styles) string {
	return strings.Join(clip(viewLines(snapshot, s), width, height), "\n")
}
