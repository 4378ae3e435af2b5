package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/avenk/nixdev-cli/internal/domain"
	"github.com/avenk/nixdev-cli/internal/ports"
)

type Service struct {
	repo  ports.ShellRepository
	clock ports.Clock
}

func NewService(repo ports.ShellRepository, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		repo:  repo,
		clock: clock,
	}
}

// ResolveShell loads one shell definition and evaluates it for the given
// host system. An empty name resolves the default shell.
func (s *Service) ResolveShell(ctx context.Context, name domain.ShellName, sys domain.System) (domain.Descriptor, error) {
	if name == "" {
		name = domain.DefaultShellName
	}

	shell, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return domain.Descriptor{}, fmt.Errorf("load shell %q: %w", name, err)
	}

	pins, err := s.repo.Pins(ctx)
	if err != nil {
		return domain.Descriptor{}, fmt.Errorf("load pinned inputs: %w", err)
	}

	descriptor, err := domain.Resolve(shell, sys, pins)
	if err != nil {
		return domain.Descriptor{}, fmt.Errorf("resolve shell %q for %s: %w", name, sys, err)
	}

	return descriptor, nil
}

type ShellSummary struct {
	Name        domain.ShellName
	Aliases     []domain.ShellName
	DevTools    int
	RuntimeDeps int
}

// ListShells returns configured shells with their aliases folded in,
// sorted by name.
func (s *Service) ListShells(ctx context.Context) ([]ShellSummary, error) {
	shells, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shells: %w", err)
	}

	aliases, err := s.repo.Aliases(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shell aliases: %w", err)
	}

	aliasesByTarget := make(map[domain.ShellName][]domain.ShellName, len(aliases))
	for alias, target := range aliases {
		aliasesByTarget[target] = append(aliasesByTarget[target], alias)
	}

	summaries := make([]ShellSummary, 0, len(shells))
	for _, shell := range shells {
		names := aliasesByTarget[shell.Name]
		sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

		summaries = append(summaries, ShellSummary{
			Name:        shell.Name,
			Aliases:     names,
			DevTools:    len(shell.DevTools),
			RuntimeDeps: len(shell.RuntimeDeps),
		})
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })

	return summaries, nil
}

// HookScript renders the POSIX fragment for `eval "$(nixdev hook)"`:
// exports for every env binding, then the shell hook itself. Values are
// single-quoted so interpolation forms like ${glibc} reach the
// environment verbatim instead of being expanded by the invoking shell.
func (s *Service) HookScript(ctx context.Context, name domain.ShellName, sys domain.System) (string, error) {
	descriptor, err := s.ResolveShell(ctx, name, sys)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, binding := range descriptor.Env {
		sb.WriteString("export ")
		sb.WriteString(binding.Name)
		sb.WriteString("=")
		sb.WriteString(shellQuote(binding.Value))
		sb.WriteString("\n")
	}
	sb.WriteString(descriptor.ShellHook)

	return sb.String(), nil
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
