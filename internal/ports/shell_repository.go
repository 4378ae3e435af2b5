package ports

import (
	"context"

	"github.com/avenk/nixdev-cli/internal/domain"
)

// ShellRepository loads and stores declarative shell definitions plus the
// pinned input snapshot they resolve against. Aliases resolve through
// GetByName transparently.
type ShellRepository interface {
	GetByName(ctx context.Context, name domain.ShellName) (domain.Shell, error)
	List(ctx context.Context) ([]domain.Shell, error)
	Aliases(ctx context.Context) (map[domain.ShellName]domain.ShellName, error)
	Save(ctx context.Context, shell domain.Shell) error
	Pins(ctx context.Context) (domain.Snapshot, error)
}
