package ports

import (
	"context"

	"github.com/avenk/nixdev-cli/internal/domain"
)

// BuildScanner observes in-flight Nix builds on the host.
type BuildScanner interface {
	Snapshot(ctx context.Context) (domain.BuildSnapshot, error)
}
