package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/avenk/nixdev-cli/internal/domain"
	"github.com/avenk/nixdev-cli/internal/ports"
)

type WatchService struct {
	scanner ports.BuildScanner
	clock   ports.Clock
}

func NewWatchService(scanner ports.BuildScanner, clock ports.Clock) *WatchService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &WatchService{
		scanner: scanner,
		clock:   clock,
	}
}

// Snapshot scans once and normalizes the result: groups sorted by user,
// PIDs ascending, capture time stamped.
func (s *WatchService) Snapshot(ctx context.Context) (domain.BuildSnapshot, error) {
	snapshot, err := s.scanner.Snapshot(ctx)
	if err != nil {
		return domain.BuildSnapshot{}, fmt.Errorf("scan nix builds: %w", err)
	}

	sort.Slice(snapshot.Groups, func(i, j int) bool {
		return snapshot.Groups[i].User < snapshot.Groups[j].User
	})
	for i := range snapshot.Groups {
		sort.Ints(snapshot.Groups[i].PIDs)
	}

	if snapshot.TakenAt.IsZero() {
		snapshot.TakenAt = s.clock.Now()
	}

	return snapshot, nil
}
