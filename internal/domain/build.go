package domain

import "time"

// BuildGroup is one in-flight Nix build: the sandbox user running it, the
// derivation output path it is producing, and its live process IDs.
type BuildGroup struct {
	User    string
	OutPath string
	PIDs    []int

	// Detail is the raw per-user process listing shown under the group
	// heading, one process per line.
	Detail []string
}

// BuildSnapshot is everything the watcher learned in one scan. Groups are
// ordered by user so consecutive identical scans render identically.
type BuildSnapshot struct {
	TakenAt time.Time
	Groups  []BuildGroup
}

func (s BuildSnapshot) ProcessCount() int {
	total := 0
	for _, group := range s.Groups {
		total += len(group.PIDs)
	}
	return total
}
