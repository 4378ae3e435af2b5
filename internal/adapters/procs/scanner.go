package procs

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/avenk/nixdev-cli/internal/domain"
	"github.com/avenk/nixdev-cli/internal/ports"
)

const unknownOutPath = "(unknown)"

// Scanner discovers running Nix builds by inspecting the processes of the
// build sandbox users (members of the nixbld group, by default).
type Scanner struct {
	groupName string
	groupFile string
	procRoot  string
	tmpDir    string

	runPS func(ctx context.Context, args ...string) (string, error)
}

var _ ports.BuildScanner = (*Scanner)(nil)

func NewScanner(groupName string) *Scanner {
	if groupName == "" {
		groupName = "nixbld"
	}

	return &Scanner{
		groupName: groupName,
		groupFile: "/etc/group",
		procRoot:  "/proc",
		tmpDir:    os.TempDir(),
		runPS:     runPS,
	}
}

func (s *Scanner) Snapshot(ctx context.Context) (domain.BuildSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.BuildSnapshot{}, err
	}

	users, err := s.buildUsers()
	if err != nil {
		return domain.BuildSnapshot{}, err
	}
	if len(users) == 0 {
		return domain.BuildSnapshot{}, nil
	}

	listing, err := s.runPS(ctx, "-o", "user=,pid=", "-u", strings.Join(users, ","))
	if err != nil {
		// ps exits non-zero when no process matches any of the users.
		return domain.BuildSnapshot{}, nil
	}

	var snapshot domain.BuildSnapshot
	for buildUser, pids := range parseUserPIDs(listing) {
		if len(pids) == 0 {
			continue
		}

		group := domain.BuildGroup{
			User:    buildUser,
			OutPath: s.outPath(buildUser, pids[0]),
			PIDs:    pids,
		}

		if detail, err := s.runPS(ctx, "-o", "uid,pid,ppid,stime,time,command", "-U", buildUser); err == nil {
			group.Detail = strings.Split(strings.TrimRight(detail, "\n"), "\n")
		}

		snapshot.Groups = append(snapshot.Groups, group)
	}

	return snapshot, nil
}

func (s *Scanner) buildUsers() ([]string, error) {
	data, err := os.ReadFile(s.groupFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.groupFile, err)
	}

	return parseGroupMembers(string(data), s.groupName), nil
}

// outPath recovers the derivation output path for a build: the builder's
// environ is authoritative, the sandbox temp dir's env-vars file is the
// fallback for setups where /proc is not readable.
func (s *Scanner) outPath(buildUser string, pid int) string {
	if data, err := os.ReadFile(filepath.Join(s.procRoot, strconv.Itoa(pid), "environ")); err == nil {
		if path := outPathFromEnviron(data); path != "" {
			return path
		}
	}

	buildDir, err := s.newestBuildDir(buildUser)
	if err != nil || buildDir == "" {
		return unknownOutPath
	}

	if content, err := os.ReadFile(filepath.Join(buildDir, "env-vars")); err == nil {
		if path, ok := outPathFromEnvVars(string(content)); ok {
			return path
		}
	}

	return buildDir
}

// newestBuildDir finds the most recently changed top-level temp entry
// owned by the build user.
func (s *Scanner) newestBuildDir(buildUser string) (string, error) {
	account, err := user.Lookup(buildUser)
	if err != nil {
		return "", fmt.Errorf("look up build user %q: %w", buildUser, err)
	}

	uid, err := strconv.ParseUint(account.Uid, 10, 32)
	if err != nil {
		return "", fmt.Errorf("parse uid for %q: %w", buildUser, err)
	}

	entries, err := os.ReadDir(s.tmpDir)
	if err != nil {
		return "", fmt.Errorf("read temp dir: %w", err)
	}

	var (
		newest     string
		newestTime time.Time
	)
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}

		owner, ok := ownerUID(info)
		if !ok || owner != uint32(uid) {
			continue
		}

		if changed := changeTime(info); changed.After(newestTime) {
			newestTime = changed
			newest = filepath.Join(s.tmpDir, entry.Name())
		}
	}

	return newest, nil
}

func runPS(ctx context.Context, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, "ps", args...).Output()
	if err != nil {
		return "", fmt.Errorf("ps %s: %w", strings.Join(args, " "), err)
	}

	return string(out), nil
}
