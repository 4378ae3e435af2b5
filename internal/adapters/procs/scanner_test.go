package procs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroupMembers(t *testing.T) {
	etcGroup := "root:x:0:\n" +
		"nixbld:x:30000:nixbld1,nixbld2,nixbld3\n" +
		"wheel:x:998:alice\n"

	assert.Equal(t, []string{"nixbld1", "nixbld2", "nixbld3"}, parseGroupMembers(etcGroup, "nixbld"))
	assert.Nil(t, parseGroupMembers(etcGroup, "missing"))
	assert.Nil(t, parseGroupMembers("nixbld:x:30000:\n", "nixbld"))
}

func TestParseUserPIDs(t *testing.T) {
	psOutput := "nixbld1   4242\n" +
		"nixbld1   4250\n" +
		"nixbld2   5001\n" +
		"garbage line without pid\n" +
		"nixbld3 notanumber\n"

	got := parseUserPIDs(psOutput)
	assert.Equal(t, []int{4242, 4250}, got["nixbld1"])
	assert.Equal(t, []int{5001}, got["nixbld2"])
	assert.NotContains(t, got, "nixbld3")
}

func TestOutPathFromEnviron(t *testing.T) {
	environ := []byte("PATH=/nix/store/bin\x00out=/nix/store/abc-hello-1.0\x00HOME=/build\x00")
	assert.Equal(t, "/nix/store/abc-hello-1.0", outPathFromEnviron(environ))

	assert.Empty(t, outPathFromEnviron([]byte("PATH=/bin\x00out=\x00")))
	assert.Empty(t, outPathFromEnviron(nil))
}

func TestOutPathFromEnvVars(t *testing.T) {
	content := "declare -x builder=\"/nix/store/bash\"\n" +
		"declare -x out=\"/nix/store/xyz-watcher-0.2\"\n"

	path, ok := outPathFromEnvVars(content)
	require.True(t, ok)
	assert.Equal(t, "/nix/store/xyz-watcher-0.2", path)

	_, ok = outPathFromEnvVars("declare -x other=\"v\"\n")
	assert.False(t, ok)
	_, ok = outPathFromEnvVars("declare -x out=\"\"\n")
	assert.False(t, ok)
}

func writeTestGroupFile(t *testing.T, members string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "group")
	require.NoError(t, os.WriteFile(path, []byte("nixbld:x:30000:"+members+"\n"), 0o644))
	return path
}

func TestSnapshotGroupsProcessesByUser(t *testing.T) {
	procRoot := t.TempDir()
	environDir := filepath.Join(procRoot, "4242")
	require.NoError(t, os.MkdirAll(environDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(environDir, "environ"),
		[]byte("out=/nix/store/abc-drv\x00"),
		0o644,
	))

	scanner := &Scanner{
		groupName: "nixbld",
		groupFile: writeTestGroupFile(t, "nixbld1,nixbld2"),
		procRoot:  procRoot,
		tmpDir:    t.TempDir(),
		runPS: func(_ context.Context, args ...string) (string, error) {
			if args[0] == "-o" && args[1] == "user=,pid=" {
				return "nixbld1 4242\nnixbld1 4243\n", nil
			}
			return "UID PID PPID STIME TIME COMMAND\n30001 4242 1 09:00 00:00:05 bash -e builder.sh\n", nil
		},
	}

	snapshot, err := scanner.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Groups, 1)
	group := snapshot.Groups[0]
	assert.Equal(t, "nixbld1", group.User)
	assert.Equal(t, "/nix/store/abc-drv", group.OutPath)
	sort.Ints(group.PIDs)
	assert.Equal(t, []int{4242, 4243}, group.PIDs)
	require.Len(t, group.Detail, 2)
	assert.Contains(t, group.Detail[1], "builder.sh")
}

func TestSnapshotNoBuildUsers(t *testing.T) {
	scanner := &Scanner{
		groupName: "nixbld",
		groupFile: writeTestGroupFile(t, ""),
		procRoot:  t.TempDir(),
		tmpDir:    t.TempDir(),
		runPS: func(_ context.Context, _ ...string) (string, error) {
			t.Fatal("ps must not run without build users")
			return "", nil
		},
	}

	snapshot, err := scanner.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Groups)
}

func TestSnapshotFallsBackToUnknownOutPath(t *testing.T) {
	scanner := &Scanner{
		groupName: "nixbld",
		groupFile: writeTestGroupFile(t, "no-such-user-zzz"),
		procRoot:  t.TempDir(),
		tmpDir:    t.TempDir(),
		runPS: func(_ context.Context, args ...string) (string, error) {
			if args[1] == "user=,pid=" {
				return "no-such-user-zzz 999999\n", nil
			}
			return "", nil
		},
	}

	snapshot, err := scanner.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Groups, 1)
	assert.Equal(t, unknownOutPath, snapshot.Groups[0].OutPath)
}
