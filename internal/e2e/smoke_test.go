package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeShellsFixture(home))

	stdout, stderr, err := runNixdev(t, binaryPath, home, "resolve", "--system", "x86_64-linux", "--format", "json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "\"libc\": \"glibc_multi\"")

	stdout, stderr, err = runNixdev(t, binaryPath, home, "shells")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "default")

	stdout, stderr, err = runNixdev(t, binaryPath, home, "flake")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "mkShell")

	stdout, stderr, err = runNixdev(t, binaryPath, home, "hook", "--system", "aarch64-linux")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "unset CC")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "nixdev-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/nixdev")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build nixdev binary: %s", string(output))
	return binaryPath
}

func runNixdev(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeShellsFixture(home string) error {
	configDir := filepath.Join(home, ".nixdev")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	shells := `version = 1

[inputs]
nixpkgs = "github:NixOS/nixpkgs/nixos-24.05"
flake-utils = "github:numtide/flake-utils/v1.0.0"

[[shells]]
name = "default"
driver_dir = "/run/opengl-driver/lib"
dev_tools = ["cargo-audit", "rustfmt", "just", "mold"]
base_inputs = ["rustup", "libunwind"]
hook_unset = ["CC", "CFLAGS", "CXXFLAGS"]

[aliases]
rust = "default"
`

	return os.WriteFile(filepath.Join(configDir, "shells.toml"), []byte(shells), 0o600)
}
