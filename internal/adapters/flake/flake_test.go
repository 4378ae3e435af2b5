package flake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avenk/nixdev-cli/internal/domain"
)

func testShell() domain.Shell {
	return domain.Shell{
		Name:       "default",
		DevTools:   []domain.PackageRef{"rustfmt", "just", "mold"},
		BaseInputs: []domain.PackageRef{"rustup", "libunwind"},
		DriverDir:  "/run/opengl-driver/lib",
		HookUnset:  []string{"CC", "CFLAGS", "CXXFLAGS"},
	}
}

func testPins() domain.Snapshot {
	return domain.Snapshot{
		Nixpkgs:    "github:NixOS/nixpkgs/nixos-24.05",
		FlakeUtils: "github:numtide/flake-utils/v1.0.0",
	}
}

func TestRenderFlakeContainsPinnedInputs(t *testing.T) {
	out, err := Render(testShell(), nil, testPins())
	require.NoError(t, err)

	assert.Contains(t, out, `nixpkgs.url = "github:NixOS/nixpkgs/nixos-24.05";`)
	assert.Contains(t, out, `flake-utils.url = "github:numtide/flake-utils/v1.0.0";`)
}

func TestRenderFlakeLibcConditional(t *testing.T) {
	out, err := Render(testShell(), nil, testPins())
	require.NoError(t, err)

	assert.Contains(t, out, "if pkgs.stdenv.hostPlatform.isx86_64 then pkgs.glibc_multi else pkgs.glibc")
	assert.Contains(t, out, `GLIBC_PATH = "${libc}/lib";`)
	assert.Contains(t, out, `LD_LIBRARY_PATH = "/run/opengl-driver/lib:" + pkgs.lib.makeLibraryPath runtimeDeps;`)
}

func TestRenderFlakePackagesAndHook(t *testing.T) {
	out, err := Render(testShell(), []domain.ShellName{"rust", "default"}, testPins())
	require.NoError(t, err)

	for _, tool := range []string{"rustfmt", "just", "mold", "rustup", "libunwind"} {
		assert.Contains(t, out, tool)
	}
	assert.Contains(t, out, "unset CC")
	assert.Contains(t, out, "unset CXXFLAGS")
	assert.Contains(t, out, "rust = default;")
	assert.Equal(t, 1, strings.Count(out, "rust = default;"), "self-alias must be skipped")
}

func TestRenderFlakeIsDeterministic(t *testing.T) {
	first, err := Render(testShell(), []domain.ShellName{"rust"}, testPins())
	require.NoError(t, err)
	second, err := Render(testShell(), []domain.ShellName{"rust"}, testPins())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
