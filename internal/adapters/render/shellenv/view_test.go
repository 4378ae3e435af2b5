package shellenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avenk/nixdev-cli/internal/domain"
)

func testDescriptor(t *testing.T) domain.Descriptor {
	t.Helper()

	shell := domain.Shell{
		Name:       "default",
		DevTools:   []domain.PackageRef{"rustfmt", "just"},
		BaseInputs: []domain.PackageRef{"rustup", "libunwind"},
		DriverDir:  "/run/opengl-driver/lib",
		HookUnset:  []string{"CC", "CFLAGS", "CXXFLAGS"},
	}
	desc, err := domain.Resolve(shell, "x86_64-linux", domain.Snapshot{
		Nixpkgs: "github:NixOS/nixpkgs/nixos-24.05",
	})
	require.NoError(t, err)
	return desc
}

func TestRenderViewIncludesAllSections(t *testing.T) {
	out := renderView(testDescriptor(t), newStyles())

	assert.Contains(t, out, "Dev shell \"default\" for x86_64-linux")
	assert.Contains(t, out, "glibc_multi")
	assert.Contains(t, out, "LD_LIBRARY_PATH=")
	assert.Contains(t, out, "/run/opengl-driver/lib:")
	assert.Contains(t, out, "nativeBuildInputs (2)")
	assert.Contains(t, out, "buildInputs (5)")
	assert.Contains(t, out, "unset CC")
}

func TestRenderViewEmptyEnvAndPackages(t *testing.T) {
	out := renderView(domain.Descriptor{Name: "bare", System: "aarch64-linux"}, newStyles())

	assert.Contains(t, out, "(none)")
	assert.NotContains(t, out, "shellHook")
}

func TestRenderThroughProgram(t *testing.T) {
	out, err := Render(testDescriptor(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Dev shell \"default\"")
}
