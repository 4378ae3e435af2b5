package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSystem(t *testing.T) {
	tests := []struct {
		name    string
		system  System
		want    Platform
		wantErr bool
	}{
		{name: "x86_64 linux", system: "x86_64-linux", want: Platform{Arch: ArchX8664, OS: "linux"}},
		{name: "aarch64 darwin", system: "aarch64-darwin", want: Platform{Arch: ArchAarch64, OS: "darwin"}},
		{name: "i686 linux", system: "i686-linux", want: Platform{Arch: ArchI686, OS: "linux"}},
		{name: "unknown arch still parses", system: "riscv64-linux", want: Platform{Arch: ArchUnknown, OS: "linux"}},
		{name: "os keeps extra segments", system: "x86_64-unknown-linux-gnu", want: Platform{Arch: ArchX8664, OS: "unknown-linux-gnu"}},
		{name: "empty string", system: "", wantErr: true},
		{name: "missing os", system: "x86_64", wantErr: true},
		{name: "missing arch", system: "-linux", wantErr: true},
		{name: "trailing dash", system: "x86_64-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSystem(tt.system)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedSystem)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLibcVariantForIsTotal(t *testing.T) {
	assert.Equal(t, LibcMultiarch, LibcVariantFor(ArchX8664))
	assert.Equal(t, LibcDefault, LibcVariantFor(ArchAarch64))
	assert.Equal(t, LibcDefault, LibcVariantFor(ArchI686))
	assert.Equal(t, LibcDefault, LibcVariantFor(ArchUnknown))
	assert.Equal(t, LibcDefault, LibcVariantFor(Arch(99)))
}

func TestPackageRefLibDir(t *testing.T) {
	assert.Equal(t, "${glibc_multi}/lib", PackageRef("glibc_multi").LibDir())
}

func TestDescriptorPackagesDeduplicates(t *testing.T) {
	d := Descriptor{
		NativeBuildInputs: []PackageRef{"just", "mold"},
		BuildInputs:       []PackageRef{"glibc", "rustup", "just"},
	}

	assert.Equal(t, []PackageRef{"just", "mold", "glibc", "rustup"}, d.Packages())
}

func TestDescriptorEnvValueUnboundIsEmpty(t *testing.T) {
	d := Descriptor{Env: []EnvBinding{{Name: "GLIBC_PATH", Value: "${glibc}/lib"}}}

	assert.Equal(t, "${glibc}/lib", d.EnvValue("GLIBC_PATH"))
	assert.Empty(t, d.EnvValue("LD_LIBRARY_PATH"))
}

func TestBuildSnapshotProcessCount(t *testing.T) {
	s := BuildSnapshot{
		TakenAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Groups: []BuildGroup{
			{User: "nixbld1", PIDs: []int{101, 102}},
			{User: "nixbld2", PIDs: []int{203}},
		},
	}

	assert.Equal(t, 3, s.ProcessCount())
	assert.Equal(t, 0, BuildSnapshot{}.ProcessCount())
}
