package domain

// PackageRef names an attribute in the pinned package registry snapshot.
// The ref is never resolved to a store path here; path-valued outputs use
// the evaluator's interpolation form.
type PackageRef string

// LibDir is the interpolated library directory of the package's output.
func (p PackageRef) LibDir() string {
	return "${" + string(p) + "}/lib"
}

type LibcVariant int

const (
	LibcDefault LibcVariant = iota
	LibcMultiarch
)

const (
	libcDefaultRef   PackageRef = "glibc"
	libcMultiarchRef PackageRef = "glibc_multi"
)

// LibcVariantFor is total over Arch: x86_64 hosts take the multiarch
// build (32-bit and 64-bit execution), everything else the default.
func LibcVariantFor(arch Arch) LibcVariant {
	switch arch {
	case ArchX8664:
		return LibcMultiarch
	case ArchAarch64, ArchI686, ArchUnknown:
		return LibcDefault
	default:
		return LibcDefault
	}
}

func (v LibcVariant) PackageRef() PackageRef {
	if v == LibcMultiarch {
		return libcMultiarchRef
	}
	return libcDefaultRef
}

// FlakeRef is a pinned upstream input reference, e.g.
// "github:NixOS/nixpkgs/nixos-24.05".
type FlakeRef string

// Snapshot pins the upstream inputs a resolution is evaluated against.
type Snapshot struct {
	Nixpkgs    FlakeRef
	FlakeUtils FlakeRef
}
