package domain

import "strings"

// System is a nix host system identifier ("double"), e.g. "x86_64-linux"
// or "aarch64-darwin". It is treated as opaque outside this package.
type System string

type Arch int

const (
	ArchUnknown Arch = iota
	ArchX8664
	ArchAarch64
	ArchI686
)

type Platform struct {
	Arch Arch
	OS   string
}

// ParseSystem splits a system double into its platform parts. The arch
// segment maps onto the Arch enum; unrecognized arches parse as
// ArchUnknown rather than failing, since libc selection only needs to
// distinguish x86_64 from everything else.
func ParseSystem(sys System) (Platform, error) {
	raw := string(sys)
	archPart, osPart, ok := strings.Cut(raw, "-")
	if !ok || archPart == "" || osPart == "" {
		return Platform{}, ErrUnsupportedSystem
	}

	return Platform{
		Arch: parseArch(archPart),
		OS:   osPart,
	}, nil
}

func parseArch(raw string) Arch {
	switch raw {
	case "x86_64":
		return ArchX8664
	case "aarch64":
		return ArchAarch64
	case "i686":
		return ArchI686
	default:
		return ArchUnknown
	}
}

func (a Arch) String() string {
	switch a {
	case ArchX8664:
		return "x86_64"
	case ArchAarch64:
		return "aarch64"
	case ArchI686:
		return "i686"
	case ArchUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}
