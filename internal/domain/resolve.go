package domain

import "strings"

const (
	EnvLibraryPath = "LD_LIBRARY_PATH"
	EnvGlibcPath   = "GLIBC_PATH"
)

// Resolve evaluates a shell definition for one host system against a
// pinned snapshot. It is a pure function: no I/O, no clock, and identical
// inputs produce identical descriptors.
func Resolve(shell Shell, sys System, pins Snapshot) (Descriptor, error) {
	platform, err := ParseSystem(sys)
	if err != nil {
		return Descriptor{}, err
	}

	libc := LibcVariantFor(platform.Arch).PackageRef()

	native := make([]PackageRef, 0, len(shell.DevTools)+len(shell.RuntimeDeps))
	native = append(native, shell.DevTools...)
	native = append(native, shell.RuntimeDeps...)

	build := make([]PackageRef, 0, 1+len(shell.BaseInputs)+len(shell.DevTools))
	build = append(build, libc)
	build = append(build, shell.BaseInputs...)
	build = append(build, shell.DevTools...)

	return Descriptor{
		Name:              shell.Name,
		System:            sys,
		Libc:              libc,
		Pins:              pins,
		NativeBuildInputs: native,
		BuildInputs:       build,
		RuntimeDeps:       append([]PackageRef(nil), shell.RuntimeDeps...),
		Env: []EnvBinding{
			{Name: EnvLibraryPath, Value: libraryPath(shell.DriverDir, shell.RuntimeDeps)},
			{Name: EnvGlibcPath, Value: libc.LibDir()},
		},
		ShellHook: hookScript(shell.HookUnset),
	}, nil
}

// libraryPath always starts with the driver dir; the trailing separator
// stays even when no runtime deps contribute entries.
func libraryPath(driverDir string, runtimeDeps []PackageRef) string {
	libDirs := make([]string, 0, len(runtimeDeps))
	for _, dep := range runtimeDeps {
		libDirs = append(libDirs, dep.LibDir())
	}

	return driverDir + ":" + strings.Join(libDirs, ":")
}

func hookScript(unset []string) string {
	if len(unset) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, name := range unset {
		sb.WriteString("unset ")
		sb.WriteString(name)
		sb.WriteString("\n")
	}

	return sb.String()
}
