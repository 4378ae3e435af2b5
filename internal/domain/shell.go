package domain

// ShellName identifies a configured dev shell.
type ShellName string

const DefaultShellName ShellName = "default"

// Shell is the declarative definition of one dev shell: everything needed
// to resolve a Descriptor except the host system, which arrives at
// resolution time.
type Shell struct {
	Name ShellName

	// DevTools are build-time tools (linters, profilers, auditors,
	// formatters, build runners). They appear in both package lists of
	// the resolved descriptor and are never dropped conditionally.
	DevTools []PackageRef

	// BaseInputs are arch-independent build inputs placed next to the
	// selected libc, typically the toolchain manager and libunwind.
	BaseInputs []PackageRef

	// RuntimeDeps are packages whose shared libraries must be locatable
	// at run time. Normally empty; the library search path still ends
	// with the separator so entries can be appended later.
	RuntimeDeps []PackageRef

	// DriverDir is the fixed head of the library search path.
	DriverDir string

	// HookUnset lists environment variables the shell hook clears so the
	// toolchain manager, not the evaluator, picks compilers and flags.
	HookUnset []string
}
