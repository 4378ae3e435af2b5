package domain

// EnvBinding is one environment variable assignment in a resolved shell.
// Bindings are an ordered list so serialized descriptors stay
// byte-identical across resolutions.
type EnvBinding struct {
	Name  string
	Value string
}

// Descriptor is the aggregate output of resolving a shell for a host
// system: the derivation-shaped bundle the external evaluator consumes.
type Descriptor struct {
	Name   ShellName
	System System
	Libc   PackageRef
	Pins   Snapshot

	NativeBuildInputs []PackageRef
	BuildInputs       []PackageRef
	RuntimeDeps       []PackageRef

	Env       []EnvBinding
	ShellHook string
}

// Packages is the union of both input lists, first occurrence order,
// duplicates removed.
func (d Descriptor) Packages() []PackageRef {
	seen := make(map[PackageRef]struct{}, len(d.NativeBuildInputs)+len(d.BuildInputs))
	union := make([]PackageRef, 0, len(d.NativeBuildInputs)+len(d.BuildInputs))

	for _, list := range [][]PackageRef{d.NativeBuildInputs, d.BuildInputs} {
		for _, ref := range list {
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}
			union = append(union, ref)
		}
	}

	return union
}

// EnvValue returns the bound value for name, or "" when unbound.
func (d Descriptor) EnvValue(name string) string {
	for _, binding := range d.Env {
		if binding.Name == name {
			return binding.Value
		}
	}
	return ""
}
