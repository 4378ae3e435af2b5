// Package version holds the build version, overridden at link time via
// -ldflags "-X .../internal/version.Version=v0.x.y".
package version

var Version = "dev"
