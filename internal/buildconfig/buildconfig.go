package buildconfig

import (
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/Harshitk-cp/galois/internal/buildconfig.version=..."
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Version returns the build version. Untagged builds fall back to the
// module version recorded by the Go toolchain, if any.
func Version() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

// Commit returns the git commit hash.
func Commit() string {
	return commit
}

// VersionInfo is served on /version.
func VersionInfo() map[string]string {
	return map[string]string{
		"version":    Version(),
		"commit":     commit,
		"build_date": buildDate,
		"go_version": runtime.Version(),
	}
}
