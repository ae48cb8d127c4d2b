// Package version exposes build metadata injected at link time via ldflags.
package version

// Build metadata, overridden by the release build.
var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
