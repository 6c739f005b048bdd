// Package version exposes build metadata injected with -ldflags, e.g.
//
//	-X github.com/Sumatoshi-tech/seqstats/pkg/version.Version=v0.3.0
package version

import (
	"fmt"
	"runtime/debug"
)

// Build metadata. Overridden at link time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// InitBinaryVersion fills Version and Commit from the embedded module build
// info when they were not set at link time (go install builds).
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	if Commit != "none" {
		return
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			Commit = setting.Value
		}
	}
}

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("seqstats %s (commit: %s, built: %s)", Version, Commit, Date)
}
