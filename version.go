package bytereverse

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the bytereverse module.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string // from -ldflags, else the embedded vcs.revision
	BuildTime string // from -ldflags, else the embedded vcs.time
	GoVersion string
}

// GetVersionInfo returns build details.
//
// GitCommit and BuildTime can be injected at build time:
//
//	go build -ldflags="-X github.com/simonhull/bytereverse.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/bytereverse.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/reverse
//
// Without ldflags, the VCS stamp recorded by the Go toolchain is used when
// present, and "unknown" otherwise.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.GitCommit == unknown:
				info.GitCommit = s.Value
			case s.Key == "vcs.time" && info.BuildTime == unknown:
				info.BuildTime = s.Value
			}
		}
	}

	return info
}

const unknown = "unknown"

// Set via -ldflags.
var (
	gitCommit = unknown
	buildTime = unknown
)
