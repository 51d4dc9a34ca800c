package popmeter

import "runtime"

// LibraryVersion is the semantic version of the popmeter library.
// (Version is taken: it names the tag layout generation.)
const LibraryVersion = "0.1.0"

// BuildInfo contains detailed build information.
type BuildInfo struct {
	// Version is the semantic version (e.g., "0.1.0")
	Version string
	// GitCommit is the git commit hash (set via ldflags at build time)
	GitCommit string
	// BuildTime is the build timestamp (set via ldflags at build time)
	BuildTime string
	// GoVersion is the Go version used to build
	GoVersion string
}

// GetBuildInfo returns detailed build information
//
// GitCommit, BuildTime, and GoVersion are populated at build time via -ldflags.
// If not set, they will show as "unknown".
//
// Example build command:
//
//	go build -ldflags="-X github.com/simonhull/popmeter.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/popmeter.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ) \
//	  -X github.com/simonhull/popmeter.goVersion=$(go version | awk '{print $3}')"
func GetBuildInfo() BuildInfo {
	goVer := goVersion
	if goVer == "unknown" {
		// Fallback to runtime if not set via ldflags
		goVer = runtime.Version()
	}

	return BuildInfo{
		Version:   LibraryVersion,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVer,
	}
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)
