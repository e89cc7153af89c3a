// Package version provides version information for the headerdump CLI tool.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are populated at build time using -ldflags.
// Example:
// go build -ldflags "-X 'headerdump/pkg/version.Version=1.2.3' -X 'headerdump/pkg/version.Commit=abcdefg' -X 'headerdump/pkg/version.BuildTime=2026-10-19T15:04:05Z'"
// Values left at their defaults are filled from the module build info, so a
// plain `go install` still reports the module version and VCS stamp.
var (
	Version   = defaultVersion
	Commit    = defaultCommit
	BuildTime = defaultBuildTime
)

const (
	defaultVersion   = "dev"
	defaultCommit    = "none"
	defaultBuildTime = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string // Semantic version or module version
	GitCommit string // Short VCS revision, "-dirty" when built from a modified tree
	BuildTime string // ldflags timestamp or VCS commit time
	GoVersion string
	Platform  string // OS and architecture
}

// Get returns the current version information.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = withBuildInfo(info, bi)
	}
	return info
}

// withBuildInfo fills the fields ldflags left at their defaults.
func withBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == defaultVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; info.GitCommit == defaultCommit && rev != "" {
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if settings["vcs.modified"] == "true" {
			rev += "-dirty"
		}
		info.GitCommit = rev
	}
	if t := settings["vcs.time"]; info.BuildTime == defaultBuildTime && t != "" {
		info.BuildTime = t
	}
	return info
}

// String renders the version on one line, e.g.
// headerdump version 1.2.3 (commit: abcdefg) built at 2026-10-19T15:04:05Z with go1.23.1 on linux/amd64
func (i Info) String() string {
	return fmt.Sprintf(
		"headerdump version %s (commit: %s) built at %s with %s on %s",
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}
