package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("Version should never be empty")
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q; want %q", info.GoVersion, runtime.Version())
	}
	if want := runtime.GOOS + "/" + runtime.GOARCH; info.Platform != want {
		t.Errorf("Platform = %q; want %q", info.Platform, want)
	}
}

func TestWithBuildInfo(t *testing.T) {
	defaults := Info{Version: defaultVersion, GitCommit: defaultCommit, BuildTime: defaultBuildTime}
	stamped := &debug.BuildInfo{
		Main: debug.Module{Path: "headerdump", Version: "v1.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "false"},
		},
	}

	tests := []struct {
		name string
		info Info
		bi   *debug.BuildInfo
		want Info
	}{
		{
			name: "defaults filled from build info",
			info: defaults,
			bi:   stamped,
			want: Info{Version: "v1.4.0", GitCommit: "0123456", BuildTime: "2026-10-01T12:00:00Z"},
		},
		{
			name: "ldflags values win",
			info: Info{Version: "1.2.3", GitCommit: "abcdefg", BuildTime: "2026-10-19T15:04:05Z"},
			bi:   stamped,
			want: Info{Version: "1.2.3", GitCommit: "abcdefg", BuildTime: "2026-10-19T15:04:05Z"},
		},
		{
			name: "devel module keeps dev version",
			info: defaults,
			bi:   &debug.BuildInfo{Main: debug.Module{Path: "headerdump", Version: "(devel)"}},
			want: defaults,
		},
		{
			name: "modified tree marks commit dirty",
			info: defaults,
			bi: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc12"},
				{Key: "vcs.modified", Value: "true"},
			}},
			want: Info{Version: defaultVersion, GitCommit: "abc12-dirty", BuildTime: defaultBuildTime},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withBuildInfo(tt.info, tt.bi); got != tt.want {
				t.Errorf("withBuildInfo() = %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.2.3",
		GitCommit: "abcdefg",
		BuildTime: "2026-10-19T15:04:05Z",
		GoVersion: "go1.23.1",
		Platform:  "linux/amd64",
	}

	got := info.String()
	want := "headerdump version 1.2.3 (commit: abcdefg) built at 2026-10-19T15:04:05Z with go1.23.1 on linux/amd64"
	if got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	if !strings.HasPrefix(got, "headerdump version ") {
		t.Errorf("String() should start with the program name, got %q", got)
	}
}
