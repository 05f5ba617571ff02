package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/stepper/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/stepper/internal/version.Commit=abc1234"
//
// Unset values are filled from the VCS stamp in the binary's build info.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fillFromBuildInfo(debug.ReadBuildInfo())
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func fillFromBuildInfo(info *debug.BuildInfo, ok bool) {
	if !ok || info == nil {
		return
	}

	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if Commit == "" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		if dirty {
			revision += "-dirty"
		}
		Commit = revision
	}
}

// Full returns "<version> (commit: <commit>)".
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// IsDev reports whether this is an unreleased build.
func IsDev() bool {
	return Version == "dev" || strings.HasPrefix(Version, "dev-")
}
