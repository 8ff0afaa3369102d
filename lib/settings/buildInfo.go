package settings

import (
	"runtime/debug"
)

// BuildInfo reports the module version and the VCS revision baked into
// the binary. Both come back empty for plain `go run` builds.
func BuildInfo() (version string, releaseID string) {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return "", ""
	}

	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		version = bi.Main.Version
	}

	var rev, modified string
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			rev = s.Value
		}
		if s.Key == "vcs.modified" {
			modified = s.Value
		}
	}
	if rev != "" {
		if modified == "true" {
			rev += "-dirty"
		}
		releaseID = rev
	}

	return version, releaseID
}
