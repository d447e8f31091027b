package revision

import (
	"runtime/debug"
	"sync"
)

// Bumped by hand on tagged releases.
const VersionString = "v0.1"

// GetVersion returns the release string with the short commit hash of
// the running build, e.g. "v0.1-3fa8c21d", plus a "+dirty" marker when
// built from a modified tree. Builds without VCS metadata (go run, test
// binaries) report "v0.1-dev".
var GetVersion = sync.OnceValue(func() string {
	commit, dirty := "dev", ""
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if len(s.Value) >= 8 {
					commit = s.Value[:8]
				}
			case "vcs.modified":
				if s.Value == "true" {
					dirty = "+dirty"
				}
			}
		}
	}
	return VersionString + "-" + commit + dirty
})
