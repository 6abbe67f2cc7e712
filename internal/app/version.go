package app

import (
	"fmt"
	"runtime/debug"
)

// Version and Commit are stamped with -ldflags "-X .../internal/app.Version=v1.2.3".
// Without ldflags, Commit falls back to the VCS revision embedded by the Go toolchain.
var (
	Version = "dev"
	Commit  = ""
)

// BuildVersion describes the running binary for the startup log.
func BuildVersion() string {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	rev, dirty := "unknown", false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}
