package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const unavailable = "unavailable"

// FromBuildInfo describes the running binary from its embedded build information.
func FromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unavailable
	}

	return describe(info)
}

func describe(info *debug.BuildInfo) string {
	var parts []string

	if v := info.Main.Version; v != "" && v != "(devel)" {
		parts = append(parts, v)
	}

	var vcs, revision, ts string

	modified := false

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs":
			vcs = setting.Value
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			ts = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		default:
			continue
		}
	}

	if revision != "" {
		s := fmt.Sprintf("built from %s revision %s", vcs, revision)

		if modified {
			s += " (modified)"
		}

		if ts != "" {
			s += " at " + ts
		}

		parts = append(parts, s)
	}

	if len(parts) == 0 {
		return unavailable
	}

	return strings.Join(parts, ", ")
}
