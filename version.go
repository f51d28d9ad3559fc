// Package quill is a terminal text editor built around a viewport and
// cursor engine that keeps the cursor visible under soft wrapping.
package quill

import (
	_ "embed"
	"fmt"
	"runtime/debug"
	"strings"

	"golang.org/x/mod/semver"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a full SemVer 2.0.0 version written
// without the `v` prefix. Shorthands like "1.2" are rejected.
func IsSemver(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" || v[0] == 'v' {
		return false
	}
	canonical := semver.Canonical("v" + v)
	if canonical == "" {
		return false
	}
	core, _, _ := strings.Cut(v, "+")
	return canonical[1:] == core
}

// BuildString describes the running binary: the release tag, the Go
// toolchain and, when the binary was built from a checkout, the short VCS
// revision.
func BuildString() string {
	s := VersionTag()
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return s
	}
	var rev string
	var dirty bool
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			rev = kv.Value
		case "vcs.modified":
			dirty = kv.Value == "true"
		}
	}
	if rev == "" {
		return fmt.Sprintf("%s (%s)", s, info.GoVersion)
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if dirty {
		rev += "-dirty"
	}
	return fmt.Sprintf("%s (%s, %s)", s, info.GoVersion, rev)
}
