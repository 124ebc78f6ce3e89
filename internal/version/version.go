package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Version is the semantic version of termscan.
const Version = "0.2.0"

// Build metadata, overridable with
// -ldflags "-X github.com/standardbeagle/termscan/internal/version.Commit=abc123"
var (
	Commit = ""
	Date   = ""
)

// Build describes the running binary.
type Build struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	ID        string
}

var (
	current     Build
	currentOnce sync.Once
)

// Current returns the build metadata, filling Commit and Date from the
// embedded VCS settings when they were not set at link time.
func Current() Build {
	currentOnce.Do(func() {
		current = readBuild(debug.ReadBuildInfo())
	})
	return current
}

func readBuild(info *debug.BuildInfo, ok bool) Build {
	b := Build{Version: Version, Commit: Commit, Date: Date}
	if ok {
		b.GoVersion = info.GoVersion
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if b.Commit == "" {
					b.Commit = s.Value
				}
			case "vcs.time":
				if b.Date == "" {
					b.Date = s.Value
				}
			}
		}
	}
	if b.Commit == "" {
		b.Commit = "unknown"
	}
	if b.Date == "" {
		b.Date = "development"
	}
	b.ID = buildID(b)
	return b
}

// buildID is a short digest of everything that identifies the build.
func buildID(b Build) string {
	key := strings.Join([]string{b.Version, b.Commit, b.Date, b.GoVersion}, "\x00")
	return fmt.Sprintf("%016x", xxhash.Sum64String(key))
}

// FullInfo is the text printed by --version.
func FullInfo() string {
	b := Current()
	var sb strings.Builder
	fmt.Fprintf(&sb, "termscan %s\n", b.Version)
	fmt.Fprintf(&sb, "commit:   %s\n", b.Commit)
	fmt.Fprintf(&sb, "built:    %s\n", b.Date)
	if b.GoVersion != "" {
		fmt.Fprintf(&sb, "go:       %s\n", b.GoVersion)
	}
	fmt.Fprintf(&sb, "build id: %s", b.ID)
	return sb.String()
}
