// Package version reports which codedump build is running.
//
// Release builds stamp Version, Commit and BuildTime with -ldflags, e.g.
//
//	go build -ldflags "-X 'codedump/pkg/version.Version=1.2.3' -X 'codedump/pkg/version.Commit=abcdefg'"
//
// Anything left unstamped is taken from the module and VCS data the Go
// toolchain embeds in the binary, so `go install codedump@v1.2.3` still
// reports v1.2.3.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const (
	unsetVersion   = "dev"
	unsetCommit    = "none"
	unsetBuildTime = "unknown"

	shortCommitLen = 12
)

var (
	Version   = unsetVersion
	Commit    = unsetCommit
	BuildTime = unsetBuildTime
)

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	Modified  bool // Built from a work tree with uncommitted changes.
	GoVersion string
	Platform  string
}

// Get returns the version of the running binary.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := readBuildInfo(); ok {
		info = info.withBuildInfo(bi)
	}
	return info
}

// withBuildInfo fills the fields ldflags left unset from bi.
func (i Info) withBuildInfo(bi *debug.BuildInfo) Info {
	if i.Version == unsetVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}

	stampedCommit := i.GitCommit != unsetCommit
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if !stampedCommit {
				i.GitCommit = shortCommit(setting.Value)
			}
		case "vcs.time":
			if i.BuildTime == unsetBuildTime {
				i.BuildTime = setting.Value
			}
		case "vcs.modified":
			if !stampedCommit {
				i.Modified = setting.Value == "true"
			}
		}
	}
	return i
}

func shortCommit(rev string) string {
	if len(rev) > shortCommitLen {
		return rev[:shortCommitLen]
	}
	return rev
}

// String renders the info on one line, e.g.
// codedump v1.2.3 (commit 0123456789ab, modified) built 2026-01-02T15:04:05Z, go1.24.2 linux/amd64
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "codedump %s (commit %s", i.Version, i.GitCommit)
	if i.Modified {
		b.WriteString(", modified")
	}
	fmt.Fprintf(&b, ") built %s, %s %s", i.BuildTime, i.GoVersion, i.Platform)
	return b.String()
}
