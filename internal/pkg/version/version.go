package version

import (
	_ "embed"
	"fmt"
	"runtime/debug"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- && echo clean > dirty.txt || echo dirty > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

// GitInfo holds the git metadata the binary was built from.
type GitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

func (g GitInfo) String() string {
	s := fmt.Sprintf("%s (%s@%s)", g.Tag, g.Branch, g.Commit)
	if g.Dirty {
		s += " dirty"
	}
	return s
}

var info = loadGitInfo()

// loadGitInfo prefers the generated files and falls back to the VCS stamp of the Go toolchain.
func loadGitInfo() GitInfo {
	gi := GitInfo{
		Commit: strings.TrimSpace(commit),
		Branch: strings.TrimSpace(branch),
		Tag:    strings.TrimSpace(tag),
		Dirty:  strings.TrimSpace(dirty) == "dirty",
	}
	if gi.Commit != "" && gi.Commit != "unknown" {
		return gi
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return gi
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			gi.Commit = s.Value
		case "vcs.modified":
			gi.Dirty = s.Value == "true"
		}
	}
	return gi
}

// GetGitInfo returns a copy of the git metadata.
func GetGitInfo() GitInfo {
	return info
}
