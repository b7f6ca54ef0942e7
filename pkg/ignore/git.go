package ignore

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Well-known ignore file names.
const (
	GitIgnoreFile  = ".gitignore"
	DotIgnoreFile  = ".ignore"
	gitDir         = ".git"
	infoExcludeRel = ".git/info/exclude"
)

// FindRepoRoot returns the nearest ancestor of dir (dir included) that
// contains a ".git" entry. Worktrees and submodules use a ".git" file, so
// either kind counts.
func FindRepoRoot(fsys afero.Fs, dir string) (string, bool) {
	current := filepath.Clean(dir)
	for {
		if _, err := fsys.Stat(filepath.Join(current, gitDir)); err == nil {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// CompileRepoExcludes compiles repoRoot/.git/info/exclude scoped to the
// repository root.
func (s *Stack) CompileRepoExcludes(repoRoot string) error {
	return s.CompileIgnoreFile(repoRoot, filepath.FromSlash(infoExcludeRel))
}

// LoadGitExcludes returns the patterns of the excludes files named by
// core.excludesfile in /etc/gitconfig and ~/.gitconfig, system first.
// Failures are logged and yield no patterns.
func LoadGitExcludes(logger *zap.Logger) []gitignore.Pattern {
	if logger == nil {
		logger = zap.NewNop()
	}
	root := osfs.New("/")

	var patterns []gitignore.Pattern
	system, err := gitignore.LoadSystemPatterns(root)
	if err != nil {
		logger.Debug("Failed to load system git excludes", zap.Error(err))
	}
	patterns = append(patterns, system...)

	global, err := gitignore.LoadGlobalPatterns(root)
	if err != nil {
		logger.Debug("Failed to load global git excludes", zap.Error(err))
	}
	patterns = append(patterns, global...)

	logger.Debug("Loaded git excludes", zap.Int("patternCount", len(patterns)))
	return patterns
}
