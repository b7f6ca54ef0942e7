// Package ignore evaluates directory-scoped, gitignore-style rules.
//
// Rules are kept in the order they were compiled. Each rule is scoped to the
// directory whose ignore file declared it, and the last rule that matches a
// path decides whether the path is ignored. Compiling shallower directories
// before deeper ones therefore gives deeper files precedence, and a
// negation ("!") can re-include a path excluded by an earlier rule.
package ignore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Stack holds compiled ignore rules for one traversal.
type Stack struct {
	fs       afero.Fs
	patterns []gitignore.Pattern
	logger   *zap.Logger
}

// NewStack initializes an empty Stack reading ignore files from fsys.
func NewStack(fsys afero.Fs, logger *zap.Logger) *Stack {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stack{
		fs:     fsys,
		logger: logger,
	}
}

// Len returns the number of compiled rules.
func (s *Stack) Len() int {
	return len(s.patterns)
}

// AddPatterns appends already-parsed patterns, such as git's global excludes.
func (s *Stack) AddPatterns(ps ...gitignore.Pattern) {
	s.patterns = append(s.patterns, ps...)
}

// CompileIgnoreLines compiles ignore lines declared in dir. Blank lines and
// comments are skipped.
func (s *Stack) CompileIgnoreLines(dir string, lines ...string) {
	domain := splitPath(dir)
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.patterns = append(s.patterns, gitignore.ParsePattern(line, domain))
	}
}

// CompileIgnoreFile reads dir/name and compiles its lines scoped to dir.
// A missing file is not an error.
func (s *Stack) CompileIgnoreFile(dir, name string) error {
	filePath := filepath.Join(dir, name)
	content, err := afero.ReadFile(s.fs, filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		s.logger.Warn("Failed to read ignore file", zap.String("filePath", filePath), zap.Error(err))
		return err
	}

	before := len(s.patterns)
	s.CompileIgnoreLines(dir, strings.Split(string(content), "\n")...)
	s.logger.Debug("Compiled ignore file",
		zap.String("filePath", filePath),
		zap.Int("patternCount", len(s.patterns)-before))
	return nil
}

// MatchesPath reports whether the absolute path is ignored.
func (s *Stack) MatchesPath(absPath string, isDir bool) bool {
	if len(s.patterns) == 0 {
		return false
	}
	return gitignore.NewMatcher(s.patterns).Match(splitPath(absPath), isDir)
}

// splitPath turns an absolute path into the component form used as a
// pattern domain.
func splitPath(path string) []string {
	path = filepath.ToSlash(filepath.Clean(path))
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" && part != "." {
			parts = append(parts, part)
		}
	}
	return parts
}
