// File: pkg/collect/traversal.go
package collect

import (
	"errors"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"codedump/pkg/ignore"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// errStopWalk unwinds afero.Walk once the consumer stops iterating.
var errStopWalk = errors.New("walk stopped by consumer")

// walkState carries the ignore rules of one traversal.
type walkState struct {
	stack    *ignore.Stack
	repoRoot string
	inRepo   bool
}

// Walk returns the candidate files under root in depth-first, lexical order.
// The sequence is lazy and restartable: every range over it walks the tree
// again from scratch. Entries that cannot be read are dropped, never fatal.
//
// Candidate paths keep root exactly as given, so a root of "." yields
// "./main.go".
func (c *Collector) Walk(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			c.logger.Warn("Failed to resolve root", zap.String("root", root), zap.Error(err))
			return
		}
		state := c.newWalkState(absRoot)
		c.logger.Debug("Starting traversal",
			zap.String("root", root),
			zap.Bool("inRepo", state.inRepo),
			zap.Int("inheritedRules", state.stack.Len()))

		err = afero.Walk(c.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				c.logger.Debug("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
				return nil
			}

			isRoot := path == root
			rel := relativeTo(root, path)
			absPath := filepath.Join(absRoot, rel)

			if info.IsDir() {
				if !isRoot && c.skipEntry(state, info.Name(), absPath, true) {
					c.logger.Debug("Skipping directory", zap.String("directory", path))
					return filepath.SkipDir
				}
				c.loadIgnoreFiles(state, absPath)
				return nil
			}

			if !isRoot && c.skipEntry(state, info.Name(), absPath, false) {
				return nil
			}
			if !info.Mode().IsRegular() {
				c.logger.Debug("Skipping non-regular file", zap.String("path", path), zap.Stringer("mode", info.Mode()))
				return nil
			}

			candidate := candidatePath(root, path)
			if isRoot {
				rel = filepath.Base(path)
			}
			if c.opts.Patterns.Matches(candidate) || c.opts.Patterns.MatchesRelative(rel) {
				c.logger.Debug("File matches exclusion pattern", zap.String("path", candidate))
				return nil
			}

			if !yield(candidate) {
				return errStopWalk
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopWalk) {
			c.logger.Warn("Traversal ended early", zap.String("root", root), zap.Error(err))
		}
	}
}

// newWalkState seeds the ignore stack with git excludes and the ignore files
// of every ancestor of absRoot.
func (c *Collector) newWalkState(absRoot string) *walkState {
	state := &walkState{stack: ignore.NewStack(c.fs, c.logger)}
	if c.opts.NoIgnore {
		return state
	}

	state.repoRoot, state.inRepo = ignore.FindRepoRoot(c.fs, absRoot)
	if state.inRepo {
		if _, ok := c.fs.(*afero.OsFs); ok {
			state.stack.AddPatterns(ignore.LoadGitExcludes(c.logger)...)
		}
		_ = state.stack.CompileRepoExcludes(state.repoRoot)
	}

	for _, dir := range ancestors(absRoot) {
		c.loadIgnoreFiles(state, dir)
	}
	return state
}

// loadIgnoreFiles compiles the ignore files declared in dir, lowest
// precedence first.
func (c *Collector) loadIgnoreFiles(state *walkState, dir string) {
	if c.opts.NoIgnore {
		return
	}
	if state.inRepo && within(dir, state.repoRoot) {
		_ = state.stack.CompileIgnoreFile(dir, ignore.GitIgnoreFile)
	}
	_ = state.stack.CompileIgnoreFile(dir, ignore.DotIgnoreFile)
	_ = state.stack.CompileIgnoreFile(dir, c.opts.ignoreFileName())
}

// skipEntry applies the hidden-entry rule and the ignore rules.
func (c *Collector) skipEntry(state *walkState, name, absPath string, isDir bool) bool {
	if isDir && name == ".git" {
		return true
	}
	if !c.opts.Hidden && strings.HasPrefix(name, ".") {
		return true
	}
	if c.opts.NoIgnore {
		return false
	}
	return state.stack.MatchesPath(absPath, isDir)
}

// candidatePath joins root and the walked path's remainder without cleaning
// root, so the user's spelling of the root survives.
func candidatePath(root, path string) string {
	if path == root {
		return root
	}
	rel := relativeTo(root, path)
	if strings.HasSuffix(root, string(filepath.Separator)) || strings.HasSuffix(root, "/") {
		return root + rel
	}
	return root + string(filepath.Separator) + rel
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

// within reports whether dir is root or lies beneath it.
func within(dir, root string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ancestors lists the strict ancestors of dir, outermost first.
func ancestors(dir string) []string {
	var dirs []string
	for current := filepath.Dir(dir); current != dir; current = filepath.Dir(current) {
		dirs = append(dirs, current)
		dir = current
	}
	slices.Reverse(dirs)
	return dirs
}
