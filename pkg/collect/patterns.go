// File: pkg/collect/patterns.go
package collect

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// errRecursiveWildcard rejects a "**" that shares a path component with
// other characters, such as "a**" or "**.go".
var errRecursiveWildcard = errors.New("recursive wildcards must form a single path component")

// PatternError reports an exclusion segment that failed to compile.
type PatternError struct {
	Pattern string // The offending segment, trimmed.
	Err     error  // Underlying compile error.
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern: %s", e.Pattern)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// ExclusionPattern is a compiled glob along with the text it was built from.
type ExclusionPattern struct {
	Source  string
	glob    glob.Glob
	literal bool
}

// PatternSet is the set of user exclusions applied to every candidate.
// The zero value matches nothing.
type PatternSet struct {
	patterns []ExclusionPattern
}

// ParsePatterns compiles a comma-separated list of globs. An empty list
// yields an empty set. Compilation stops at the first invalid segment and
// no partial set is returned.
func ParsePatterns(list string) (PatternSet, error) {
	var set PatternSet
	if strings.TrimSpace(list) == "" {
		return set, nil
	}

	for _, segment := range strings.Split(list, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		g, err := compileSegment(segment)
		if err != nil {
			return PatternSet{}, &PatternError{Pattern: segment, Err: err}
		}
		set.patterns = append(set.patterns, ExclusionPattern{Source: segment, glob: g})
	}
	return set, nil
}

// compileSegment compiles one glob. A "**/" component may also match no
// directory at all, so "src/**/*.rs" matches "src/main.rs"; every such
// component is compiled both with and without it.
func compileSegment(segment string) (glob.Glob, error) {
	if err := checkRecursive(segment); err != nil {
		return nil, err
	}

	variants := zeroDirVariants(segment)
	globs := make(anyGlob, 0, len(variants))
	for _, variant := range variants {
		g, err := glob.Compile(variant)
		if err != nil {
			return nil, err
		}
		globs = append(globs, g)
	}
	if len(globs) == 1 {
		return globs[0], nil
	}
	return globs, nil
}

func checkRecursive(segment string) error {
	for i := 0; i < len(segment); {
		j := strings.Index(segment[i:], "**")
		if j < 0 {
			return nil
		}
		start, end := i+j, i+j+2
		if start > 0 && segment[start-1] != '/' {
			return errRecursiveWildcard
		}
		if end < len(segment) && segment[end] != '/' {
			return errRecursiveWildcard
		}
		i = end
	}
	return nil
}

// zeroDirVariants expands pattern into every form with some of its "**/"
// components dropped. The pattern itself comes first.
func zeroDirVariants(pattern string) []string {
	idx := strings.Index(pattern, "**/")
	if idx < 0 {
		return []string{pattern}
	}
	head := pattern[:idx]
	tails := zeroDirVariants(pattern[idx+len("**/"):])

	out := make([]string, 0, 2*len(tails))
	for _, tail := range tails {
		out = append(out, head+"**/"+tail)
	}
	for _, tail := range tails {
		out = append(out, head+tail)
	}
	return out
}

// anyGlob matches when one of its globs does.
type anyGlob []glob.Glob

func (a anyGlob) Match(s string) bool {
	for _, g := range a {
		if g.Match(s) {
			return true
		}
	}
	return false
}

// WithLiteral returns a copy of the set that also excludes path, matched as
// an exact string against the walked path only. Separators are normalized
// and a leading "./" on the walked path may be dropped, so both "out.txt"
// and "./out.txt" exclude a walked "./out.txt".
func (s PatternSet) WithLiteral(path string) PatternSet {
	quoted := glob.QuoteMeta(filepath.ToSlash(path))
	out := PatternSet{patterns: make([]ExclusionPattern, 0, len(s.patterns)+1)}
	out.patterns = append(out.patterns, s.patterns...)
	out.patterns = append(out.patterns, ExclusionPattern{Source: path, glob: glob.MustCompile(quoted), literal: true})
	return out
}

// Matches reports whether any pattern matches the walked path. Globs see it
// with a leading "./" dropped; literals see it with and without.
func (s PatternSet) Matches(path string) bool {
	if len(s.patterns) == 0 {
		return false
	}
	slashed := filepath.ToSlash(path)
	normalized := normalizePath(path)
	for _, p := range s.patterns {
		if p.glob.Match(normalized) {
			return true
		}
		if p.literal && p.glob.Match(slashed) {
			return true
		}
	}
	return false
}

// MatchesRelative reports whether any glob matches a path relative to the
// walk root. Literals are skipped since the output path names a file as the
// walk reports it, not as seen from the root.
func (s PatternSet) MatchesRelative(rel string) bool {
	normalized := normalizePath(rel)
	for _, p := range s.patterns {
		if !p.literal && p.glob.Match(normalized) {
			return true
		}
	}
	return false
}

// Sources lists the pattern texts in parse order.
func (s PatternSet) Sources() []string {
	sources := make([]string, 0, len(s.patterns))
	for _, p := range s.patterns {
		sources = append(sources, p.Source)
	}
	return sources
}

// Len returns the number of patterns in the set.
func (s PatternSet) Len() int {
	return len(s.patterns)
}

// normalizePath converts separators to '/' and drops a leading "./".
func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}
