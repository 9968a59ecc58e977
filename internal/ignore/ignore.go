// Package ignore builds and evaluates the exclusion set applied during a
// snapshot walk.
//
// An exclusion set is the union of three sources: the built-in defaults,
// patterns parsed from an optional ignore-file (gitignore-style, one
// pattern per line), and patterns supplied directly by the user. The set
// is built once before the walk begins and is never mutated afterwards.
package ignore

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultPatterns is the built-in exclusion list applied to every run.
// It covers version-control metadata, dependency caches, virtual
// environments, editor metadata, build output, and common junk files.
var DefaultPatterns = []string{
	".git",
	".svn",
	".hg",
	"node_modules",
	"__pycache__",
	"venv",
	".venv",
	".vscode",
	".idea",
	"dist",
	"build",
	"*.pyc",
	"*.tmp",
	".DS_Store",
	"package-lock.json",
	"yarn.lock",
	".env",
}

// Set is a collection of glob exclusion patterns. Patterns are unordered
// and duplicates are collapsed; matching is the only operation performed
// during a walk.
type Set struct {
	patterns map[string]struct{}
}

// NewSet creates a Set from zero or more pattern groups. Empty patterns
// are dropped.
func NewSet(groups ...[]string) *Set {
	s := &Set{patterns: make(map[string]struct{})}
	for _, group := range groups {
		s.Add(group...)
	}
	return s
}

// Add unions additional patterns into the set. Adding is idempotent and
// order-independent. Add must not be called once a walk has started.
func (s *Set) Add(patterns ...string) {
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// Directory-only gitignore patterns ("build/") match the same
		// names as their bare form here.
		p = strings.TrimSuffix(p, "/")
		if p == "" {
			continue
		}
		s.patterns[p] = struct{}{}
	}
}

// Len returns the number of distinct patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Patterns returns the patterns in sorted order, for logging and tests.
func (s *Set) Patterns() []string {
	out := make([]string, 0, len(s.patterns))
	for p := range s.patterns {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// MatchDir reports whether a directory with the given bare name should be
// pruned. Directory pruning happens on the name alone, before the
// directory is ever descended into.
func (s *Set) MatchDir(name string) bool {
	for p := range s.patterns {
		if matchPattern(p, name) {
			return true
		}
	}
	return false
}

// Match reports whether a file should be excluded. The bare file name and
// the root-relative slash-normalized path are each tested against every
// pattern; either matching excludes the file.
func (s *Set) Match(name, relPath string) bool {
	for p := range s.patterns {
		if matchPattern(p, name) || matchPattern(p, relPath) {
			return true
		}
	}
	return false
}

// ParseIgnoreFile reads a gitignore-style file and returns its patterns.
// Blank lines and lines starting with "#" contribute nothing. Negation
// lines ("!pattern") are not supported and are dropped. A missing or
// unreadable file is reported as an error; callers treat that as a
// warning and an empty contribution, never a fatal failure.
func ParseIgnoreFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ignore file: %w", err)
	}
	defer f.Close()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "!") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ignore file: %w", err)
	}
	return patterns, nil
}

// ParseList splits a comma-separated pattern list as typed by a user.
// Each entry is trimmed of surrounding whitespace; empty entries are
// dropped.
func ParseList(input string) []string {
	var patterns []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			patterns = append(patterns, part)
		}
	}
	return patterns
}
