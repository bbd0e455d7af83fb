package scan

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// IgnoreFileName is the exclusion rule file expected at the project root.
const IgnoreFileName = ".yagetignore"

// RuleSet holds the exclusion rules loaded from a .yagetignore file.
//
// Two rule forms exist: a trailing-slash form excluding a directory and
// everything beneath it, and an exact-match form excluding one relative
// path. The first matching rule wins; there is no negation or precedence
// beyond that.
type RuleSet struct {
	rules []string
}

// LoadRules reads the .yagetignore file at the project root. A missing file
// is not an error and yields an empty rule set. Blank lines and lines
// starting with '#' are skipped; all rules are trimmed of whitespace.
func LoadRules(projectRoot string, fs fileSystem) (*RuleSet, error) {
	ignorePath := filepath.Join(projectRoot, IgnoreFileName)

	if _, err := fs.Stat(ignorePath); err != nil {
		return &RuleSet{}, nil
	}

	content, err := fs.ReadFile(ignorePath)
	if err != nil {
		return nil, &IgnoreFileReadError{Path: ignorePath, Cause: err}
	}

	var rules []string
	for _, line := range splitLines(string(content)) {
		rule := strings.TrimSpace(line)
		if rule == "" || strings.HasPrefix(rule, "#") {
			continue
		}
		rules = append(rules, rule)
	}
	return &RuleSet{rules: rules}, nil
}

// Excluded reports whether the given project-relative path (forward slashes)
// matches any rule. A trailing-slash rule matches the directory itself and
// any path beneath it; any other rule matches only on exact equality.
func (r *RuleSet) Excluded(relativePath string) bool {
	for _, rule := range r.rules {
		if strings.HasSuffix(rule, "/") {
			prefix := strings.TrimSuffix(rule, "/")
			if relativePath == prefix || strings.HasPrefix(relativePath, prefix+"/") {
				return true
			}
			continue
		}
		if relativePath == rule {
			return true
		}
	}
	return false
}

// Len returns the number of loaded rules.
func (r *RuleSet) Len() int {
	return len(r.rules)
}

// GitignoreMatcher filters paths through the project's .gitignore using
// go-git's gitignore matcher. It supplements the .yagetignore rules when
// enabled; it never replaces them.
type GitignoreMatcher struct {
	matcher gitignore.Matcher
}

// NewGitignoreMatcher loads .gitignore from the project root. Returns a
// matcher that never ignores if .gitignore doesn't exist (no error).
func NewGitignoreMatcher(projectRoot string, fs fileSystem) (*GitignoreMatcher, error) {
	gitignorePath := filepath.Join(projectRoot, ".gitignore")

	if _, err := fs.Stat(gitignorePath); err != nil {
		return &GitignoreMatcher{matcher: nil}, nil
	}

	content, err := fs.ReadFile(gitignorePath)
	if err != nil {
		return nil, &IgnoreFileReadError{Path: gitignorePath, Cause: err}
	}

	var patterns []gitignore.Pattern
	for _, line := range splitLines(string(content)) {
		if line == "" {
			continue
		}
		if pattern := gitignore.ParsePattern(line, nil); pattern != nil {
			patterns = append(patterns, pattern)
		}
	}

	return &GitignoreMatcher{matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldIgnore checks if a relative path matches any gitignore patterns.
// Returns false if no .gitignore was loaded.
func (m *GitignoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m.matcher == nil {
		return false
	}
	return m.matcher.Match(splitPath(relativePath), isDir)
}

// splitPath splits a path into segments for gitignore matching.
// It normalizes path separators and filters out empty and "." segments.
func splitPath(path string) []string {
	if path == "" {
		return []string{}
	}

	normalized := filepath.ToSlash(path)

	parts := strings.Split(normalized, "/")
	var segments []string
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}

	return segments
}
