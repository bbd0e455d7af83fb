package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Scanner composes rule loading, tree walking, marker recognition and
// context capture into one pass over a project tree.
type Scanner struct {
	fs         fileSystem
	log        Logger
	recognizer *Recognizer
	opts       Options
}

// NewScanner creates a Scanner. log may be nil, in which case recoverable
// failures are silently skipped.
func NewScanner(fs fileSystem, log Logger, opts Options) *Scanner {
	return &Scanner{
		fs:         fs,
		log:        log,
		recognizer: NewRecognizer(opts.LegacyMarkers),
		opts:       opts,
	}
}

// Scan walks the tree rooted at root and returns every annotation unit it
// contains, ordered by file (walker order) then ascending line index.
//
// A file that cannot be read is reported and skipped; it never aborts the
// scan. Only an unusable root or an unreadable rule file is fatal.
func (s *Scanner) Scan(ctx context.Context, root string) ([]AnnotationUnit, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, &RootError{Root: root, Cause: err}
	}

	info, err := s.fs.Stat(absRoot)
	if err != nil {
		return nil, &RootError{Root: absRoot, Cause: err}
	}
	if !info.IsDir() {
		return nil, &RootError{Root: absRoot, Cause: fmt.Errorf("not a directory")}
	}

	rules, err := LoadRules(absRoot, s.fs)
	if err != nil {
		return nil, err
	}

	var gitignore *GitignoreMatcher
	if s.opts.RespectGitignore {
		gitignore, err = NewGitignoreMatcher(absRoot, s.fs)
		if err != nil {
			return nil, err
		}
	}

	walker := NewWalker(s.fs, absRoot, rules, gitignore, s.opts.Extensions)
	files, err := walker.ListFiles(ctx)
	if err != nil {
		return nil, err
	}

	var units []AnnotationUnit
	for _, rel := range files {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		fileUnits, err := s.scanFile(absRoot, rel)
		if err != nil {
			if s.log != nil {
				s.log.Warnf("skipping %s: %v", rel, err)
			}
			continue
		}
		units = append(units, fileUnits...)
	}

	return units, nil
}

// scanFile extracts every annotation unit from a single file. Capture
// windows of neighbouring markers may overlap; units are not deduplicated.
func (s *Scanner) scanFile(absRoot, rel string) ([]AnnotationUnit, error) {
	content, err := s.fs.ReadFile(filepath.Join(absRoot, filepath.FromSlash(rel)))
	if err != nil {
		return nil, &FileReadError{Path: rel, Cause: err}
	}

	lines := splitLines(string(content))

	var units []AnnotationUnit
	for i, line := range lines {
		if !s.recognizer.IsStartMarker(line) {
			continue
		}
		units = append(units, AnnotationUnit{
			SourceFile: rel,
			MarkerLine: strings.TrimSpace(line),
			Context:    s.recognizer.Capture(lines, i, s.opts.BeforeLines, s.opts.MaxLinesAfter),
			LineIndex:  i,
		})
	}

	if s.log != nil && len(units) > 0 {
		s.log.Debugf("%s: %d annotation(s)", rel, len(units))
	}
	return units, nil
}
