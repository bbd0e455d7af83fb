package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Walker enumerates candidate files under a root directory, applying the
// exclusion rules and the extension allow-list.
type Walker struct {
	fs         fileSystem
	rules      *RuleSet
	gitignore  *GitignoreMatcher // nil unless RespectGitignore is enabled
	extensions []string
	root       string // absolute project root
}

// NewWalker creates a Walker over the given absolute root. gitignore may be
// nil, in which case only the .yagetignore rules apply.
func NewWalker(fs fileSystem, root string, rules *RuleSet, gitignore *GitignoreMatcher, extensions []string) *Walker {
	return &Walker{
		fs:         fs,
		rules:      rules,
		gitignore:  gitignore,
		extensions: extensions,
		root:       root,
	}
}

// ListFiles performs a recursive descent of the root and returns the
// project-relative paths (forward slashes) of every file that passes the
// extension allow-list and is not excluded. Excluded directories are pruned
// before descending, so their contents are never visited.
//
// The result is sorted lexicographically so repeated runs over an unmodified
// tree yield an identical sequence.
func (w *Walker) ListFiles(ctx context.Context) ([]string, error) {
	visited := make(map[string]bool)
	var files []string
	if err := w.walk(ctx, w.root, visited, &files); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func (w *Walker) walk(ctx context.Context, dir string, visited map[string]bool, files *[]string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	// Detect symlink loops using the canonical path. Symlinked directories
	// are followed, but each canonical directory is visited at most once.
	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		canonical = dir
	}
	if visited[canonical] {
		return nil
	}
	visited[canonical] = true

	entries, err := w.fs.ListDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		entryAbs := filepath.Join(dir, entry.Name())
		rel, err := filepath.Rel(w.root, entryAbs)
		if err != nil {
			return fmt.Errorf("failed to calculate relative path for %s: %w", entry.Name(), err)
		}
		rel = filepath.ToSlash(rel)

		isDir := entry.IsDir()
		if !isDir {
			// Symlinked directories report as non-dirs through Lstat-style
			// listings on some systems; Stat resolves the target kind.
			if info, err := w.fs.Stat(entryAbs); err == nil && info.IsDir() {
				isDir = true
			}
		}

		if isDir {
			// The VCS metadata directory is never a scan candidate.
			if entry.Name() == ".git" {
				continue
			}
			if w.rules.Excluded(rel) {
				continue
			}
			if w.gitignore != nil && w.gitignore.ShouldIgnore(rel, true) {
				continue
			}
			if err := w.walk(ctx, entryAbs, visited, files); err != nil {
				return err
			}
			continue
		}

		if !w.allowedExtension(entry.Name()) {
			continue
		}
		if w.rules.Excluded(rel) {
			continue
		}
		if w.gitignore != nil && w.gitignore.ShouldIgnore(rel, false) {
			continue
		}
		*files = append(*files, rel)
	}

	return nil
}

// allowedExtension reports whether the file name ends with one of the
// configured suffixes. Matching is case-sensitive.
func (w *Walker) allowedExtension(name string) bool {
	for _, ext := range w.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
