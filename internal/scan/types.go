// Package scan implements the annotation extraction engine: exclusion
// matching, tree walking, marker recognition and bounded context capture.
package scan

import "os"

// AnnotationUnit is one captured marker occurrence, the unit of work handed
// to generation. Units are created once by the capture step and are treated
// as immutable by all downstream consumers.
type AnnotationUnit struct {
	// SourceFile is the project-relative path of the owning file,
	// normalized to forward slashes.
	SourceFile string
	// MarkerLine is the start-marker line, trimmed of surrounding whitespace.
	MarkerLine string
	// Context is the bounded window around the marker: up to BeforeLines
	// lines before it, the marker line itself, and following lines up to
	// but not including an end-marker line.
	Context []string
	// LineIndex is the 0-indexed position of the marker line in the file.
	LineIndex int
}

// Options configures a scan.
type Options struct {
	// Extensions is the file suffix allow-list (case-sensitive).
	Extensions []string
	// BeforeLines is the number of context lines captured before a marker.
	BeforeLines int
	// MaxLinesAfter bounds how many lines after the marker are examined.
	MaxLinesAfter int
	// LegacyMarkers selects substring marker recognition instead of the
	// comment-introducer-anchored form.
	LegacyMarkers bool
	// RespectGitignore additionally excludes paths matched by the project's
	// .gitignore.
	RespectGitignore bool
}

// fileSystem defines the minimal filesystem interface needed for scanning.
// This is a consumer-defined interface; fsutil.OSFileSystem satisfies it.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	ListDir(path string) ([]os.FileInfo, error)
}

// Logger is the minimal logging interface the scanner needs for reporting
// recoverable per-file failures.
type Logger interface {
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}
