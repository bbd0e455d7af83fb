package scan

import "fmt"

// RootError is returned when the project root is missing or not a directory.
// It is fatal: no scanning happens without a readable root.
type RootError struct {
	Root  string
	Cause error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("invalid project root %s: %v", e.Root, e.Cause)
}

func (e *RootError) Unwrap() error { return e.Cause }

// FileReadError is returned when a candidate file cannot be read.
// It is recoverable: the file is skipped and the scan continues.
type FileReadError struct {
	Path  string
	Cause error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Cause)
}

func (e *FileReadError) Unwrap() error { return e.Cause }

// IgnoreFileReadError is returned when an exclusion rule file exists but
// cannot be read.
type IgnoreFileReadError struct {
	Path  string
	Cause error
}

func (e *IgnoreFileReadError) Error() string {
	return fmt.Sprintf("failed to read ignore file %s: %v", e.Path, e.Cause)
}

func (e *IgnoreFileReadError) Unwrap() error { return e.Cause }
