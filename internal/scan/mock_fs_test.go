package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultTestExtensions is the allow-list used by tests that don't care
// about the extension set.
var DefaultTestExtensions = []string{".py", ".cpp", ".h", ".java", ".js", ".html", ".sh"}

// mockFileSystem is a local mock implementing the scan fileSystem interface.
// Directories are derived from file paths; all paths use forward slashes.
// ListDir calls are recorded in listed so tests can assert pruning.
type mockFileSystem struct {
	files    map[string][]byte
	readErrs map[string]error
	listed   []string
}

func newMockFileSystem() *mockFileSystem {
	return &mockFileSystem{
		files:    make(map[string][]byte),
		readErrs: make(map[string]error),
	}
}

func (m *mockFileSystem) createFile(path string, content []byte) {
	m.files[path] = content
}

func (m *mockFileSystem) failRead(path string, err error) {
	m.readErrs[path] = err
}

func (m *mockFileSystem) Stat(path string) (os.FileInfo, error) {
	path = filepath.ToSlash(path)
	if _, ok := m.files[path]; ok {
		return mockFileInfo{name: filepath.Base(path)}, nil
	}
	if m.isDir(path) {
		return mockFileInfo{name: filepath.Base(path), dir: true}, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockFileSystem) ReadFile(path string) ([]byte, error) {
	path = filepath.ToSlash(path)
	if err, ok := m.readErrs[path]; ok {
		return nil, err
	}
	content, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return content, nil
}

func (m *mockFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	path = filepath.ToSlash(path)
	m.listed = append(m.listed, path)
	if !m.isDir(path) {
		return nil, os.ErrNotExist
	}

	seen := make(map[string]bool)
	var infos []os.FileInfo
	prefix := strings.TrimSuffix(path, "/") + "/"
	for file := range m.files {
		if !strings.HasPrefix(file, prefix) {
			continue
		}
		rest := strings.TrimPrefix(file, prefix)
		name, _, isNested := strings.Cut(rest, "/")
		if seen[name] {
			continue
		}
		seen[name] = true
		infos = append(infos, mockFileInfo{name: name, dir: isNested})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })
	return infos, nil
}

func (m *mockFileSystem) isDir(path string) bool {
	prefix := strings.TrimSuffix(path, "/") + "/"
	for file := range m.files {
		if strings.HasPrefix(file, prefix) {
			return true
		}
	}
	return false
}

type mockFileInfo struct {
	name string
	dir  bool
}

func (f mockFileInfo) Name() string       { return f.name }
func (f mockFileInfo) Size() int64        { return 0 }
func (f mockFileInfo) Mode() os.FileMode  { return 0 }
func (f mockFileInfo) ModTime() time.Time { return time.Time{} }
func (f mockFileInfo) IsDir() bool        { return f.dir }
func (f mockFileInfo) Sys() any           { return nil }
