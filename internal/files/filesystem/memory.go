package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return false }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	modTime time.Time
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths are cleaned and normalized to forward slashes.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string]*memoryFile)}
}

func normalizePath(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(p string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.files[normalizePath(p)] = &memoryFile{content: []byte(content), modTime: time.Now()}
}

// Paths lists stored files in sorted order.
func (mfs *MemoryFileSystem) Paths() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	paths := make([]string, 0, len(mfs.files))
	for p := range mfs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (mfs *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	f, ok := mfs.files[normalizePath(p)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(f.content))
	copy(out, f.content)
	return out, nil
}

func (mfs *MemoryFileSystem) WriteFile(p string, data []byte) error {
	content := make([]byte, len(data))
	copy(content, data)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.files[normalizePath(p)] = &memoryFile{content: content, modTime: time.Now()}
	return nil
}

func (mfs *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	f, ok := mfs.files[normalizePath(p)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return &memoryFileInfo{name: path.Base(normalizePath(p)), size: int64(len(f.content)), modTime: f.modTime}, nil
}
