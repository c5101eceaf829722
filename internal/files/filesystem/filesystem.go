package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystemProvider reads sources and writes outputs by path.
type FileSystemProvider interface {
	// ReadFile reads the whole file at path
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file at path, creating parent directories as needed
	WriteFile(path string, data []byte) error

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
