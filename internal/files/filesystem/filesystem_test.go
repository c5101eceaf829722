package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviders(t *testing.T) {
	providers := map[string]func(t *testing.T) (FileSystemProvider, string){
		"os": func(t *testing.T) (FileSystemProvider, string) {
			return NewOSFileSystem(), t.TempDir()
		},
		"memory": func(t *testing.T) (FileSystemProvider, string) {
			return NewMemoryFileSystem(), "/work"
		},
	}

	for name, setup := range providers {
		t.Run(name, func(t *testing.T) {
			fsp, root := setup(t)
			target := filepath.Join(root, "out", "nested", "rows.jsonl")

			_, err := fsp.ReadFile(target)
			assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
			_, err = fsp.Stat(target)
			assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

			require.NoError(t, fsp.WriteFile(target, []byte("first\n")))
			require.NoError(t, fsp.WriteFile(target, []byte("second\n")))

			data, err := fsp.ReadFile(target)
			require.NoError(t, err)
			assert.Equal(t, "second\n", string(data))

			info, err := fsp.Stat(target)
			require.NoError(t, err)
			assert.Equal(t, "rows.jsonl", info.Name())
			assert.Equal(t, int64(7), info.Size())
			assert.False(t, info.IsDir())
		})
	}
}

func TestOSFileSystem_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fsp := NewOSFileSystem()

	require.NoError(t, fsp.WriteFile(filepath.Join(dir, "kjv.csv"), []byte("book,chapter,verse,text\n")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kjv.csv", entries[0].Name())
}

func TestMemoryFileSystem_PathNormalization(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("data/./book-map.json", "{}")

	data, err := mfs.ReadFile("data/book-map.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
	assert.Equal(t, []string{"data/book-map.json"}, mfs.Paths())

	data[0] = 'X'
	again, _ := mfs.ReadFile("data/book-map.json")
	assert.Equal(t, "{}", string(again), "ReadFile must return a copy")
}
