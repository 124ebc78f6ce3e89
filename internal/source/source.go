// Package source reads the file being searched.
package source

import (
	"os"

	tserrors "github.com/standardbeagle/termscan/internal/errors"
)

// Reader is the file access the search run depends on.
type Reader interface {
	Exists(path string) bool
	ReadAll(path string) (string, error)
}

// FileReader reads from the local filesystem.
type FileReader struct{}

// NewFileReader creates a filesystem reader
func NewFileReader() *FileReader {
	return &FileReader{}
}

// Exists reports whether path can be opened for reading.
func (FileReader) Exists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// ReadAll returns the whole file as text.
func (FileReader) ReadAll(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", tserrors.NewFileError("read", path, err)
	}
	return string(data), nil
}

// MemoryReader serves files from a map, for tests and embedding.
type MemoryReader map[string]string

// Exists implements Reader.
func (m MemoryReader) Exists(path string) bool {
	_, ok := m[path]
	return ok
}

// ReadAll implements Reader.
func (m MemoryReader) ReadAll(path string) (string, error) {
	content, ok := m[path]
	if !ok {
		return "", tserrors.NewFileError("read", path, os.ErrNotExist)
	}
	return content, nil
}
