package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDataBuilder writes input files into an isolated temp directory
type TestDataBuilder struct {
	t     *testing.T
	dir   string
	files map[string]string
}

// NewTestDataBuilder creates a builder rooted at a fresh t.TempDir()
func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	return &TestDataBuilder{
		t:     t,
		dir:   t.TempDir(),
		files: make(map[string]string),
	}
}

// AddFile adds a file with the given name and content
func (tdb *TestDataBuilder) AddFile(name, content string) *TestDataBuilder {
	tdb.files[name] = content
	return tdb
}

// Build writes all files and returns the directory holding them
func (tdb *TestDataBuilder) Build() string {
	tdb.t.Helper()
	for name, content := range tdb.files {
		path := filepath.Join(tdb.dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			tdb.t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			tdb.t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return tdb.dir
}

// Path returns the absolute path of a file added to the builder
func (tdb *TestDataBuilder) Path(name string) string {
	return filepath.Join(tdb.dir, name)
}

// Chdir switches the working directory for the rest of the test
func Chdir(t *testing.T, dir string) {
	t.Helper()
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldDir) })
}
