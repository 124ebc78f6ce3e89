package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/standardbeagle/termscan/internal/debug"
	tserrors "github.com/standardbeagle/termscan/internal/errors"
	"github.com/standardbeagle/termscan/internal/matcher"
	"github.com/standardbeagle/termscan/internal/report"
	"github.com/standardbeagle/termscan/internal/results"
)

// Config file names looked up in the working directory and the home directory
const (
	KDLFileName  = ".termscan.kdl"
	TOMLFileName = ".termscan.toml"
)

type Config struct {
	Version int
	Search  Search
	Results Results
	Output  Output
	Report  Report
	Sources []string // files that contributed, in load order
}

type Search struct {
	Engine string // "re2" or "ecmascript"
}

type Results struct {
	Path    string // results log, relative to the working directory
	Enabled bool   // false skips the results log entirely
}

type Output struct {
	EchoContents bool // print the file before the search results
}

// Report only matters to callers of report.Summarize with a zero word total.
// Any file read from disk has at least one (possibly empty) word.
type Report struct {
	ZeroWords string // "zero" or "error"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: 1,
		Search: Search{
			Engine: string(matcher.DefaultEngine),
		},
		Results: Results{
			Path:    results.DefaultPath,
			Enabled: true,
		},
		Output: Output{
			EchoContents: true,
		},
		Report: Report{
			ZeroWords: string(report.ZeroWordsAsZero),
		},
	}
}

// Load builds the configuration for a run in dir.
//
// Layers, later ones overriding earlier ones:
//  1. built-in defaults
//  2. ~/.termscan.kdl (if present)
//  3. dir/.termscan.kdl, or dir/.termscan.toml when there is no KDL file
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}
	cfg := Default()

	if homeDir, err := os.UserHomeDir(); err == nil {
		globalPath := filepath.Join(homeDir, KDLFileName)
		if fileExists(globalPath) && !samePath(globalPath, filepath.Join(dir, KDLFileName)) {
			if err := applyFile(cfg, globalPath); err != nil {
				return nil, err
			}
		}
	}

	switch {
	case fileExists(filepath.Join(dir, KDLFileName)):
		if err := applyFile(cfg, filepath.Join(dir, KDLFileName)); err != nil {
			return nil, err
		}
	case fileExists(filepath.Join(dir, TOMLFileName)):
		if err := applyFile(cfg, filepath.Join(dir, TOMLFileName)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// LoadFile loads defaults overridden by one explicit config file. The format
// follows the extension: .toml is TOML, anything else KDL.
func LoadFile(path string) (*Config, error) {
	if !fileExists(path) {
		return nil, tserrors.NewConfigError("config", path, os.ErrNotExist)
	}
	cfg := Default()
	if err := applyFile(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = applyTOML(cfg, content)
	} else {
		err = applyKDL(cfg, string(content))
	}
	if err != nil {
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.Sources = append(cfg.Sources, path)
	debug.LogConfig("applied %s\n", path)
	return nil
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
