// Package testhelpers provides shared utilities for testing termscan
package testhelpers

import (
	"github.com/standardbeagle/termscan/internal/config"
)

// TestConfigBuilder provides a fluent API for building test configs.
// Usage:
//
//	cfg := testhelpers.NewTestConfigBuilder().
//		WithEngine("ecmascript").
//		WithResultsPath(filepath.Join(dir, "results.csv")).
//		Build()
type TestConfigBuilder struct {
	cfg *config.Config
}

// NewTestConfigBuilder starts from the built-in defaults
func NewTestConfigBuilder() *TestConfigBuilder {
	return &TestConfigBuilder{cfg: config.Default()}
}

// WithEngine sets the regex engine
func (b *TestConfigBuilder) WithEngine(engine string) *TestConfigBuilder {
	b.cfg.Search.Engine = engine
	return b
}

// WithResultsPath points the results log at path
func (b *TestConfigBuilder) WithResultsPath(path string) *TestConfigBuilder {
	b.cfg.Results.Path = path
	b.cfg.Results.Enabled = true
	return b
}

// WithoutResults disables the results log
func (b *TestConfigBuilder) WithoutResults() *TestConfigBuilder {
	b.cfg.Results.Enabled = false
	return b
}

// Quiet turns off echoing of the file contents
func (b *TestConfigBuilder) Quiet() *TestConfigBuilder {
	b.cfg.Output.EchoContents = false
	return b
}

// WithZeroWords sets the zero-word percentage policy
func (b *TestConfigBuilder) WithZeroWords(policy string) *TestConfigBuilder {
	b.cfg.Report.ZeroWords = policy
	return b
}

// Build returns the configuration
func (b *TestConfigBuilder) Build() *config.Config {
	cfg := *b.cfg
	return &cfg
}
