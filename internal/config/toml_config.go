package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// tomlFile mirrors the KDL layout. Pointers tell "unset" from zero values.
type tomlFile struct {
	Version *int `toml:"version"`
	Search  struct {
		Engine *string `toml:"engine"`
	} `toml:"search"`
	Results struct {
		Path    *string `toml:"path"`
		Enabled *bool   `toml:"enabled"`
	} `toml:"results"`
	Output struct {
		EchoContents *bool `toml:"echo_contents"`
	} `toml:"output"`
	Report struct {
		ZeroWords *string `toml:"zero_words"`
	} `toml:"report"`
}

// applyTOML overlays the settings of a .termscan.toml file onto cfg.
func applyTOML(cfg *Config, data []byte) error {
	var f tomlFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse TOML config: %w", err)
	}

	if f.Version != nil {
		cfg.Version = *f.Version
	}
	if f.Search.Engine != nil {
		cfg.Search.Engine = *f.Search.Engine
	}
	if f.Results.Path != nil {
		cfg.Results.Path = *f.Results.Path
	}
	if f.Results.Enabled != nil {
		cfg.Results.Enabled = *f.Results.Enabled
	}
	if f.Output.EchoContents != nil {
		cfg.Output.EchoContents = *f.Output.EchoContents
	}
	if f.Report.ZeroWords != nil {
		cfg.Report.ZeroWords = *f.Report.ZeroWords
	}
	return nil
}
