package config

import (
	"errors"
	"strings"

	tserrors "github.com/standardbeagle/termscan/internal/errors"
	"github.com/standardbeagle/termscan/internal/matcher"
	"github.com/standardbeagle/termscan/internal/report"
	"github.com/standardbeagle/termscan/internal/results"
)

// Validator validates configuration and normalizes its values
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates cfg and fills in empty values.
// All problems are reported together as a *errors.MultiError of ConfigErrors.
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	v.setSmartDefaults(cfg)

	var errs []error

	engine, err := matcher.ParseEngine(cfg.Search.Engine)
	if err != nil {
		errs = append(errs, tserrors.NewConfigError("search.engine", cfg.Search.Engine, err))
	} else {
		cfg.Search.Engine = string(engine)
	}

	policy, err := report.ParseZeroWordsPolicy(cfg.Report.ZeroWords)
	if err != nil {
		errs = append(errs, tserrors.NewConfigError("report.zero_words", cfg.Report.ZeroWords, err))
	} else {
		cfg.Report.ZeroWords = string(policy)
	}

	if cfg.Results.Enabled && strings.TrimSpace(cfg.Results.Path) == "" {
		errs = append(errs, tserrors.NewConfigError("results.path", cfg.Results.Path,
			errors.New("results path cannot be empty while the results log is enabled")))
	}

	return tserrors.NewMultiError(errs).ErrorOrNil()
}

// setSmartDefaults fills values left empty by partial config files
func (v *Validator) setSmartDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	if cfg.Search.Engine == "" {
		cfg.Search.Engine = string(matcher.DefaultEngine)
	}

	if cfg.Report.ZeroWords == "" {
		cfg.Report.ZeroWords = string(report.ZeroWordsAsZero)
	}

	if cfg.Results.Enabled && cfg.Results.Path == "" {
		cfg.Results.Path = results.DefaultPath
	}
}

// ValidateConfig is a convenience function for quick validation
func ValidateConfig(cfg *Config) error {
	validator := NewValidator()
	return validator.ValidateAndSetDefaults(cfg)
}
