package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ValidationSeverity indicates whether a validation issue is an error or warning.
type ValidationSeverity string

const (
	// SeverityError indicates a fatal validation issue; the configuration is unusable.
	SeverityError ValidationSeverity = "error"
	// SeverityWarning indicates an informational issue; the configuration
	// works but may not behave as intended.
	SeverityWarning ValidationSeverity = "warning"
)

// ValidationIssue represents a single validation finding.
type ValidationIssue struct {
	Severity ValidationSeverity
	Field    string // dotted path, e.g. "advice.model"
	Message  string
}

// ValidationResult holds all validation findings.
type ValidationResult struct {
	Issues []ValidationIssue
}

// HasErrors returns true if any issue has error severity.
func (vr *ValidationResult) HasErrors() bool {
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Warnings returns only warning-severity issues.
func (vr *ValidationResult) Warnings() []ValidationIssue {
	var warns []ValidationIssue
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityWarning {
			warns = append(warns, issue)
		}
	}
	return warns
}

// Errors returns only error-severity issues.
func (vr *ValidationResult) Errors() []ValidationIssue {
	var errs []ValidationIssue
	for _, issue := range vr.Issues {
		if issue.Severity == SeverityError {
			errs = append(errs, issue)
		}
	}
	return errs
}

// Validate checks the configuration for correctness. The TOML metadata, when
// non-nil, contributes unknown-key warnings.
func Validate(cfg *Config, meta *toml.MetaData) *ValidationResult {
	vr := &ValidationResult{}

	if cfg == nil {
		addError(vr, "", "configuration is nil")
		return vr
	}

	if cfg.Advice.APIKeyEnv != "" && strings.ContainsAny(cfg.Advice.APIKeyEnv, " \t=") {
		addError(vr, "advice.api_key_env", fmt.Sprintf("%q is not a valid environment variable name", cfg.Advice.APIKeyEnv))
	}
	if !cfg.Advice.Disabled && cfg.Advice.APIKeyEnv != "" && os.Getenv(cfg.Advice.APIKeyEnv) == "" {
		addWarning(vr, "advice.api_key_env", fmt.Sprintf("environment variable %s is not set; advice runs in offline mode", cfg.Advice.APIKeyEnv))
	}

	if cfg.Table.File != "" {
		if _, err := os.Stat(cfg.Table.File); err != nil {
			addError(vr, "table.file", fmt.Sprintf("table file %q is not readable: %v", cfg.Table.File, err))
		}
	}

	if meta != nil {
		for _, key := range meta.Undecoded() {
			addWarning(vr, key.String(), "unknown key in config file")
		}
	}

	return vr
}

func addError(vr *ValidationResult, field, message string) {
	vr.Issues = append(vr.Issues, ValidationIssue{Severity: SeverityError, Field: field, Message: message})
}

func addWarning(vr *ValidationResult, field, message string) {
	vr.Issues = append(vr.Issues, ValidationIssue{Severity: SeverityWarning, Field: field, Message: message})
}
