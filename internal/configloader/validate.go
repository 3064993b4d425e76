package configloader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/pkg/config"
	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/theme"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "contents.width_percent").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Theme != "" {
		if _, ok := theme.ByName(cfg.Theme); !ok {
			result.fail("theme", cfg.Theme, "unknown theme %q; must be one of: %s",
				cfg.Theme, strings.Join(theme.Available(), ", "))
		}
	}

	if cfg.Mode != "" {
		if _, err := layout.ParseMode(cfg.Mode); err != nil {
			result.fail("mode", cfg.Mode, "invalid mode %q; must be one of: %s",
				cfg.Mode, strings.Join(layout.ModeNames(), ", "))
		}
	}

	if cfg.Flavor != "" && !cfg.Flavor.IsValid() {
		result.fail("flavor", cfg.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.fail("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}

	if cfg.LogLevel != "" {
		if !logging.ValidLevel(cfg.LogLevel) {
			result.fail("log_level", cfg.LogLevel, "invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel)
		}
	}

	if cfg.CacheSize < 0 {
		result.fail("cache_size", cfg.CacheSize, "cache_size must be >= 0 (0 means unbounded)")
	}
	if cfg.ScrollAmount < 0 {
		result.fail("scroll_amount", cfg.ScrollAmount, "scroll_amount must be >= 0")
	}
	if cfg.Width < 0 {
		result.fail("width", cfg.Width, "width must be >= 0")
	}
	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if w := cfg.Contents.WidthPercent; w != 0 && (w < 10 || w > 90) {
		result.fail("contents.width_percent", w, "width_percent must be between 10 and 90")
	}

	validateStyles(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateStyles rejects overrides for style names no theme has, and warns
// about overrides that change nothing.
func validateStyles(cfg *config.Config, result *ValidationResult) {
	known := theme.StyleNames()
	for name, style := range cfg.Styles {
		switch {
		case !slices.Contains(known, name):
			result.fail("styles."+name, name, "unknown style %q", name)
		case style.IsZero():
			result.warn("styles."+name, name, "empty override for style %q has no effect", name)
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
