package configloader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/docnav/pkg/config"
)

// envVarPrefix is the prefix for all docnav environment variables.
const envVarPrefix = "DOCNAV_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines how an environment variable is applied.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"THEME":                  {"theme", envTypeString, "Built-in theme name"},
	"MODE":                   {"mode", envTypeString, "Initial render mode"},
	"FLAVOR":                 {"flavor", envTypeString, "Markdown flavor: commonmark or gfm"},
	"LOG_LEVEL":              {"log_level", envTypeString, "Log level: debug, info, warn, error"},
	"CACHE_SIZE":             {"cache_size", envTypeInt, "Rendered widths kept per document (0 = unbounded)"},
	"SCROLL_AMOUNT":          {"scroll_amount", envTypeInt, "Lines moved per scroll step"},
	"WATCH":                  {"watch", envTypeBool, "Reload on file change: true or false"},
	"RED_LINKS":              {"red_links", envTypeBool, "Mark links to missing files: true or false"},
	"CONTENTS_SHOW":          {"contents.show", envTypeBool, "Open the contents sidebar: true or false"},
	"CONTENTS_INCLUDE_TOP":   {"contents.include_top", envTypeBool, "Add a top entry to the contents"},
	"CONTENTS_WIDTH_PERCENT": {"contents.width_percent", envTypeInt, "Contents sidebar width in percent"},
	"IGNORE":                 {"ignore", envTypeSlice, "Comma-separated list of ignore patterns"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with DOCNAV_ (e.g., DOCNAV_THEME).
func LoadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a trimmed slice.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "theme":
		cfg.Theme = value
	case "mode":
		cfg.Mode = value
	case "flavor":
		cfg.Flavor = config.Flavor(value)
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "watch":
		cfg.Watch = config.Bool(value)
	case "red_links":
		cfg.RedLinks = config.Bool(value)
	case "contents.show":
		cfg.Contents.Show = config.Bool(value)
	case "contents.include_top":
		cfg.Contents.IncludeTop = config.Bool(value)
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "cache_size":
		cfg.CacheSize = value
	case "scroll_amount":
		cfg.ScrollAmount = value
	case "contents.width_percent":
		cfg.Contents.WidthPercent = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes a supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns every supported environment variable, sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
