package configloader

import (
	"maps"

	"github.com/yaklabco/docnav/pkg/config"
	"github.com/yaklabco/docnav/pkg/theme"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer booleans: override overwrites base if set, so false is honoured
//   - Styles: deep merge per style name, patching base with override
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.CacheSize != 0 {
		result.CacheSize = override.CacheSize
	}
	if override.ScrollAmount != 0 {
		result.ScrollAmount = override.ScrollAmount
	}

	if override.Watch != nil {
		result.Watch = override.Watch
	}
	if override.RedLinks != nil {
		result.RedLinks = override.RedLinks
	}
	if override.Contents.Show != nil {
		result.Contents.Show = override.Contents.Show
	}
	if override.Contents.IncludeTop != nil {
		result.Contents.IncludeTop = override.Contents.IncludeTop
	}
	if override.Contents.WidthPercent != 0 {
		result.Contents.WidthPercent = override.Contents.WidthPercent
	}

	result.Styles = mergeStyles(base.Styles, override.Styles)

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	// CLI-only fields.
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.LogFile != "" {
		result.LogFile = override.LogFile
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	return &result
}

// mergeStyles patches base styles with override styles of the same name.
func mergeStyles(base, override map[string]theme.Style) map[string]theme.Style {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]theme.Style, len(base)+len(override))
	maps.Copy(result, base)

	for name, style := range override {
		if existing, ok := result[name]; ok {
			result[name] = existing.Patch(style)
		} else {
			result[name] = style
		}
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
