// Package config defines core configuration types for docnav.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import "github.com/yaklabco/docnav/pkg/theme"

// Flavor specifies the Markdown flavor to use for parsing.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid returns true if the flavor is known.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorCommonMark, FlavorGFM:
		return true
	default:
		return false
	}
}

// ColorMode controls when styled output is written.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Defaults used by NewConfig.
const (
	DefaultCacheSize     = 8
	DefaultScrollAmount  = 1
	DefaultContentsWidth = 30
	DefaultLogLevel      = "info"
)

// ContentsConfig controls the table of contents sidebar.
type ContentsConfig struct {
	// Show opens the sidebar when a document is loaded.
	Show *bool `yaml:"show,omitempty"`

	// IncludeTop adds a leading entry that jumps to the top of the document.
	IncludeTop *bool `yaml:"include_top,omitempty"`

	// WidthPercent is the sidebar width as a percentage of the screen.
	WidthPercent int `yaml:"width_percent,omitempty"`
}

// Config is the root configuration structure for docnav.
type Config struct {
	// Theme names a built-in theme ("default", "dark", "light", "mono").
	Theme string `yaml:"theme,omitempty"`

	// Styles overrides individual theme styles keyed by style name.
	Styles map[string]theme.Style `yaml:"styles,omitempty"`

	// Mode is the initial render mode ("default", "tree-data", ...).
	Mode string `yaml:"mode,omitempty"`

	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor,omitempty"`

	// CacheSize bounds the number of rendered widths kept per document.
	// 0 keeps every width.
	CacheSize int `yaml:"cache_size,omitempty"`

	// ScrollAmount is the number of lines moved per scroll step.
	ScrollAmount int `yaml:"scroll_amount,omitempty"`

	// Contents configures the table of contents sidebar.
	Contents ContentsConfig `yaml:"contents,omitempty"`

	// Watch reloads the document when the file changes.
	Watch *bool `yaml:"watch,omitempty"`

	// RedLinks marks links to missing local files.
	RedLinks *bool `yaml:"red_links,omitempty"`

	// Ignore contains glob patterns skipped when loading directories.
	Ignore []string `yaml:"ignore,omitempty"`

	// LogLevel is the level used for the log file ("debug", "info", ...).
	LogLevel string `yaml:"log_level,omitempty"`

	// CLI-level options (not persisted to config files).

	// Color controls styled output.
	Color ColorMode `yaml:"-"`

	// Width overrides the render width for non-interactive commands.
	Width int `yaml:"-"`

	// LogFile is the path the interactive viewer logs to.
	LogFile string `yaml:"-"`

	// Jobs specifies the number of parallel parses.
	Jobs int `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Theme:        theme.DefaultName,
		Mode:         "default",
		Flavor:       FlavorGFM,
		CacheSize:    DefaultCacheSize,
		ScrollAmount: DefaultScrollAmount,
		Contents: ContentsConfig{
			Show:         Bool(false),
			IncludeTop:   Bool(true),
			WidthPercent: DefaultContentsWidth,
		},
		Watch:    Bool(true),
		RedLinks: Bool(true),
		LogLevel: DefaultLogLevel,
		Color:    ColorAuto,
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// BoolValue dereferences p, returning def when p is nil.
func BoolValue(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// WatchEnabled reports whether file watching is on.
func (c *Config) WatchEnabled() bool {
	return BoolValue(c.Watch, true)
}

// RedLinksEnabled reports whether missing local links are marked.
func (c *Config) RedLinksEnabled() bool {
	return BoolValue(c.RedLinks, true)
}

// ResolveTheme returns the configured theme with style overrides applied.
func (c *Config) ResolveTheme() (theme.Theme, error) {
	t, ok := theme.ByName(c.Theme)
	if !ok {
		t = theme.Default()
	}
	if err := t.Apply(c.Styles); err != nil {
		return t, err
	}
	return t, nil
}
