package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yaklabco/docnav/pkg/theme"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full lists every style name and theme with commented examples.
	// If false, generates a minimal template.
	Full bool
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")

	fmt.Fprintf(&buf, "# Theme: %s\n", strings.Join(theme.Available(), ", "))
	fmt.Fprintf(&buf, "theme: %s\n\n", theme.DefaultName)

	buf.WriteString(`# Markdown flavor: commonmark or gfm
flavor: gfm

# Render mode: default, tree-data, tree-raw, node-raw
mode: default

# Mark links to missing local files
red_links: true

# Reload the document when it changes on disk
watch: true

# Table of contents sidebar
contents:
  show: false
  include_top: true
  width_percent: 30
`)

	if !opts.Full {
		buf.WriteString(`
# Style overrides
# styles:
#   link:
#     fg: "12"
#     underline: true
`)
		return buf.Bytes()
	}

	fmt.Fprintf(&buf, `
# Rendered widths kept per document (0 = unbounded)
cache_size: %d

# Lines moved per scroll step
scroll_amount: %d

# Log level for --log-file: debug, info, warn, error
log_level: %s

# Glob patterns skipped when loading directories
ignore:
  - "vendor/**"
  - "node_modules/**"

# Style overrides. Colours are ANSI indices ("12") or hex ("#7aa2f7").
# Flags: bold, italic, underline, strikethrough, faint, reverse.
styles:
`, DefaultCacheSize, DefaultScrollAmount, DefaultLogLevel)

	for _, name := range theme.StyleNames() {
		fmt.Fprintf(&buf, "  # %s:\n  #   fg: \"\"\n", name)
	}

	return buf.Bytes()
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# docnav configuration
# See: https://github.com/yaklabco/docnav`
}
