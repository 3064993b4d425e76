// Package pretty provides Lipgloss-based styled output for the docnav
// commands that print to a terminal or pipe.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/yaklabco/docnav/pkg/page"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Message levels
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Listing components
	FilePath   lipgloss.Style
	LineNumber lipgloss.Style
	Number     lipgloss.Style
	Anchor     lipgloss.Style

	// Link kinds
	InternalLink lipgloss.Style
	AnchorLink   lipgloss.Style
	ExternalLink lipgloss.Style
	RedLink      lipgloss.Style
	Unsupported  lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),

		FilePath:   lipgloss.NewStyle().Bold(true),
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Number:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Anchor:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		InternalLink: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		AnchorLink:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		ExternalLink: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		RedLink:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Unsupported:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		Info:           plain,
		FilePath:       plain,
		LineNumber:     plain,
		Number:         plain,
		Anchor:         plain,
		InternalLink:   plain,
		AnchorLink:     plain,
		ExternalLink:   plain,
		RedLink:        plain,
		Unsupported:    plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// LinkKind returns the style for an activation kind.
func (s *Styles) LinkKind(kind page.ActivationKind) lipgloss.Style {
	switch kind {
	case page.ActivateInternal:
		return s.InternalLink
	case page.ActivateAnchor:
		return s.AnchorLink
	case page.ActivateExternal:
		return s.ExternalLink
	case page.ActivateRedLink:
		return s.RedLink
	default:
		return s.Unsupported
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// SetColor configures the default lipgloss renderer, which document styles
// render through. Enabled output is forced to 256 colours so piped output
// honours --color=always.
func SetColor(enabled bool) {
	if enabled {
		if lipgloss.ColorProfile() == termenv.Ascii {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}
