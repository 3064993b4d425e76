// Package theme defines the style tables the layout engine and the terminal
// front ends draw with.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/docnav/pkg/doctree"
)

// Style is a comparable description of how a run of text is drawn.
// Colours use lipgloss notation: ANSI indices ("12") or hex ("#7aa2f7").
type Style struct {
	Foreground    string `yaml:"fg,omitempty"`
	Background    string `yaml:"bg,omitempty"`
	Bold          bool   `yaml:"bold,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
	Faint         bool   `yaml:"faint,omitempty"`
	Reverse       bool   `yaml:"reverse,omitempty"`
}

// IsZero reports whether the style has no attributes.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Patch overlays other on s. Colours set in other replace those in s;
// attribute flags accumulate.
func (s Style) Patch(other Style) Style {
	if other.Foreground != "" {
		s.Foreground = other.Foreground
	}
	if other.Background != "" {
		s.Background = other.Background
	}
	s.Bold = s.Bold || other.Bold
	s.Italic = s.Italic || other.Italic
	s.Underline = s.Underline || other.Underline
	s.Strikethrough = s.Strikethrough || other.Strikethrough
	s.Faint = s.Faint || other.Faint
	s.Reverse = s.Reverse || other.Reverse
	return s
}

// Lipgloss converts the style for rendering.
func (s Style) Lipgloss() lipgloss.Style {
	out := lipgloss.NewStyle()
	if s.Foreground != "" {
		out = out.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		out = out.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		out = out.Bold(true)
	}
	if s.Italic {
		out = out.Italic(true)
	}
	if s.Underline {
		out = out.Underline(true)
	}
	if s.Strikethrough {
		out = out.Strikethrough(true)
	}
	if s.Faint {
		out = out.Faint(true)
	}
	if s.Reverse {
		out = out.Reverse(true)
	}
	return out
}

// Render draws text with the style.
func (s Style) Render(text string) string {
	if s.IsZero() {
		return text
	}
	return s.Lipgloss().Render(text)
}

// EffectStyle returns the style modifier for an emphasis effect.
func (t Theme) EffectStyle(effect doctree.Effect) Style {
	switch effect {
	case doctree.EffectBold:
		return Style{Bold: true}
	case doctree.EffectItalic:
		return Style{Italic: true}
	case doctree.EffectStrikethrough:
		return Style{Strikethrough: true}
	case doctree.EffectUnderline:
		return Style{Underline: true}
	case doctree.EffectCode:
		return t.Code
	default:
		return Style{}
	}
}
