package theme

import (
	"fmt"
	"sort"

	"github.com/yaklabco/docnav/pkg/doctree"
)

// Theme groups the named styles used for document content and the chrome
// around it.
type Theme struct {
	Name string

	// Document content.
	Text         Style
	Title        Style
	Header       [6]Style
	Link         Style
	ExternalLink Style
	RedLink      Style
	MediaLink    Style
	Code         Style
	ListMarker   Style
	Rule         Style
	Debug        Style

	// Chrome.
	Selection       Style
	Border          Style
	BorderHighlight Style
	StatusBar       Style
	ScrollbarTrack  Style
	ScrollbarThumb  Style
	Popup           Style
}

// HeaderStyle returns the style for a header of the given level (1-6).
func (t Theme) HeaderStyle(level int) Style {
	switch {
	case level < 1:
		level = 1
	case level > len(t.Header):
		level = len(t.Header)
	}
	return t.Header[level-1]
}

// LinkStyle returns the style for a link pointing at target.
func (t Theme) LinkStyle(target doctree.LinkTarget) Style {
	switch target.(type) {
	case doctree.ExternalTarget, doctree.InterwikiTarget:
		return t.ExternalLink
	case doctree.RedTarget:
		return t.RedLink
	case doctree.MediaTarget:
		return t.MediaLink
	default:
		return t.Link
	}
}

// StyleNames lists the names accepted by Set, in a stable order.
func StyleNames() []string {
	names := make([]string, 0, 24)
	var t Theme
	for name := range t.fields() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set replaces the style registered under name.
func (t *Theme) Set(name string, style Style) error {
	field, ok := t.fields()[name]
	if !ok {
		return fmt.Errorf("unknown style %q", name)
	}
	*field = style
	return nil
}

// Get returns the style registered under name.
func (t *Theme) Get(name string) (Style, bool) {
	field, ok := t.fields()[name]
	if !ok {
		return Style{}, false
	}
	return *field, true
}

// Apply patches every named override onto the theme.
func (t *Theme) Apply(overrides map[string]Style) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field, ok := t.fields()[name]
		if !ok {
			return fmt.Errorf("unknown style %q", name)
		}
		*field = field.Patch(overrides[name])
	}
	return nil
}

func (t *Theme) fields() map[string]*Style {
	return map[string]*Style{
		"text":             &t.Text,
		"title":            &t.Title,
		"h1":               &t.Header[0],
		"h2":               &t.Header[1],
		"h3":               &t.Header[2],
		"h4":               &t.Header[3],
		"h5":               &t.Header[4],
		"h6":               &t.Header[5],
		"link":             &t.Link,
		"external_link":    &t.ExternalLink,
		"red_link":         &t.RedLink,
		"media_link":       &t.MediaLink,
		"code":             &t.Code,
		"list_marker":      &t.ListMarker,
		"rule":             &t.Rule,
		"debug":            &t.Debug,
		"selection":        &t.Selection,
		"border":           &t.Border,
		"border_highlight": &t.BorderHighlight,
		"status_bar":       &t.StatusBar,
		"scrollbar_track":  &t.ScrollbarTrack,
		"scrollbar_thumb":  &t.ScrollbarThumb,
		"popup":            &t.Popup,
	}
}
