package theme

import "sort"

// DefaultName is the theme used when none is configured.
const DefaultName = "default"

func headers(styles ...Style) [6]Style {
	var out [6]Style
	for i := range out {
		out[i] = styles[min(i, len(styles)-1)]
	}
	return out
}

var builtinThemes = map[string]Theme{
	"default": {
		Name:            "default",
		Title:           Style{Foreground: "15", Bold: true, Underline: true},
		Header:          headers(Style{Foreground: "12", Bold: true}, Style{Foreground: "14", Bold: true}, Style{Foreground: "14"}),
		Link:            Style{Foreground: "12", Underline: true},
		ExternalLink:    Style{Foreground: "13", Underline: true},
		RedLink:         Style{Foreground: "9", Underline: true},
		MediaLink:       Style{Foreground: "11", Underline: true},
		Code:            Style{Foreground: "10"},
		ListMarker:      Style{Foreground: "8"},
		Rule:            Style{Foreground: "8"},
		Debug:           Style{Foreground: "8"},
		Selection:       Style{Reverse: true},
		Border:          Style{Foreground: "8"},
		BorderHighlight: Style{Foreground: "12"},
		StatusBar:       Style{Foreground: "7", Background: "236"},
		ScrollbarTrack:  Style{Foreground: "238"},
		ScrollbarThumb:  Style{Foreground: "12"},
		Popup:           Style{Foreground: "15", Background: "237"},
	},
	"dark": {
		Name:            "dark",
		Text:            Style{Foreground: "#c0caf5"},
		Title:           Style{Foreground: "#e0af68", Bold: true, Underline: true},
		Header:          headers(Style{Foreground: "#7aa2f7", Bold: true}, Style{Foreground: "#7dcfff", Bold: true}, Style{Foreground: "#7dcfff"}),
		Link:            Style{Foreground: "#7aa2f7", Underline: true},
		ExternalLink:    Style{Foreground: "#bb9af7", Underline: true},
		RedLink:         Style{Foreground: "#f7768e", Underline: true},
		MediaLink:       Style{Foreground: "#e0af68", Underline: true},
		Code:            Style{Foreground: "#9ece6a"},
		ListMarker:      Style{Foreground: "#565f89"},
		Rule:            Style{Foreground: "#565f89"},
		Debug:           Style{Foreground: "#565f89"},
		Selection:       Style{Background: "#33467c"},
		Border:          Style{Foreground: "#3b4261"},
		BorderHighlight: Style{Foreground: "#7aa2f7"},
		StatusBar:       Style{Foreground: "#a9b1d6", Background: "#1f2335"},
		ScrollbarTrack:  Style{Foreground: "#3b4261"},
		ScrollbarThumb:  Style{Foreground: "#7aa2f7"},
		Popup:           Style{Foreground: "#c0caf5", Background: "#292e42"},
	},
	"light": {
		Name:            "light",
		Text:            Style{Foreground: "#3760bf"},
		Title:           Style{Foreground: "#8c6c3e", Bold: true, Underline: true},
		Header:          headers(Style{Foreground: "#2e7de9", Bold: true}, Style{Foreground: "#007197", Bold: true}, Style{Foreground: "#007197"}),
		Link:            Style{Foreground: "#2e7de9", Underline: true},
		ExternalLink:    Style{Foreground: "#9854f1", Underline: true},
		RedLink:         Style{Foreground: "#f52a65", Underline: true},
		MediaLink:       Style{Foreground: "#8c6c3e", Underline: true},
		Code:            Style{Foreground: "#587539"},
		ListMarker:      Style{Foreground: "#848cb5"},
		Rule:            Style{Foreground: "#848cb5"},
		Debug:           Style{Foreground: "#848cb5"},
		Selection:       Style{Background: "#b7c1e3"},
		Border:          Style{Foreground: "#a8aecb"},
		BorderHighlight: Style{Foreground: "#2e7de9"},
		StatusBar:       Style{Foreground: "#6172b0", Background: "#d0d5e3"},
		ScrollbarTrack:  Style{Foreground: "#a8aecb"},
		ScrollbarThumb:  Style{Foreground: "#2e7de9"},
		Popup:           Style{Foreground: "#3760bf", Background: "#e1e2e7"},
	},
	"mono": {
		Name:            "mono",
		Title:           Style{Bold: true, Underline: true},
		Header:          headers(Style{Bold: true}),
		Link:            Style{Underline: true},
		ExternalLink:    Style{Underline: true, Italic: true},
		RedLink:         Style{Underline: true, Strikethrough: true},
		MediaLink:       Style{Underline: true, Faint: true},
		Code:            Style{Faint: true},
		ListMarker:      Style{Faint: true},
		Rule:            Style{Faint: true},
		Debug:           Style{Faint: true},
		Selection:       Style{Reverse: true},
		BorderHighlight: Style{Bold: true},
		StatusBar:       Style{Reverse: true},
		ScrollbarThumb:  Style{Reverse: true},
		Popup:           Style{Reverse: true},
	},
}

// Default returns the default theme.
func Default() Theme {
	return builtinThemes[DefaultName]
}

// ByName returns the built-in theme with the given name.
func ByName(name string) (Theme, bool) {
	t, ok := builtinThemes[name]
	return t, ok
}

// Available returns the names of built-in themes.
func Available() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
