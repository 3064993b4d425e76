package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sanity-io/litter"

	"github.com/yaklabco/docnav/pkg/doctree"
)

var dumper = litter.Options{
	Compact:           true,
	StripPackageNames: true,
	HidePrivateFields: true,
}

// renderDebug produces the outline and dump modes. Each node starts a new
// line; links are indexed at the line of their node so navigation keeps
// working.
func renderDebug(tree *doctree.Tree, width int, opts Options) ([]Line, []LinkLine) {
	w := newWriter(width)
	th := opts.Theme
	label := th.Text.Patch(th.Debug)

	for n := range tree.All() {
		idx := n.Index()
		indent := 0
		if opts.Mode != ModeNodeRaw {
			indent = n.Depth() * opts.Indent
		}

		w.flush()
		w.indent = indent
		if n.Kind() == doctree.KindLink {
			w.markLink(idx)
		}

		switch opts.Mode {
		case ModeTreeRaw:
			w.word(strconv.Itoa(idx), 1, label, idx)
			w.word(n.Kind().String(), 0, th.Text, idx)

		case ModeTreeData:
			w.word(n.Kind().String(), 1, label, idx)
			w.text(summary(n.Data()), th.Text, idx)

		case ModeNodeRaw:
			w.word(strconv.Itoa(idx)+":", 1, label, idx)
			w.text(dumper.Sdump(n.Data()), th.Text, idx)
		}
	}

	return w.finish()
}

// summary describes a node payload in one line.
func summary(data doctree.Data) string {
	switch d := data.(type) {
	case doctree.Root:
		if d.Title == "" {
			return ""
		}
		return strconv.Quote(d.Title)
	case doctree.Header:
		return fmt.Sprintf("h%d %q #%s", d.Level, d.Text, d.Anchor)
	case doctree.Text:
		return strconv.Quote(d.Content)
	case doctree.Emphasis:
		return d.Effect.String()
	case doctree.Link:
		return describeTarget(d.Target)
	case doctree.List:
		if d.Ordered {
			return "ordered from " + strconv.Itoa(max(d.Start, 1))
		}
		return "unordered"
	case doctree.CodeBlock:
		lines := strings.Count(strings.TrimRight(d.Content, "\n"), "\n") + 1
		lang := d.Language
		if lang == "" {
			lang = "plain"
		}
		return fmt.Sprintf("%s, %d lines", lang, lines)
	case doctree.Unsupported:
		return d.Name
	default:
		return ""
	}
}

func describeTarget(target doctree.LinkTarget) string {
	switch t := target.(type) {
	case doctree.InternalTarget:
		return "internal → " + t.String()
	case doctree.AnchorTarget:
		return "anchor → " + t.String()
	case doctree.ExternalTarget:
		return "external → " + t.URL
	case doctree.RedTarget:
		return "red → " + t.Page
	case doctree.MediaTarget:
		return "media → " + t.Href
	case doctree.InterwikiTarget:
		return "interwiki → " + t.String()
	default:
		return "no target"
	}
}
