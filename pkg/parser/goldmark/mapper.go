package goldmark

import (
	"bytes"
	"net/url"
	"path"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/langdetect"
	docparser "github.com/yaklabco/docnav/pkg/parser"
)

// mapper converts a goldmark AST into a doctree.
type mapper struct {
	content []byte
	exists  docparser.PageExists
	b       *doctree.Builder
	slugger *doctree.Slugger
	title   string
}

// newMapper creates a new mapper for the given content.
func newMapper(content []byte, exists docparser.PageExists) *mapper {
	return &mapper{
		content: content,
		exists:  exists,
		slugger: doctree.NewSlugger(),
	}
}

// mapDocument converts a goldmark document node to a tree.
func (m *mapper) mapDocument(gmDoc ast.Node) *doctree.Tree {
	m.b = doctree.NewBuilder(doctree.Root{})
	root := m.b.Current()
	m.mapChildren(gmDoc)
	m.b.Set(root, doctree.Root{Title: m.title})
	return m.b.Build()
}

// mapChildren maps all children of a goldmark node under the current node.
func (m *mapper) mapChildren(gmParent ast.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		m.mapNode(child)
	}
}

// open maps the children of gmNode inside a new node carrying data.
func (m *mapper) open(data doctree.Data, gmNode ast.Node) int {
	idx := m.b.Open(data)
	m.mapChildren(gmNode)
	m.b.Close()
	return idx
}

// mapNode converts a single goldmark node.
func (m *mapper) mapNode(gmNode ast.Node) {
	switch gmn := gmNode.(type) {
	// Block-level nodes.
	case *ast.Heading:
		m.mapHeading(gmn)

	case *ast.Paragraph:
		m.open(doctree.Paragraph{}, gmn)

	case *ast.TextBlock, *ast.Blockquote:
		m.mapChildren(gmn)

	case *ast.List:
		m.open(doctree.List{Ordered: gmn.IsOrdered(), Start: gmn.Start}, gmn)

	case *ast.ListItem:
		m.open(doctree.ListItem{}, gmn)

	case *ast.FencedCodeBlock:
		info := ""
		if gmn.Info != nil {
			info = string(gmn.Info.Value(m.content))
		}
		m.mapCodeBlock(info, gmn)

	case *ast.CodeBlock:
		m.mapCodeBlock("", gmn)

	case *ast.ThematicBreak:
		m.b.Leaf(doctree.Rule{})

	case *ast.HTMLBlock:
		m.b.Leaf(doctree.Unsupported{Name: "html"})

	// Inline-level nodes.
	case *ast.Text:
		m.mapText(gmn)

	case *ast.String:
		m.b.Leaf(doctree.Text{Content: string(gmn.Value)})

	case *ast.Emphasis:
		effect := doctree.EffectItalic
		if gmn.Level >= 2 {
			effect = doctree.EffectBold
		}
		m.open(doctree.Emphasis{Effect: effect}, gmn)

	case *ast.CodeSpan:
		m.b.Open(doctree.Emphasis{Effect: doctree.EffectCode})
		m.b.Leaf(doctree.Text{Content: m.plainText(gmn)})
		m.b.Close()

	case *ast.Link:
		m.open(doctree.Link{
			Target: classify(string(gmn.Destination), m.exists),
			Title:  string(gmn.Title),
		}, gmn)

	case *ast.Image:
		m.b.Open(doctree.Link{
			Target: doctree.MediaTarget{Href: string(gmn.Destination)},
			Title:  string(gmn.Title),
		})
		if alt := m.plainText(gmn); alt != "" {
			m.b.Leaf(doctree.Text{Content: alt})
		}
		m.b.Close()

	case *ast.AutoLink:
		dest := string(gmn.URL(m.content))
		if gmn.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(dest, "mailto:") {
			dest = "mailto:" + dest
		}
		m.b.Open(doctree.Link{Target: doctree.ExternalTarget{URL: dest}})
		m.b.Leaf(doctree.Text{Content: string(gmn.Label(m.content))})
		m.b.Close()

	case *ast.RawHTML:
		// Inline HTML carries no readable text.

	// GFM extension nodes.
	case *east.Strikethrough:
		m.open(doctree.Emphasis{Effect: doctree.EffectStrikethrough}, gmn)

	case *east.TaskCheckBox:
		box := "[ ] "
		if gmn.IsChecked {
			box = "[x] "
		}
		m.b.Leaf(doctree.Text{Content: box})

	case *east.Table:
		m.mapTable(gmn)

	default:
		if gmNode.HasChildren() {
			m.mapChildren(gmNode)
			return
		}
		m.b.Leaf(doctree.Unsupported{Name: gmNode.Kind().String()})
	}
}

// mapHeading records the heading text and a unique anchor up front so the
// header payload is complete when it is opened.
func (m *mapper) mapHeading(h *ast.Heading) {
	title := m.plainText(h)
	if m.title == "" && h.Level == 1 {
		m.title = title
	}
	m.open(doctree.Header{
		Level:  h.Level,
		Text:   title,
		Anchor: m.slugger.Anchor(title),
	}, h)
}

func (m *mapper) mapText(t *ast.Text) {
	content := string(t.Value(m.content))
	if t.SoftLineBreak() {
		content += " "
	}
	if content != "" {
		m.b.Leaf(doctree.Text{Content: content})
	}
	if t.HardLineBreak() {
		m.b.Leaf(doctree.Newline{})
	}
}

func (m *mapper) mapCodeBlock(info string, block ast.Node) {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		buf.Write(seg.Value(m.content))
	}
	content := buf.Bytes()

	m.b.Leaf(doctree.CodeBlock{
		Language: langdetect.Resolve(info, content),
		Content:  string(content),
	})
}

// mapTable renders each row as one line with cells separated by bars.
func (m *mapper) mapTable(table *east.Table) {
	m.b.Open(doctree.Paragraph{})
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if cell != row.FirstChild() {
				m.b.Leaf(doctree.Text{Content: " | "})
			}
			if _, header := row.(*east.TableHeader); header {
				m.open(doctree.Emphasis{Effect: doctree.EffectBold}, cell)
				continue
			}
			m.mapChildren(cell)
		}
		m.b.Leaf(doctree.Newline{})
	}
	m.b.Close()
}

// plainText concatenates the text below n.
func (m *mapper) plainText(n ast.Node) string {
	var buf bytes.Buffer
	//nolint:errcheck // the walker never returns an error
	ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := node.(type) {
		case *ast.Text:
			buf.Write(t.Value(m.content))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

var mediaExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".bmp": true, ".mp4": true,
	".webm": true, ".mp3": true, ".ogg": true,
}

// classify derives the link target from a Markdown destination.
func classify(dest string, exists docparser.PageExists) doctree.LinkTarget {
	if anchor, ok := strings.CutPrefix(dest, "#"); ok {
		return doctree.AnchorTarget{Anchor: anchor}
	}

	u, err := url.Parse(dest)
	if err == nil && u.Scheme != "" {
		return doctree.ExternalTarget{URL: dest}
	}
	if strings.HasPrefix(dest, "//") {
		return doctree.ExternalTarget{URL: dest}
	}

	page, anchor, _ := strings.Cut(dest, "#")
	if mediaExtensions[strings.ToLower(path.Ext(page))] {
		return doctree.MediaTarget{Href: dest}
	}
	if page != "" && exists != nil && !exists(page) {
		return doctree.RedTarget{Page: page}
	}
	return doctree.InternalTarget{Page: page, Anchor: anchor}
}
