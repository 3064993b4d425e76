// Package wikihtml parses rendered MediaWiki article HTML into a document
// tree, keeping the link classes MediaWiki emits (red links, interwiki,
// external, media).
package wikihtml

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/langdetect"
)

// contentSelector locates the article body in a full page.
const contentSelector = ".mw-parser-output"

// stripSelector removes page furniture that has no place in the text.
const stripSelector = "script, style, .mw-editsection, sup.reference, .reflist, " +
	".navbox, .mw-empty-elt, .noprint, .mw-jump-link, #toc, .toc"

// Parser implements parser.Parser for MediaWiki HTML.
type Parser struct {
	// withTitle prepends the article title as a level 1 header.
	withTitle bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithoutTitle disables the leading title header.
func WithoutTitle() Option {
	return func(p *Parser) {
		p.withTitle = false
	}
}

// New creates a MediaWiki HTML parser.
func New(opts ...Option) *Parser {
	p := &Parser{withTitle: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts article HTML into a document tree. The name is used as the
// title when the page does not carry one.
func (p *Parser) Parse(ctx context.Context, name string, content []byte) (*doctree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse %s cancelled: %w", name, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	title := articleTitle(doc, name)

	body := doc.Find(contentSelector).First()
	if body.Length() == 0 {
		body = doc.Find("body").First()
	}
	body.Find(stripSelector).Remove()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse %s cancelled: %w", name, err)
	}

	w := &walker{
		b:       doctree.NewBuilder(doctree.Root{Title: title}),
		slugger: doctree.NewSlugger(),
	}
	if p.withTitle && title != "" {
		w.b.Open(doctree.Header{Level: 1, Text: title, Anchor: w.slugger.Anchor(title)})
		w.b.Leaf(doctree.Text{Content: title})
		w.b.Close()
	}
	for _, n := range body.Nodes {
		w.children(n, false)
	}

	return w.b.Build(), nil
}

// articleTitle prefers the rendered heading, then the document title.
func articleTitle(doc *goquery.Document, fallback string) string {
	if t := strings.TrimSpace(doc.Find("#firstHeading").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		t, _, _ = strings.Cut(t, " - ")
		return strings.TrimSpace(t)
	}
	return fallback
}

type walker struct {
	b       *doctree.Builder
	slugger *doctree.Slugger
}

func (w *walker) children(n *html.Node, inline bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.node(c, inline)
	}
}

func (w *walker) wrap(data doctree.Data, n *html.Node, inline bool) {
	w.b.Open(data)
	w.children(n, inline)
	w.b.Close()
}

func (w *walker) node(n *html.Node, inline bool) {
	switch n.Type {
	case html.TextNode:
		if !inline && strings.TrimSpace(n.Data) == "" {
			return
		}
		w.b.Leaf(doctree.Text{Content: n.Data})
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		w.header(n)

	case atom.P:
		w.wrap(doctree.Paragraph{}, n, true)

	case atom.A:
		w.wrap(doctree.Link{Target: classify(n), Title: attr(n, "title")}, n, true)

	case atom.B, atom.Strong:
		w.wrap(doctree.Emphasis{Effect: doctree.EffectBold}, n, true)
	case atom.I, atom.Em, atom.Cite, atom.Var:
		w.wrap(doctree.Emphasis{Effect: doctree.EffectItalic}, n, true)
	case atom.Code, atom.Tt, atom.Kbd, atom.Samp:
		w.wrap(doctree.Emphasis{Effect: doctree.EffectCode}, n, true)
	case atom.S, atom.Del, atom.Strike:
		w.wrap(doctree.Emphasis{Effect: doctree.EffectStrikethrough}, n, true)
	case atom.U, atom.Ins:
		w.wrap(doctree.Emphasis{Effect: doctree.EffectUnderline}, n, true)

	case atom.Ul, atom.Dl:
		w.wrap(doctree.List{}, n, false)
	case atom.Ol:
		w.wrap(doctree.List{Ordered: true, Start: atoi(attr(n, "start"))}, n, false)
	case atom.Li, atom.Dt, atom.Dd:
		w.wrap(doctree.ListItem{}, n, true)

	case atom.Pre:
		w.b.Leaf(doctree.CodeBlock{
			Language: codeLanguage(n),
			Content:  textContent(n),
		})

	case atom.Br:
		w.b.Leaf(doctree.Newline{})
	case atom.Hr:
		w.b.Leaf(doctree.Rule{})

	case atom.Table, atom.Figure, atom.Img, atom.Audio, atom.Video, atom.Math:
		w.b.Leaf(doctree.Unsupported{Name: n.Data})

	default:
		w.children(n, inline)
	}
}

// header reads the anchor from the headline span of older MediaWiki output
// or from the heading id of newer output.
func (w *walker) header(n *html.Node) {
	level := int(n.Data[1] - '0')
	text := strings.Join(strings.Fields(textContent(n)), " ")

	source := n
	anchor := attr(n, "id")
	if headline := findClass(n, "mw-headline"); headline != nil {
		source = headline
		if id := attr(headline, "id"); id != "" {
			anchor = id
		}
	}
	if anchor == "" {
		anchor = w.slugger.Anchor(text)
	} else {
		w.slugger.Reserve(anchor)
	}

	w.b.Open(doctree.Header{Level: level, Text: text, Anchor: anchor})
	w.children(source, true)
	w.b.Close()
}

// codeLanguage reads highlighter classes such as mw-highlight-lang-python on
// the pre element or its wrapper.
func codeLanguage(n *html.Node) string {
	for cur := n; cur != nil && cur.Type == html.ElementNode; cur = cur.Parent {
		for _, class := range classes(cur) {
			if lang, ok := strings.CutPrefix(class, "mw-highlight-lang-"); ok {
				return langdetect.Resolve(lang, []byte(textContent(n)))
			}
			if lang, ok := strings.CutPrefix(class, "lang-"); ok {
				return langdetect.Resolve(lang, []byte(textContent(n)))
			}
		}
		if lang := attr(cur, "lang"); lang != "" && cur == n {
			return langdetect.Resolve(lang, []byte(textContent(n)))
		}
	}
	return langdetect.Detect([]byte(textContent(n)))
}
