package doctree

import "strconv"

// Data is the payload carried by a node. The set of implementations is closed;
// consumers switch over the concrete types.
type Data interface {
	Kind() Kind
	isData()
}

// Root is the payload of node 0.
type Root struct {
	// Title is the document title, if the source provided one.
	Title string
}

// Header is a section heading. Its children hold the rendered title text.
type Header struct {
	Level  int
	Text   string
	Anchor string
}

// Paragraph groups inline content that ends with a blank line.
type Paragraph struct{}

// Text is a run of plain text.
type Text struct {
	Content string
}

// Emphasis applies a style effect to all of its descendants.
type Emphasis struct {
	Effect Effect
}

// Link is a selectable element. Its children hold the link text.
type Link struct {
	Target LinkTarget
	Title  string
}

// List holds ListItem children.
type List struct {
	Ordered bool
	Start   int
}

// ListItem is one entry in a List.
type ListItem struct{}

// CodeBlock is preformatted text rendered verbatim.
type CodeBlock struct {
	Language string
	Content  string
}

// Newline forces a line break.
type Newline struct{}

// Rule is a horizontal divider.
type Rule struct{}

// Unsupported stands in for source elements the parser could not map.
type Unsupported struct {
	Name string
}

func (Root) Kind() Kind        { return KindRoot }
func (Header) Kind() Kind      { return KindHeader }
func (Paragraph) Kind() Kind   { return KindParagraph }
func (Text) Kind() Kind        { return KindText }
func (Emphasis) Kind() Kind    { return KindEmphasis }
func (Link) Kind() Kind        { return KindLink }
func (List) Kind() Kind        { return KindList }
func (ListItem) Kind() Kind    { return KindListItem }
func (CodeBlock) Kind() Kind   { return KindCodeBlock }
func (Newline) Kind() Kind     { return KindNewline }
func (Rule) Kind() Kind        { return KindRule }
func (Unsupported) Kind() Kind { return KindUnsupported }

func (Root) isData()        {}
func (Header) isData()      {}
func (Paragraph) isData()   {}
func (Text) isData()        {}
func (Emphasis) isData()    {}
func (Link) isData()        {}
func (List) isData()        {}
func (ListItem) isData()    {}
func (CodeBlock) isData()   {}
func (Newline) isData()     {}
func (Rule) isData()        {}
func (Unsupported) isData() {}

// Effect is a style modifier contributed by an Emphasis node.
type Effect uint8

// Style effects.
const (
	EffectBold Effect = iota
	EffectItalic
	EffectCode
	EffectStrikethrough
	EffectUnderline
)

func (e Effect) String() string {
	switch e {
	case EffectBold:
		return "bold"
	case EffectItalic:
		return "italic"
	case EffectCode:
		return "code"
	case EffectStrikethrough:
		return "strikethrough"
	case EffectUnderline:
		return "underline"
	default:
		return "Effect(" + strconv.Itoa(int(e)) + ")"
	}
}

// LinkTarget classifies where a Link points.
type LinkTarget interface {
	// String returns the target as it would be written in a URL or page reference.
	String() string
	isLinkTarget()
}

// InternalTarget points at another page of the same collection.
type InternalTarget struct {
	Page   string
	Anchor string
}

// AnchorTarget points at a section of the current document.
type AnchorTarget struct {
	Anchor string
}

// ExternalTarget points outside the collection.
type ExternalTarget struct {
	URL string
}

// RedTarget points at a page that does not exist yet.
type RedTarget struct {
	Page string
}

// MediaTarget points at an image or other media file.
type MediaTarget struct {
	Href string
}

// InterwikiTarget points at a page of a different collection.
type InterwikiTarget struct {
	Prefix string
	Page   string
	URL    string
}

func (t InternalTarget) String() string {
	if t.Anchor == "" {
		return t.Page
	}
	return t.Page + "#" + t.Anchor
}

func (t AnchorTarget) String() string    { return "#" + t.Anchor }
func (t ExternalTarget) String() string  { return t.URL }
func (t RedTarget) String() string       { return t.Page }
func (t MediaTarget) String() string     { return t.Href }
func (t InterwikiTarget) String() string { return t.Prefix + ":" + t.Page }

func (InternalTarget) isLinkTarget()  {}
func (AnchorTarget) isLinkTarget()    {}
func (ExternalTarget) isLinkTarget()  {}
func (RedTarget) isLinkTarget()       {}
func (MediaTarget) isLinkTarget()     {}
func (InterwikiTarget) isLinkTarget() {}
