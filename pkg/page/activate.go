package page

import (
	"fmt"

	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/pkg/doctree"
)

// ActivationKind classifies what activating the selection means.
type ActivationKind uint8

// Activation kinds.
const (
	// ActivateIgnored means nothing activatable is selected.
	ActivateIgnored ActivationKind = iota
	ActivateInternal
	ActivateAnchor
	ActivateExternal
	ActivateRedLink
	ActivateUnsupported
)

func (k ActivationKind) String() string {
	switch k {
	case ActivateIgnored:
		return "ignored"
	case ActivateInternal:
		return "internal"
	case ActivateAnchor:
		return "anchor"
	case ActivateExternal:
		return "external"
	case ActivateRedLink:
		return "red-link"
	case ActivateUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("ActivationKind(%d)", uint8(k))
	}
}

// Activation describes the selected link for the host to act on.
type Activation struct {
	Kind    ActivationKind
	Node    int
	Target  doctree.LinkTarget
	Message string
}

// Classify describes what following target means.
func Classify(target doctree.LinkTarget) (ActivationKind, string) {
	switch t := target.(type) {
	case doctree.InternalTarget:
		return ActivateInternal, fmt.Sprintf("Open page %q?", t.String())
	case doctree.AnchorTarget:
		return ActivateAnchor, fmt.Sprintf("Jump to section %q", t.Anchor)
	case doctree.ExternalTarget:
		return ActivateExternal, "External link: " + t.URL
	case doctree.RedTarget:
		return ActivateRedLink, fmt.Sprintf("The page %q does not exist yet", t.Page)
	case doctree.MediaTarget:
		return ActivateUnsupported, "Media links are not supported: " + t.Href
	case doctree.InterwikiTarget:
		return ActivateUnsupported, "Links to other wikis are not supported: " + t.String()
	default:
		return ActivateUnsupported, "This link cannot be followed"
	}
}

// Activate classifies the selected link. It never changes the page.
func (p *Page) Activate() Activation {
	n, link, ok := p.SelectedLink()
	if !ok {
		p.logger.Debug("activate: no link selected", logging.FieldSelection, p.selection)
		return Activation{Kind: ActivateIgnored, Node: -1}
	}

	kind, message := Classify(link.Target)
	p.logger.Debug("activate", logging.FieldNode, n.Index(), logging.FieldTarget, link.Target, logging.FieldEvent, kind)

	return Activation{
		Kind:    kind,
		Node:    n.Index(),
		Target:  link.Target,
		Message: message,
	}
}
