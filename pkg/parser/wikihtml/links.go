package wikihtml

import (
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/yaklabco/docnav/pkg/doctree"
)

const articlePath = "/wiki/"

var mediaNamespaces = []string{"File:", "Image:", "Media:"}

// classify derives the link target from the classes and href MediaWiki puts
// on an anchor element.
func classify(n *html.Node) doctree.LinkTarget {
	href := attr(n, "href")
	cls := classes(n)

	switch {
	case slices.Contains(cls, "new"):
		page := attr(n, "title")
		if page == "" {
			page = redLinkTitle(href)
		}
		page = strings.TrimSuffix(page, " (page does not exist)")
		return doctree.RedTarget{Page: page}

	case slices.Contains(cls, "extiw"):
		prefix, page, _ := strings.Cut(attr(n, "title"), ":")
		return doctree.InterwikiTarget{Prefix: prefix, Page: page, URL: href}

	case slices.Contains(cls, "mw-file-description") || slices.Contains(cls, "image"):
		return doctree.MediaTarget{Href: href}

	case slices.Contains(cls, "external"):
		return doctree.ExternalTarget{URL: href}
	}

	if anchor, ok := strings.CutPrefix(href, "#"); ok {
		return doctree.AnchorTarget{Anchor: anchor}
	}

	if rest, ok := strings.CutPrefix(href, articlePath); ok {
		page, anchor, _ := strings.Cut(rest, "#")
		page = pageTitle(page)
		for _, ns := range mediaNamespaces {
			if strings.HasPrefix(page, ns) {
				return doctree.MediaTarget{Href: href}
			}
		}
		return doctree.InternalTarget{Page: page, Anchor: anchor}
	}

	return doctree.ExternalTarget{URL: href}
}

// pageTitle turns a path segment such as "Go_(programming_language)" into a
// page title.
func pageTitle(segment string) string {
	if unescaped, err := url.PathUnescape(segment); err == nil {
		segment = unescaped
	}
	return strings.ReplaceAll(segment, "_", " ")
}

// redLinkTitle reads the title parameter of an edit link.
func redLinkTitle(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if title := u.Query().Get("title"); title != "" {
		return pageTitle(title)
	}
	return href
}
