package pretty

import (
	"strings"

	"github.com/yaklabco/docnav/pkg/toc"
)

// FormatContents lists the entries of a contents index, indented by level.
func (s *Styles) FormatContents(index *toc.Index) string {
	var b strings.Builder
	for _, e := range index.Entries() {
		depth := max(e.Level-1, 0)
		b.WriteString(strings.Repeat("  ", depth))
		if e.Number != "" {
			b.WriteString(s.Number.Render(e.Number))
			b.WriteString(" ")
		}
		b.WriteString(e.Title)
		if e.Anchor != "" {
			b.WriteString("  ")
			b.WriteString(s.Anchor.Render("#" + e.Anchor))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatFileHeader formats the heading printed above each document's listing.
func (s *Styles) FormatFileHeader(path string) string {
	return s.FilePath.Render(path)
}
