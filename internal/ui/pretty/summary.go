package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/docnav/pkg/loader"
)

// FormatSummaryOneLine formats load statistics as a single line.
// Example: "3 documents, 42 links, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats loader.Stats) string {
	parts := []string{
		plural(stats.Loaded, "document", "documents"),
		plural(stats.Links, "link", "links"),
	}

	if stats.Errored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.Errored)))
	}

	line := strings.Join(parts, ", ")
	if stats.Errored == 0 {
		line = s.Success.Render(line)
	}
	return line + "\n"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
