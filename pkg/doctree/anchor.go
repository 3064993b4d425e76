package doctree

import (
	"strconv"
	"strings"
	"unicode"
)

// Slugger turns heading text into unique, GitHub-compatible anchors.
type Slugger struct {
	// seen tracks how many times each base anchor has been handed out.
	seen map[string]int
}

// NewSlugger creates an empty Slugger.
func NewSlugger() *Slugger {
	return &Slugger{seen: make(map[string]int)}
}

// Anchor converts heading text to an anchor, adding -1, -2 suffixes for
// repeated headings.
func (s *Slugger) Anchor(text string) string {
	base := Slug(text)

	count := s.seen[base]
	s.seen[base] = count + 1

	if count == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(count)
}

// Reserve marks an anchor as taken without generating one.
func (s *Slugger) Reserve(anchor string) {
	s.seen[anchor]++
}

// Slug converts heading text to a base anchor:
//  1. Convert to lowercase
//  2. Remove punctuation (except hyphens and underscores)
//  3. Replace spaces with hyphens
//  4. Collapse multiple hyphens
//  5. Trim leading/trailing hyphens
func Slug(text string) string {
	var buf strings.Builder
	buf.Grow(len(text))

	prevHyphen := false

	for _, ch := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(ch) || unicode.IsNumber(ch):
			buf.WriteRune(ch)
			prevHyphen = false
		case ch == '-' || ch == '_':
			buf.WriteRune(ch)
			prevHyphen = ch == '-'
		case unicode.IsSpace(ch):
			if !prevHyphen && buf.Len() > 0 {
				_ = buf.WriteByte('-') // strings.Builder.WriteByte never fails
				prevHyphen = true
			}
		}
	}

	result := strings.Trim(buf.String(), "-")

	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}

	return result
}
