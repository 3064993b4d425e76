// Package langdetect names the language of code blocks, either from the tag a
// document supplies or by inspecting the code itself with go-enry.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language can be determined.
const Text = "text"

// candidates restricts the classifier to languages likely to appear in docs.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// rule recognises a language from unmistakable markers.
type rule struct {
	lang  string
	match func(content, trimmed []byte) bool
}

// rules are checked in order of specificity.
var rules = []rule{
	{"go", func(_, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("package "))
	}},
	{"python", func(content, _ []byte) bool {
		s := string(content)
		if strings.Contains(s, "def ") && strings.Contains(s, "):") {
			return true
		}
		if strings.Contains(s, "__name__") || strings.Contains(s, "__main__") {
			return true
		}
		return strings.Contains(s, "import ") && !strings.Contains(s, "import (") &&
			(strings.Contains(s, "from ") || strings.HasPrefix(strings.TrimSpace(s), "import "))
	}},
	{"html", func(_, trimmed []byte) bool {
		lower := bytes.ToLower(trimmed)
		for _, marker := range []string{"<!doctype html", "<html", "<head>", "<body>"} {
			if bytes.Contains(lower, []byte(marker)) {
				return true
			}
		}
		return false
	}},
	{"json", func(_, trimmed []byte) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`"`))
	}},
	{"dockerfile", func(content, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
			(bytes.Contains(content, []byte("\nFROM ")) && bytes.Contains(content, []byte("\nRUN "))) ||
			(bytes.Contains(content, []byte("WORKDIR ")) && bytes.Contains(content, []byte("COPY ")))
	}},
	{"sql", func(_, trimmed []byte) bool {
		upper := strings.ToUpper(string(trimmed))
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"rust", func(content, _ []byte) bool {
		s := string(content)
		return strings.Contains(s, "fn main()") || strings.Contains(s, "println!") || strings.Contains(s, "let mut ")
	}},
	{"javascript", func(content, _ []byte) bool {
		s := string(content)
		return strings.Contains(s, "=>") || strings.Contains(s, "const ") ||
			strings.Contains(s, "let ") || strings.Contains(s, "console.log")
	}},
	{"yaml", func(content, _ []byte) bool {
		return yamlKeys(content) >= 2
	}},
}

// Detect returns the language of code content, or Text when unsure.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(content)
	for _, r := range rules {
		if r.match(content, trimmed) {
			return r.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

// FromInfo resolves the tag attached to a code block, such as a Markdown
// fence info string ("go", "py title=x") or a highlighter class suffix. It
// returns "" for an empty or unknown tag.
func FromInfo(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	tag := strings.TrimPrefix(strings.TrimPrefix(fields[0], "{"), ".")
	tag = strings.TrimSuffix(tag, "}")

	if lang, ok := enry.GetLanguageByAlias(tag); ok {
		return normalize(lang)
	}
	if lang, safe := enry.GetLanguageByExtension("file." + tag); safe {
		return normalize(lang)
	}
	return ""
}

// Resolve prefers the tag and falls back to inspecting content.
func Resolve(info string, content []byte) string {
	if lang := FromInfo(info); lang != "" {
		return lang
	}
	return Detect(content)
}

// yamlKeys counts lines that look like YAML mappings or sequence items.
func yamlKeys(content []byte) int {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count
}

// normalize converts go-enry language names to short tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
