package langdetect_test

import (
	"testing"

	"github.com/yaklabco/docnav/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "shebang bash",
			content:  "#!/bin/bash\necho hello",
			expected: "bash",
		},
		{
			name:     "shebang sh",
			content:  "#!/bin/sh\necho hello",
			expected: "bash",
		},
		{
			name:     "shebang python",
			content:  "#!/usr/bin/env python3\nprint('hello')",
			expected: "python",
		},
		{
			name:     "go code",
			content:  "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}",
			expected: "go",
		},
		{
			name:     "python code",
			content:  "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()",
			expected: "python",
		},
		{
			name:     "javascript code",
			content:  "const x = () => { return 42; };\nconsole.log(x());",
			expected: "javascript",
		},
		{
			name:     "json object",
			content:  `{"key": "value", "number": 123}`,
			expected: "json",
		},
		{
			name:     "yaml content",
			content:  "key: value\nother: 123\nlist:\n  - item1\n  - item2",
			expected: "yaml",
		},
		{
			name:     "rust code",
			content:  "fn main() {\n    println!(\"Hello, world!\");\n}",
			expected: "rust",
		},
		{
			name:     "plain text fallback",
			content:  "just some text without any code patterns",
			expected: "text",
		},
		{
			name:     "empty content fallback",
			content:  "",
			expected: "text",
		},
		{
			name:     "sql query",
			content:  "SELECT * FROM users WHERE id = 1;",
			expected: "sql",
		},
		{
			name:     "html content",
			content:  "<!DOCTYPE html>\n<html>\n<head><title>Test</title></head>\n<body></body>\n</html>",
			expected: "html",
		},
		{
			name:     "dockerfile",
			content:  "FROM golang:1.21\nWORKDIR /app\nCOPY . .\nRUN go build",
			expected: "dockerfile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := langdetect.Detect([]byte(tt.content))

			if result != tt.expected {
				t.Errorf("Detect() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestDetect_ShebangTakesPrecedence(t *testing.T) {
	t.Parallel()

	got := langdetect.Detect([]byte("#!/bin/bash\ndef foo():\n    pass"))
	if got != "bash" {
		t.Errorf("Detect() = %q, want bash", got)
	}
}

func TestDetect_Wikitext(t *testing.T) {
	t.Parallel()

	// Wiki pages embed highlighted blocks whose class names carry no tag.
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"template call", "{{Infobox\n| name = x\n}}", langdetect.Text},
		{"sql ddl", "CREATE TABLE pages (id INTEGER);", "sql"},
		{"yaml front matter", "title: Rust\nlang: en\n", "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.Detect([]byte(tt.content)); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info string
		want string
	}{
		{"go", "go"},
		{"py", "python"},
		{"sh", "bash"},
		{"js title=example.js", "javascript"},
		{"{.rust}", "rust"},
		{"", ""},
		{"not-a-language", ""},
	}

	for _, tt := range tests {
		t.Run(tt.info, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.FromInfo(tt.info); got != tt.want {
				t.Errorf("FromInfo(%q) = %q, want %q", tt.info, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	if got := langdetect.Resolve("go", []byte("SELECT 1;")); got != "go" {
		t.Errorf("Resolve with tag = %q, want go", got)
	}
	if got := langdetect.Resolve("", []byte("SELECT * FROM t;")); got != "sql" {
		t.Errorf("Resolve without tag = %q, want sql", got)
	}
	if got := langdetect.Resolve("", []byte("   \n")); got != langdetect.Text {
		t.Errorf("Resolve blank = %q, want %q", got, langdetect.Text)
	}
}
