package doctree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/docnav/pkg/doctree"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"simple", "Getting Started", "getting-started"},
		{"punctuation", "What's new?", "whats-new"},
		{"hyphens kept", "pre-release notes", "pre-release-notes"},
		{"underscores kept", "snake_case", "snake_case"},
		{"collapse", "a  -  b", "a-b"},
		{"trim", "  padded  ", "padded"},
		{"unicode", "Café Ünïcode", "café-ünïcode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, doctree.Slug(tt.text))
		})
	}
}

func TestSlugger_Duplicates(t *testing.T) {
	t.Parallel()

	s := doctree.NewSlugger()
	assert.Equal(t, "usage", s.Anchor("Usage"))
	assert.Equal(t, "usage-1", s.Anchor("Usage"))
	assert.Equal(t, "usage-2", s.Anchor("usage"))

	s.Reserve("top")
	assert.Equal(t, "top-1", s.Anchor("Top"))
}
