package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docnav/pkg/doctree"
	"github.com/yaklabco/docnav/pkg/theme"
)

func TestStyle_Patch(t *testing.T) {
	t.Parallel()

	base := theme.Style{Foreground: "12", Underline: true}
	patched := base.Patch(theme.Style{Foreground: "9", Bold: true})

	assert.Equal(t, theme.Style{Foreground: "9", Bold: true, Underline: true}, patched)
	assert.Equal(t, base, base.Patch(theme.Style{}), "empty patch is identity")
}

func TestStyle_RenderZero(t *testing.T) {
	t.Parallel()

	assert.True(t, theme.Style{}.IsZero())
	assert.Equal(t, "plain", theme.Style{}.Render("plain"))
}

func TestTheme_EffectStyle(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	assert.True(t, th.EffectStyle(doctree.EffectBold).Bold)
	assert.True(t, th.EffectStyle(doctree.EffectItalic).Italic)
	assert.True(t, th.EffectStyle(doctree.EffectStrikethrough).Strikethrough)
	assert.True(t, th.EffectStyle(doctree.EffectUnderline).Underline)
	assert.Equal(t, th.Code, th.EffectStyle(doctree.EffectCode))
}

func TestTheme_HeaderStyleClamps(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	assert.Equal(t, th.Header[0], th.HeaderStyle(0))
	assert.Equal(t, th.Header[5], th.HeaderStyle(9))
	assert.Equal(t, th.Header[1], th.HeaderStyle(2))
}

func TestTheme_LinkStyle(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	assert.Equal(t, th.Link, th.LinkStyle(doctree.InternalTarget{Page: "Go"}))
	assert.Equal(t, th.Link, th.LinkStyle(doctree.AnchorTarget{Anchor: "x"}))
	assert.Equal(t, th.ExternalLink, th.LinkStyle(doctree.ExternalTarget{URL: "https://go.dev"}))
	assert.Equal(t, th.ExternalLink, th.LinkStyle(doctree.InterwikiTarget{Prefix: "wikt"}))
	assert.Equal(t, th.RedLink, th.LinkStyle(doctree.RedTarget{Page: "Nope"}))
	assert.Equal(t, th.MediaLink, th.LinkStyle(doctree.MediaTarget{Href: "a.png"}))
}

func TestTheme_SetGetApply(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	require.NoError(t, th.Set("h2", theme.Style{Foreground: "1"}))
	got, ok := th.Get("h2")
	require.True(t, ok)
	assert.Equal(t, theme.Style{Foreground: "1"}, got)

	require.NoError(t, th.Apply(map[string]theme.Style{
		"link": {Bold: true},
	}))
	assert.True(t, th.Link.Bold)
	assert.True(t, th.Link.Underline, "apply patches rather than replaces")

	require.Error(t, th.Set("nope", theme.Style{}))
	require.Error(t, th.Apply(map[string]theme.Style{"nope": {}}))
	_, ok = th.Get("nope")
	assert.False(t, ok)
}

func TestByName(t *testing.T) {
	t.Parallel()

	for _, name := range theme.Available() {
		th, ok := theme.ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, th.Name)
	}

	_, ok := theme.ByName("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"dark", "default", "light", "mono"}, theme.Available())
}

func TestByName_ReturnsCopy(t *testing.T) {
	t.Parallel()

	th, _ := theme.ByName("mono")
	th.Link = theme.Style{Foreground: "1"}

	again, _ := theme.ByName("mono")
	assert.NotEqual(t, th.Link, again.Link)
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := theme.StyleNames()
	assert.Contains(t, names, "link")
	assert.Contains(t, names, "h6")
	assert.IsNonDecreasing(t, names)
}
