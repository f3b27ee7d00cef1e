package docs

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownKnownKind(t *testing.T) {
	md, ok := Markdown("LocalOrVar")
	require.True(t, ok)
	assert.Contains(t, md, "Local variable")
}

func TestMarkdownUnknownKind(t *testing.T) {
	_, ok := Markdown("NotAThing")
	assert.False(t, ok)
}

func TestKindsSortedAndComplete(t *testing.T) {
	kinds := Kinds()
	assert.True(t, sort.StringsAreSorted(kinds))
	assert.Contains(t, kinds, "Dot")
	assert.Contains(t, kinds, "Expr")
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("## Hi\n\nthere")
	require.NoError(t, err)
	assert.Contains(t, html, "<h2")
	assert.True(t, strings.Contains(html, "there"))
}

func TestRenderMan(t *testing.T) {
	roff := RenderMan("ember-docs-LocalOrVar", "## Local\n\nbody")
	assert.Contains(t, string(roff), ".TH")
	assert.Contains(t, string(roff), "body")
}
