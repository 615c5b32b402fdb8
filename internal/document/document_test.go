package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/frontmatter"
	"folio/internal/markdown"
)

func TestParse_FrontMatterAndBody(t *testing.T) {
	doc := Parse("---\ntitle: Hello World\ntags: [a, b, c]\n---\nBody text.")

	assert.Equal(t, "Hello World", doc.Metadata["title"])
	assert.Equal(t, []string{"a", "b", "c"}, doc.Metadata["tags"])
	assert.Contains(t, doc.HTML, "<p>Body text.</p>")
	assert.Equal(t, 1, doc.ReadingTime)
}

func TestParse_NoFrontMatterRendersWholeText(t *testing.T) {
	text := "# Title\n\nParagraph."
	doc := Parse(text)

	assert.Equal(t, frontmatter.Metadata{}, doc.Metadata)
	assert.Equal(t, markdown.Render(text), doc.HTML)
}

func TestParse_UnterminatedFrontMatterRendersOriginal(t *testing.T) {
	text := "---\ntitle: oops\n\nStill the body."
	doc := Parse(text)

	assert.Empty(t, doc.Metadata)
	assert.Equal(t, text, doc.Body)
	assert.True(t, strings.HasPrefix(doc.HTML, "<hr />"), doc.HTML)
	assert.Contains(t, doc.HTML, "<p>Still the body.</p>")
}

func TestParse_ReadingTimeUsesBodyOnly(t *testing.T) {
	longMeta := "---\nsummary: " + strings.Repeat("meta ", 1000) + "\n---\nshort body"
	assert.Equal(t, 1, Parse(longMeta).ReadingTime)
}

func TestParseWith_Engine(t *testing.T) {
	doc, err := ParseWith("---\ntitle: T\n---\n# Heading\n", markdown.NewGoldmarkEngine())
	require.NoError(t, err)
	assert.Equal(t, "T", doc.Metadata["title"])
	assert.Contains(t, doc.HTML, `<h1 id="heading">Heading</h1>`)
}
