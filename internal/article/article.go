package article

import (
	"math"
	"strconv"
	"strings"

	"folio/internal/document"
	"folio/internal/frontmatter"
)

// DefaultCategory is used when an article names neither a category nor tags.
const DefaultCategory = "Artigos"

// Summary is one entry of the article index manifest.
type Summary struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Category    string   `json:"category"`
	PublishedAt string   `json:"publishedAt"`
	ReadTime    int      `json:"readTime"`
	Tags        []string `json:"tags"`
	Keywords    []string `json:"keywords"`
}

// Article is a fully parsed article ready to be rendered into a page.
type Article struct {
	Summary
	Author      string               `json:"author,omitempty"`
	HTML        string               `json:"html"`
	ReadingTime int                  `json:"readingTime"`
	Draft       bool                 `json:"-"`
	Metadata    frontmatter.Metadata `json:"frontmatter"`
	SourcePath  string               `json:"-"`
	// Fingerprint identifies the front matter and body the HTML was
	// rendered from. Loaders fill it in.
	Fingerprint string `json:"fingerprint,omitempty"`
}

// Defaults fill fields an article's front matter leaves out.
type Defaults struct {
	Author   string
	Category string
}

// FromDocument builds an Article from a parsed document. sourcePath names the
// markdown file and index is its position in the scan, used for the id when
// the front matter has none.
func FromDocument(doc document.Document, sourcePath string, index int, d Defaults) Article {
	meta := doc.Metadata
	if meta == nil {
		meta = frontmatter.Metadata{}
	}

	slug := NormalizeSlug(meta.First("slug"))
	if slug == "" {
		slug = SlugFromPath(sourcePath)
	}

	title := meta.First("title")
	if title == "" {
		title = strings.ReplaceAll(slug, "-", " ")
	}

	tags := nonNil(meta.Strings("tags"))
	keywords := nonNil(meta.Strings("keywords"))

	category := meta.First("category")
	if category == "" && len(tags) > 0 {
		category = tags[0]
	}
	if category == "" {
		category = d.Category
	}
	if category == "" {
		category = DefaultCategory
	}

	readTime := doc.ReadingTime
	if override, ok := positiveNumber(meta, "readTime"); ok {
		readTime = override
	}

	id := index + 1
	if v, ok := positiveNumber(meta, "id"); ok {
		id = v
	}

	author := meta.First("author")
	if author == "" {
		author = d.Author
	}

	draft, _ := meta.String("draft")

	return Article{
		Summary: Summary{
			ID:          id,
			Slug:        slug,
			Title:       title,
			Excerpt:     meta.First("summary", "excerpt"),
			Category:    category,
			PublishedAt: meta.First("publishedAt", "publishedDate"),
			ReadTime:    readTime,
			Tags:        tags,
			Keywords:    keywords,
		},
		Author:      author,
		HTML:        doc.HTML,
		ReadingTime: doc.ReadingTime,
		Draft:       strings.EqualFold(strings.TrimSpace(draft), "true"),
		Metadata:    meta,
		SourcePath:  sourcePath,
	}
}

// positiveNumber reads a numeric scalar, rounding fractions.
func positiveNumber(meta frontmatter.Metadata, key string) (int, bool) {
	s, ok := meta.String(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return int(math.Round(f)), true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
