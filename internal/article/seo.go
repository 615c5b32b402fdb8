package article

import (
	"encoding/json"
	"html/template"
	"strings"

	"folio/internal/frontmatter"
)

// Site carries the site-wide values SEO metadata falls back to.
type Site struct {
	BaseURL       string
	Author        string
	Locale        string
	ArticlesRoute string
}

// SEO is the head metadata of an article page.
type SEO struct {
	Title        string
	Description  string
	Author       string
	Locale       string
	Image        string
	CanonicalURL string
	PublishedAt  string
	Keywords     []string
	TwitterCard  string
	JSONLD       template.JS
}

// KeywordList joins the keywords for a meta tag.
func (s SEO) KeywordList() string {
	return strings.Join(s.Keywords, ", ")
}

// BuildSEO derives page metadata from the article's front matter. A nested
// `seo` mapping wins over the flat seoTitle/seoDescription keys, and a
// `jsonLd` mapping is merged over the generated structured data.
func BuildSEO(a Article, site Site) SEO {
	meta := a.Metadata
	if meta == nil {
		meta = frontmatter.Metadata{}
	}
	nested := meta.Map("seo")
	if nested == nil {
		nested = frontmatter.Metadata{}
	}

	s := SEO{
		Title:       firstNonEmpty(nested.First("title"), meta.First("seoTitle"), a.Title),
		Description: firstNonEmpty(nested.First("description"), meta.First("seoDescription"), a.Excerpt),
		Author:      firstNonEmpty(a.Author, site.Author),
		Locale:      firstNonEmpty(meta.First("locale"), site.Locale),
		PublishedAt: a.PublishedAt,
		Keywords:    a.Keywords,
	}
	if len(s.Keywords) == 0 {
		s.Keywords = a.Tags
	}

	if img := firstNonEmpty(nested.First("image"), meta.First("ogImage", "image")); img != "" {
		s.Image = absoluteURL(site.BaseURL, img)
	}

	canonical := firstNonEmpty(nested.First("canonicalUrl"), meta.First("canonicalUrl"))
	if canonical == "" {
		canonical = "/" + strings.Trim(site.ArticlesRoute, "/") + "/" + a.Slug + "/"
	}
	s.CanonicalURL = absoluteURL(site.BaseURL, canonical)

	s.TwitterCard = "summary"
	if s.Image != "" {
		s.TwitterCard = "summary_large_image"
	}

	s.JSONLD = jsonLD(a, s, meta.Map("jsonLd"))
	return s
}

func jsonLD(a Article, s SEO, extra frontmatter.Metadata) template.JS {
	ld := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Article",
		"headline":    a.Title,
		"description": s.Description,
		"author":      map[string]any{"@type": "Person", "name": s.Author},
		"inLanguage":  s.Locale,
		"keywords":    s.KeywordList(),
	}
	if s.CanonicalURL != "" {
		ld["mainEntityOfPage"] = s.CanonicalURL
	}
	if s.PublishedAt != "" {
		ld["datePublished"] = s.PublishedAt
	}
	if s.Image != "" {
		ld["image"] = s.Image
	}
	for k, v := range extra {
		ld[k] = plain(v)
	}

	// json.Marshal escapes <, > and &, so the output is safe inside <script>.
	out, err := json.Marshal(ld)
	if err != nil {
		return template.JS("{}")
	}
	return template.JS(out)
}

// plain converts nested Metadata into ordinary maps for encoding.
func plain(v any) any {
	m, ok := v.(frontmatter.Metadata)
	if !ok {
		return v
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		out[k] = plain(val)
	}
	return out
}

func absoluteURL(base, value string) string {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	base = strings.TrimRight(base, "/")
	if !strings.HasPrefix(value, "/") {
		value = "/" + value
	}
	return base + value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
