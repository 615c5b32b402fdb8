// internal/builder/models.go
package builder

import (
	"html/template"

	"folio/internal/article"
	"folio/internal/config"
	"folio/internal/frontmatter"
)

// PageData is the struct passed to templates. Article pages fill Article, SEO
// and Published; the listing page fills Articles.
type PageData struct {
	Content     template.HTML
	Title       string
	BaseHref    string
	Author      string
	Description string
	Site        config.SiteConfig
	Article     *article.Article
	SEO         article.SEO
	// Published is the localized long publication date.
	Published string
	Articles  []ArticleCard
	// Params exposes the raw front matter as .Params.
	Params frontmatter.Metadata
}

// ArticleCard is one entry of the listing page. URL is relative to the
// listing.
type ArticleCard struct {
	article.Summary
	URL       string
	DateLabel string
}
