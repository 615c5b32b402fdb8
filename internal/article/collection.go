package article

import (
	"cmp"
	"errors"
	"slices"
)

// ErrNotFound is returned when no article has the requested slug.
var ErrNotFound = errors.New("article not found")

// Collection is a deduplicated set of articles ordered newest first.
type Collection struct {
	articles []Article
	bySlug   map[string]int
}

// NewCollection keeps the first article for every slug and sorts the rest by
// publication date, newest first. Articles with unparseable dates go last and
// keep their relative order.
func NewCollection(articles []Article) *Collection {
	seen := make(map[string]bool, len(articles))
	unique := make([]Article, 0, len(articles))
	for _, a := range articles {
		if seen[a.Slug] {
			continue
		}
		seen[a.Slug] = true
		unique = append(unique, a)
	}

	sortByPublished(unique, func(a Article) string { return a.PublishedAt })

	c := &Collection{articles: unique, bySlug: make(map[string]int, len(unique))}
	for i, a := range unique {
		c.bySlug[a.Slug] = i
	}
	return c
}

// All returns the articles in order. The slice must not be modified.
func (c *Collection) All() []Article {
	return c.articles
}

func (c *Collection) Len() int {
	return len(c.articles)
}

// Find looks an article up by slug; the query is normalized first.
func (c *Collection) Find(slug string) (Article, error) {
	i, ok := c.bySlug[NormalizeSlug(slug)]
	if !ok {
		return Article{}, ErrNotFound
	}
	return c.articles[i], nil
}

// Published drops drafts.
func (c *Collection) Published() []Article {
	out := make([]Article, 0, len(c.articles))
	for _, a := range c.articles {
		if !a.Draft {
			out = append(out, a)
		}
	}
	return out
}

// Summaries returns the index entries of the published articles.
func (c *Collection) Summaries() []Summary {
	published := c.Published()
	out := make([]Summary, len(published))
	for i, a := range published {
		out[i] = a.Summary
	}
	return out
}

// SortSummaries orders index entries newest first.
func SortSummaries(s []Summary) {
	sortByPublished(s, func(item Summary) string { return item.PublishedAt })
}

func sortByPublished[T any](items []T, publishedAt func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(dateValue(publishedAt(b)), dateValue(publishedAt(a)))
	})
}
