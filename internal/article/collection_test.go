package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary(slug, published string) Summary {
	return Summary{Slug: slug, PublishedAt: published}
}

func TestNewCollection_DedupesAndSortsNewestFirst(t *testing.T) {
	c := NewCollection([]Article{
		{Summary: Summary{ID: 1, Slug: "old", PublishedAt: "2022-01-01"}},
		{Summary: Summary{ID: 2, Slug: "new", PublishedAt: "2024-05-01T12:00:00Z"}},
		{Summary: Summary{ID: 3, Slug: "old", PublishedAt: "2025-01-01"}},
		{Summary: Summary{ID: 4, Slug: "undated"}},
		{Summary: Summary{ID: 5, Slug: "mid", PublishedAt: "2023-06-15"}},
	})

	var slugs []string
	for _, a := range c.All() {
		slugs = append(slugs, a.Slug)
	}
	assert.Equal(t, []string{"new", "mid", "old", "undated"}, slugs)
	assert.Equal(t, 4, c.Len())

	old, err := c.Find("old")
	require.NoError(t, err)
	assert.Equal(t, 1, old.ID)
}

func TestCollection_FindNormalizesQuery(t *testing.T) {
	c := NewCollection([]Article{{Summary: Summary{Slug: "ola-mundo"}}})

	a, err := c.Find("  Olá Mundo ")
	require.NoError(t, err)
	assert.Equal(t, "ola-mundo", a.Slug)

	_, err = c.Find("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_SummariesSkipDrafts(t *testing.T) {
	c := NewCollection([]Article{
		{Summary: Summary{Slug: "a", PublishedAt: "2024-01-01"}},
		{Summary: Summary{Slug: "b", PublishedAt: "2024-02-01"}, Draft: true},
	})

	s := c.Summaries()
	require.Len(t, s, 1)
	assert.Equal(t, "a", s[0].Slug)
	assert.Len(t, c.Published(), 1)
}

func TestSortSummaries_StableForEqualDates(t *testing.T) {
	s := []Summary{
		summary("x", ""),
		summary("y", "2024-01-01"),
		summary("z", "bogus"),
	}
	SortSummaries(s)
	assert.Equal(t, "y", s[0].Slug)
	assert.Equal(t, "x", s[1].Slug)
	assert.Equal(t, "z", s[2].Slug)
}
