package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

func item(slug string, tags ...string) models.ContentItem {
	return models.ContentItem{Slug: slug, Title: "Title " + slug, Tags: tags}
}

func newTestCollection(t *testing.T, slugs ...string) *Collection {
	t.Helper()
	items := make([]models.ContentItem, len(slugs))
	for i, s := range slugs {
		items[i] = item(s)
	}
	c, err := NewCollection(Posts, items)
	require.NoError(t, err)
	return c
}

func slugsOf(items []models.ContentItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Slug
	}
	return out
}

func TestNewCollection_RejectsDuplicateSlugs(t *testing.T) {
	_, err := NewCollection(Posts, []models.ContentItem{item("a"), item("b"), item("a")})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateSlug)
}

func TestNewCollection_RejectsInvalidSlugs(t *testing.T) {
	tests := []string{"", "Upper", "has space", "-leading", "trailing-", "double--hyphen", "under_score"}
	for _, slug := range tests {
		t.Run(slug, func(t *testing.T) {
			_, err := NewCollection(Projects, []models.ContentItem{item(slug)})
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidSlug)
		})
	}
}

func TestNewCollection_RejectsEmptyTitle(t *testing.T) {
	_, err := NewCollection(Posts, []models.ContentItem{{Slug: "untitled"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidContent)
}

func TestNewCollection_UnknownID(t *testing.T) {
	_, err := NewCollection("talks", nil)
	assert.ErrorIs(t, err, errs.ErrUnknownCollection)
}

func TestCollection_ListAllKeepsAuthoredOrder(t *testing.T) {
	c := newTestCollection(t, "zeta", "alpha", "mid")
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, slugsOf(c.ListAll()))
	assert.Equal(t, 3, c.Len())
}

func TestCollection_ListAllIsACopy(t *testing.T) {
	c, err := NewCollection(Posts, []models.ContentItem{item("a", "Go", "Web")})
	require.NoError(t, err)

	items := c.ListAll()
	items[0].Title = "changed"
	items[0].Tags[0] = "changed"

	again := c.ListAll()
	assert.Equal(t, "Title a", again[0].Title)
	assert.Equal(t, []string{"Go", "Web"}, again[0].Tags)
}

func TestCollection_Take(t *testing.T) {
	c := newTestCollection(t, "a", "b", "c", "d")
	assert.Equal(t, []string{"a", "b", "c"}, slugsOf(c.Take(3)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, slugsOf(c.Take(10)))
	assert.Empty(t, c.Take(0))
	assert.Empty(t, c.Take(-1))
}

func TestCollection_Resolve(t *testing.T) {
	c := newTestCollection(t, "react-19-new-features", "hack24")

	tests := []struct {
		name  string
		slug  string
		found bool
	}{
		{"exact match", "react-19-new-features", true},
		{"digits", "hack24", true},
		{"empty", "", false},
		{"case differs", "React-19-New-Features", false},
		{"surrounding whitespace", " hack24 ", false},
		{"prefix only", "hack", false},
		{"absent", "does-not-exist", false},
		{"path traversal", "../hack24", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Resolve(tt.slug)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.slug, got.Slug)
			} else {
				assert.Equal(t, models.ContentItem{}, got)
			}
		})
	}
}

func TestCollection_GetNotFound(t *testing.T) {
	c := newTestCollection(t, "a")

	_, err := c.Get("does-not-exist")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "/blog", apiErr.BackLink)
}

func TestCollection_Related(t *testing.T) {
	c := newTestCollection(t, "a", "b", "c", "d")

	tests := []struct {
		name    string
		current string
		limit   int
		want    []string
	}{
		{"excludes first", "a", 2, []string{"b", "c"}},
		{"excludes middle", "b", 2, []string{"a", "c"}},
		{"excludes last", "d", 2, []string{"a", "b"}},
		{"limit larger than rest", "c", 10, []string{"a", "b", "d"}},
		{"zero limit", "a", 0, []string{}},
		{"negative limit", "a", -2, []string{}},
		{"unknown current", "zzz", 2, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugsOf(c.Related(tt.current, tt.limit)))
		})
	}
}

func TestCollection_RelatedNeverIncludesCurrent(t *testing.T) {
	slugs := []string{"a", "b", "c", "d", "e"}
	c := newTestCollection(t, slugs...)

	for _, current := range slugs {
		for limit := 0; limit <= len(slugs)+1; limit++ {
			got := c.Related(current, limit)
			assert.NotContains(t, slugsOf(got), current)
			assert.Len(t, got, min(limit, len(slugs)-1))
			assert.Equal(t, got, c.Related(current, limit))
		}
	}
}

func TestCollection_RelatedSingleItem(t *testing.T) {
	c := newTestCollection(t, "only")
	assert.Empty(t, c.Related("only", 2))
}

func TestCollection_WithTag(t *testing.T) {
	c, err := NewCollection(Posts, []models.ContentItem{
		item("one", "Web Development", "Next.js"),
		item("two", "AI"),
		item("three", "web development"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "three"}, slugsOf(c.WithTag("web-development")))
	assert.Equal(t, []string{"one"}, slugsOf(c.WithTag("Next.js")))
	assert.Equal(t, []string{"one"}, slugsOf(c.WithTag("nextjs")))
	assert.Empty(t, c.WithTag("rust"))
	assert.Empty(t, c.WithTag("  "))
}

func TestCollection_Tags(t *testing.T) {
	c, err := NewCollection(Posts, []models.ContentItem{
		item("one", "Web", "React"),
		item("two", "AI", "Web"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Web", "React", "AI"}, c.Tags())
}
