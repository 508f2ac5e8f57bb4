package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/cache"
	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

func testPosts(t *testing.T) *content.Collection {
	t.Helper()
	store, err := content.LoadEmbedded()
	require.NoError(t, err)
	return store.Posts()
}

func TestArticleService_Compose(t *testing.T) {
	s := NewArticleService(testPosts(t), ArticleOptions{
		BaseURL:        "https://example.com",
		WordsPerMinute: 200,
		RelatedLimit:   2,
	})

	article, err := s.Compose("react-19-new-features")
	require.NoError(t, err)

	assert.Equal(t, "react-19-new-features", article.Post.Slug)
	assert.Equal(t, "February 20, 2025", article.DisplayDate)
	require.NotEmpty(t, article.Blocks)
	assert.Equal(t, models.Heading(1, "React 19: A Deep Dive into New Features"), article.Blocks[0])
	assert.Contains(t, article.Blocks, models.LabeledListItem("useSignal", "A new primitive for state management with fine-grained reactivity"))
	assert.Positive(t, article.Metadata.WordCount)
	assert.Equal(t, (article.Metadata.WordCount+199)/200, article.Metadata.ReadingTimeMinutes)

	require.Len(t, article.Related, 2)
	assert.Equal(t, "next-js-15-whats-new", article.Related[0].Slug)
	assert.Equal(t, "v0-dev-ai-powered-development", article.Related[1].Slug)

	assert.Equal(t, "https://example.com/blog/react-19-new-features", article.Share.URL)
}

func TestArticleService_ComposeNotFound(t *testing.T) {
	s := NewArticleService(testPosts(t), ArticleOptions{RelatedLimit: 2})

	_, err := s.Compose("does-not-exist")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "/blog", apiErr.BackLink)
}

func TestArticleService_ArticleUsesCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(time.Hour)
	s := NewArticleService(testPosts(t), ArticleOptions{RelatedLimit: 2, Cache: c})

	first, err := s.Article(ctx, "gemini-flash-next-gen-ai")
	require.NoError(t, err)
	second, err := s.Article(ctx, "gemini-flash-next-gen-ai")
	require.NoError(t, err)

	assert.Equal(t, first.Blocks, second.Blocks)
	assert.Equal(t, first.Metadata, second.Metadata)
	assert.Equal(t, first.DisplayDate, second.DisplayDate)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Sets)
	assert.Equal(t, int64(1), stats.Hits)
}

func TestArticleService_ArticleMissSkipsCache(t *testing.T) {
	c := cache.NewMemoryCache(time.Hour)
	s := NewArticleService(testPosts(t), ArticleOptions{Cache: c})

	_, err := s.Article(context.Background(), "does-not-exist")
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, int64(0), c.Stats().Sets)
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func (failingCache) Stats() cache.Stats { return cache.Stats{Backend: "failing"} }

func (failingCache) Close() error { return nil }

func TestArticleService_ArticleSurvivesCacheErrors(t *testing.T) {
	s := NewArticleService(testPosts(t), ArticleOptions{Cache: failingCache{}})

	article, err := s.Article(context.Background(), "next-js-15-whats-new")
	require.NoError(t, err)
	assert.Equal(t, "next-js-15-whats-new", article.Post.Slug)
}

func TestArticleService_Warm(t *testing.T) {
	c := cache.NewMemoryCache(time.Hour)
	posts := testPosts(t)
	s := NewArticleService(posts, ArticleOptions{RelatedLimit: 2, Cache: c})

	require.NoError(t, s.Warm(context.Background()))
	assert.Equal(t, int64(posts.Len()), c.Stats().Sets)
}

func TestArticleService_WarmWithoutCache(t *testing.T) {
	s := NewArticleService(testPosts(t), ArticleOptions{})
	assert.NoError(t, s.Warm(context.Background()))
}
