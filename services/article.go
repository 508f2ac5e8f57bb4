package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/portfolio-site-backend/cache"
	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/metadata"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/render"
)

// Article is everything a post page shows
type Article struct {
	Post        models.ContentItem     `json:"post"`
	DisplayDate string                 `json:"displayDate"`
	Blocks      []models.Block         `json:"blocks"`
	Metadata    models.DisplayMetadata `json:"metadata"`
	Related     []models.ContentItem   `json:"related"`
	Share       ShareLinks             `json:"share"`
}

type ArticleOptions struct {
	BaseURL        string
	WordsPerMinute int
	RelatedLimit   int
	Cache          cache.Cacher // optional
	CacheTTL       time.Duration
}

// ArticleService composes post pages, memoizing them per slug when a cache
// is configured. Posts never change while the process runs, so a cached
// article stays valid until its TTL.
type ArticleService struct {
	posts        *content.Collection
	calc         metadata.Calculator
	baseURL      string
	relatedLimit int
	cache        cache.Cacher
	cacheTTL     time.Duration
	logger       zerolog.Logger
}

func NewArticleService(posts *content.Collection, opts ArticleOptions) *ArticleService {
	return &ArticleService{
		posts:        posts,
		calc:         metadata.NewCalculator(opts.WordsPerMinute),
		baseURL:      opts.BaseURL,
		relatedLimit: max(opts.RelatedLimit, 0),
		cache:        opts.Cache,
		cacheTTL:     opts.CacheTTL,
		logger:       log.With().Str("service", "articleService").Logger(),
	}
}

func (s *ArticleService) RelatedLimit() int {
	return s.relatedLimit
}

// Compose builds the article for slug without touching the cache.
func (s *ArticleService) Compose(slug string) (Article, error) {
	post, err := s.posts.Get(slug)
	if err != nil {
		return Article{}, err
	}

	return Article{
		Post:        post,
		DisplayDate: post.DisplayDate(),
		Blocks:      render.Blocks(post.Body),
		Metadata:    s.calc.Compute(post.Body),
		Related:     s.posts.Related(post.Slug, s.relatedLimit),
		Share:       BuildShareLinks(s.baseURL, post.Slug, post.Title, post.Tags),
	}, nil
}

// Article returns the composed article for slug. Cache failures are logged
// and the article is composed directly.
func (s *ArticleService) Article(ctx context.Context, slug string) (Article, error) {
	if s.cache == nil {
		return s.Compose(slug)
	}
	if _, ok := s.posts.Resolve(slug); !ok {
		return s.Compose(slug)
	}

	key := cacheKey(slug)
	if raw, err := s.cache.Get(ctx, key); err == nil {
		var article Article
		if err := json.Unmarshal(raw, &article); err == nil {
			return article, nil
		}
		s.logger.Warn().Str("slug", slug).Msg("discarding undecodable cached article")
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn().Err(err).Str("slug", slug).Msg("cache read failed")
	}

	article, err := s.Compose(slug)
	if err != nil {
		return Article{}, err
	}

	raw, err := json.Marshal(article)
	if err != nil {
		return article, nil
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("slug", slug).Msg("cache write failed")
	}
	return article, nil
}

// Warm composes every post concurrently so the first reader hits the cache.
func (s *ArticleService) Warm(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, post := range s.posts.ListAll() {
		slug := post.Slug
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := s.Article(ctx, slug)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Int("posts", s.posts.Len()).Msg("article cache warmed")
	return nil
}

func cacheKey(slug string) string {
	return "article:" + slug
}
