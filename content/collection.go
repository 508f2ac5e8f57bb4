package content

import (
	"errors"
	"slices"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type CollectionID string

const (
	Posts    CollectionID = "posts"
	Projects CollectionID = "projects"
)

// CollectionMeta describes how a collection is addressed and where a reader
// is sent back to when an item is missing.
type CollectionMeta struct {
	Entity       string // singular display name, e.g. "blog post"
	BasePath     string // detail pages live at BasePath + "/" + slug
	ListingPath  string
	ListingLabel string
}

var metas = map[CollectionID]CollectionMeta{
	Posts: {
		Entity:       "blog post",
		BasePath:     "/blog",
		ListingPath:  "/blog",
		ListingLabel: "Back to Blog",
	},
	Projects: {
		Entity:       "project",
		BasePath:     "/projects",
		ListingPath:  "/#projects",
		ListingLabel: "Back to projects",
	},
}

// Collection is an ordered, immutable set of items with unique slugs.
// It is safe for concurrent use.
type Collection struct {
	id    CollectionID
	meta  CollectionMeta
	items []models.ContentItem
	index map[string]int
}

// NewCollection validates items and indexes them by slug. Every slug must be
// URL-safe and unique within the collection.
func NewCollection(id CollectionID, items []models.ContentItem) (*Collection, error) {
	meta, ok := metas[id]
	if !ok {
		return nil, errs.NewUnknownCollectionError(string(id))
	}

	var problems []error
	index := make(map[string]int, len(items))
	for i, item := range items {
		if !IsValidSlug(item.Slug) {
			problems = append(problems, errs.NewInvalidSlugError(string(id), item.Slug, i))
			continue
		}
		if first, dup := index[item.Slug]; dup {
			problems = append(problems, errs.NewDuplicateSlugError(string(id), item.Slug, first, i))
			continue
		}
		if item.Title == "" {
			problems = append(problems, errs.NewInvalidContentError(string(id), i, "title", "must not be empty"))
		}
		index[item.Slug] = i
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}

	owned := make([]models.ContentItem, len(items))
	for i, item := range items {
		owned[i] = cloneItem(item)
	}

	return &Collection{id: id, meta: meta, items: owned, index: index}, nil
}

func (c *Collection) ID() CollectionID {
	return c.id
}

func (c *Collection) Meta() CollectionMeta {
	return c.meta
}

func (c *Collection) Len() int {
	return len(c.items)
}

// ListAll returns every item in authored order.
func (c *Collection) ListAll() []models.ContentItem {
	return c.Take(len(c.items))
}

// Take returns the first n items in authored order.
func (c *Collection) Take(n int) []models.ContentItem {
	n = min(max(n, 0), len(c.items))
	out := make([]models.ContentItem, n)
	for i := range out {
		out[i] = cloneItem(c.items[i])
	}
	return out
}

// Resolve looks slug up by exact, case-sensitive match. The empty slug never matches.
func (c *Collection) Resolve(slug string) (models.ContentItem, bool) {
	if slug == "" {
		return models.ContentItem{}, false
	}
	i, ok := c.index[slug]
	if !ok {
		return models.ContentItem{}, false
	}
	return cloneItem(c.items[i]), true
}

// Get is Resolve with a miss reported as a not-found error carrying the listing back link.
func (c *Collection) Get(slug string) (models.ContentItem, error) {
	item, ok := c.Resolve(slug)
	if !ok {
		return models.ContentItem{}, errs.NewNotFound(c.meta.Entity).WithBackLink(c.meta.ListingPath)
	}
	return item, nil
}

// Related returns up to limit items other than currentSlug, in authored order.
func (c *Collection) Related(currentSlug string, limit int) []models.ContentItem {
	if limit <= 0 {
		return []models.ContentItem{}
	}
	out := make([]models.ContentItem, 0, min(limit, len(c.items)))
	for _, item := range c.items {
		if len(out) == limit {
			break
		}
		if item.Slug == currentSlug {
			continue
		}
		out = append(out, cloneItem(item))
	}
	return out
}

// WithTag returns the items carrying tag, comparing slugified forms so
// "Next.js" matches "nextjs" and "next-js" does not.
func (c *Collection) WithTag(tag string) []models.ContentItem {
	want := Slugify(tag)
	out := []models.ContentItem{}
	if want == "" {
		return out
	}
	for _, item := range c.items {
		if slices.ContainsFunc(item.Tags, func(t string) bool { return Slugify(t) == want }) {
			out = append(out, cloneItem(item))
		}
	}
	return out
}

// Tags lists every distinct tag in first-seen order.
func (c *Collection) Tags() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range c.items {
		for _, t := range item.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

func cloneItem(item models.ContentItem) models.ContentItem {
	item.Tags = slices.Clone(item.Tags)
	item.Media.Screenshots = slices.Clone(item.Media.Screenshots)
	if item.PublishedAt != nil {
		t := *item.PublishedAt
		item.PublishedAt = &t
	}
	return item
}
