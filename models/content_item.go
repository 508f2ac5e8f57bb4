package models

import "time"

// ContentItem represents a post or project addressed by its slug
type ContentItem struct {
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	Ordinal         int        `json:"ordinal,omitempty"`
	Summary         string     `json:"summary"`
	Body            string     `json:"body,omitempty"`
	LongDescription string     `json:"longDescription,omitempty"`
	Tags            []string   `json:"tags"`
	Media           Media      `json:"media"`
	Links           Links      `json:"links"`
}

// Media holds image references; nothing is fetched or resized
type Media struct {
	Cover       string   `json:"cover,omitempty"`
	Screenshots []string `json:"screenshots,omitempty"`
}

// Links holds optional external references
type Links struct {
	Repository string `json:"repository,omitempty"`
	LiveDemo   string `json:"liveDemo,omitempty"`
}

// MaxBadgeTags is how many tags list views show per item.
const MaxBadgeTags = 2

// BadgeTags returns the leading tags shown as badges in list views.
func (c ContentItem) BadgeTags() []string {
	if len(c.Tags) <= MaxBadgeTags {
		return c.Tags
	}
	return c.Tags[:MaxBadgeTags]
}

// DisplayDate formats PublishedAt the way post pages show it, e.g. "March 15, 2025".
func (c ContentItem) DisplayDate() string {
	if c.PublishedAt == nil {
		return ""
	}
	return c.PublishedAt.Format("January 2, 2006")
}
