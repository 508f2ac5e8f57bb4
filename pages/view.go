package pages

import (
	"strings"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
)

// Site is the chrome shared by every page
type Site struct {
	Name     string
	NavItems []models.NavItem
	Year     int
}

type HomePage struct {
	Site
	Title    string
	Profile  models.Profile
	Projects []models.ContentItem
	Posts    []models.ContentItem
}

type BlogPage struct {
	Site
	Title string
	Tag   string
	Tags  []string
	Posts []models.ContentItem
}

type PostPage struct {
	Site
	Title     string
	Article   services.Article
	BackLink  string
	BackLabel string
}

type ProjectPage struct {
	Site
	Title     string
	Project   models.ContentItem
	BackLink  string
	BackLabel string
}

// NotFoundPage is shown for an unknown slug. BackLink points at the listing
// the reader most likely came from.
type NotFoundPage struct {
	Site
	Title     string
	Heading   string
	BackLink  string
	BackLabel string
}

// NotFoundFor builds the not-found page for a miss in the collection described by meta.
func NotFoundFor(site Site, meta content.CollectionMeta) NotFoundPage {
	heading := meta.Entity + " not found"
	if heading != "" {
		heading = strings.ToUpper(heading[:1]) + heading[1:]
	}
	return NotFoundPage{
		Site:      site,
		Title:     heading,
		Heading:   heading,
		BackLink:  meta.ListingPath,
		BackLabel: meta.ListingLabel,
	}
}
