package content

import (
	"fmt"
	"time"

	"github.com/rpupo63/portfolio-site-backend/models"
)

const dateLayout = "2006-01-02"

type postFile struct {
	Posts []postDefinition `yaml:"posts"`
}

type postDefinition struct {
	Slug       string   `yaml:"slug"`
	Title      string   `yaml:"title"`
	Date       string   `yaml:"date"`
	Excerpt    string   `yaml:"excerpt"`
	CoverImage string   `yaml:"coverImage"`
	Categories []string `yaml:"categories"`
	Content    string   `yaml:"content"`
}

func (d postDefinition) item() (models.ContentItem, error) {
	published, err := time.Parse(dateLayout, d.Date)
	if err != nil {
		return models.ContentItem{}, fmt.Errorf("date %q: %w", d.Date, err)
	}
	return models.ContentItem{
		Slug:        d.Slug,
		Title:       d.Title,
		PublishedAt: &published,
		Summary:     d.Excerpt,
		Body:        d.Content,
		Tags:        orEmpty(d.Categories),
		Media:       models.Media{Cover: d.CoverImage},
	}, nil
}

type projectFile struct {
	Projects []projectDefinition `yaml:"projects"`
}

type projectDefinition struct {
	ID              int      `yaml:"id"`
	Slug            string   `yaml:"slug"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	LongDescription string   `yaml:"longDescription"`
	Image           string   `yaml:"image"`
	Screenshots     []string `yaml:"screenshots"`
	Technologies    []string `yaml:"technologies"`
	Github          string   `yaml:"github"`
	LiveURL         string   `yaml:"liveUrl"`
}

func (d projectDefinition) item() models.ContentItem {
	return models.ContentItem{
		Slug:            d.Slug,
		Title:           d.Title,
		Ordinal:         d.ID,
		Summary:         d.Description,
		LongDescription: d.LongDescription,
		Tags:            orEmpty(d.Technologies),
		Media:           models.Media{Cover: d.Image, Screenshots: d.Screenshots},
		Links:           models.Links{Repository: d.Github, LiveDemo: d.LiveURL},
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
