package content

import (
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// Store holds the site's collections and profile. It is built once at
// startup and only read afterwards.
type Store struct {
	posts    *Collection
	projects *Collection
	profile  models.Profile
}

func New(posts, projects *Collection, profile models.Profile) Store {
	return Store{
		posts:    posts,
		projects: projects,
		profile:  profile,
	}
}

// Accessor methods for each collection

func (s Store) Posts() *Collection {
	return s.posts
}

func (s Store) Projects() *Collection {
	return s.projects
}

func (s Store) Profile() models.Profile {
	return s.profile
}

// Collection finds a collection by id.
func (s Store) Collection(id CollectionID) (*Collection, error) {
	switch id {
	case Posts:
		return s.posts, nil
	case Projects:
		return s.projects, nil
	default:
		return nil, errs.NewUnknownCollectionError(string(id))
	}
}

func (s Store) ListAll(id CollectionID) ([]models.ContentItem, error) {
	c, err := s.Collection(id)
	if err != nil {
		return nil, err
	}
	return c.ListAll(), nil
}

func (s Store) Get(id CollectionID, slug string) (models.ContentItem, error) {
	c, err := s.Collection(id)
	if err != nil {
		return models.ContentItem{}, err
	}
	return c.Get(slug)
}

func (s Store) SelectRelated(id CollectionID, currentSlug string, limit int) ([]models.ContentItem, error) {
	c, err := s.Collection(id)
	if err != nil {
		return nil, err
	}
	return c.Related(currentSlug, limit), nil
}
