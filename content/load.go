package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	postsFile    = "posts.yaml"
	projectsFile = "projects.yaml"
	profileFile  = "profile.yaml"
)

// LoadEmbedded builds the Store from the definitions compiled into the binary.
func LoadEmbedded() (Store, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return Store{}, err
	}
	return Load(sub)
}

// Load reads posts.yaml, projects.yaml and profile.yaml from fsys. All
// definition problems are reported together.
func Load(fsys fs.FS) (Store, error) {
	var problems []error

	posts, err := loadPosts(fsys)
	if err != nil {
		problems = append(problems, err)
	}
	projects, err := loadProjects(fsys)
	if err != nil {
		problems = append(problems, err)
	}
	var profile models.Profile
	if err := decode(fsys, profileFile, &profile); err != nil {
		problems = append(problems, err)
	}

	if len(problems) > 0 {
		return Store{}, errors.Join(problems...)
	}
	return New(posts, projects, profile), nil
}

func loadPosts(fsys fs.FS) (*Collection, error) {
	var file postFile
	if err := decode(fsys, postsFile, &file); err != nil {
		return nil, err
	}

	var problems []error
	items := make([]models.ContentItem, 0, len(file.Posts))
	for i, def := range file.Posts {
		item, err := def.item()
		if err != nil {
			problems = append(problems, errs.NewInvalidContentError(string(Posts), i, "date", err.Error()))
			continue
		}
		items = append(items, item)
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return NewCollection(Posts, items)
}

func loadProjects(fsys fs.FS) (*Collection, error) {
	var file projectFile
	if err := decode(fsys, projectsFile, &file); err != nil {
		return nil, err
	}

	items := make([]models.ContentItem, 0, len(file.Projects))
	for _, def := range file.Projects {
		items = append(items, def.item())
	}
	return NewCollection(Projects, items)
}

func decode(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
