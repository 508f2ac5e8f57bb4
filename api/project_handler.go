package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/content"
)

type projectHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projects     *content.Collection
	relatedLimit int
}

func newProjectHandler(projects *content.Collection, relatedLimit int) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projects:     projects,
		relatedLimit: relatedLimit,
	}
}

// listProjects returns projects in display order, optionally cut to ?limit=
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r, h.projects.Len())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects := h.projects.Take(limit)
		h.responder.WriteJSON(w, ItemCollection{
			Items: projects,
			Total: len(projects),
		})
	}
}

// getProject returns a project and the projects shown alongside it
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		project, err := h.projects.Get(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ProjectDetail{
			Project: project,
			Related: h.projects.Related(project.Slug, h.relatedLimit),
		})
	}
}
