package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/pages"
	"github.com/rpupo63/portfolio-site-backend/services"
)

const siteName = "Portfolio"

type pageHandler struct {
	logger       zerolog.Logger
	store        content.Store
	articles     *services.ArticleService
	pages        *pages.Renderer
	previewLimit int
}

func newPageHandler(deps Dependencies, previewLimit int) pageHandler {
	return pageHandler{
		logger:       log.With().Str("handlerName", "pageHandler").Logger(),
		store:        deps.Store,
		articles:     deps.Articles,
		pages:        deps.Pages,
		previewLimit: previewLimit,
	}
}

func (h pageHandler) site() pages.Site {
	return pages.Site{
		Name:     siteName,
		NavItems: h.store.Profile().NavItems,
		Year:     time.Now().Year(),
	}
}

func (h pageHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.write(w, http.StatusOK)(h.pages.RenderHome(pages.HomePage{
			Site:     h.site(),
			Title:    siteName,
			Profile:  h.store.Profile(),
			Projects: h.store.Projects().ListAll(),
			Posts:    h.store.Posts().Take(h.previewLimit),
		}))
	}
}

func (h pageHandler) blog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := h.store.Posts()
		page := pages.BlogPage{
			Site:  h.site(),
			Title: "Blog",
			Tags:  posts.Tags(),
			Posts: posts.ListAll(),
		}
		if tag := r.URL.Query().Get("tag"); tag != "" {
			page.Tag = tag
			page.Posts = posts.WithTag(tag)
		}
		h.write(w, http.StatusOK)(h.pages.RenderBlog(page))
	}
}

func (h pageHandler) post() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := h.store.Posts()
		article, err := h.articles.Article(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			h.writeMiss(w, posts.Meta(), err)
			return
		}

		meta := posts.Meta()
		h.write(w, http.StatusOK)(h.pages.RenderPost(pages.PostPage{
			Site:      h.site(),
			Title:     article.Post.Title,
			Article:   article,
			BackLink:  meta.ListingPath,
			BackLabel: meta.ListingLabel,
		}))
	}
}

func (h pageHandler) project() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects := h.store.Projects()
		project, err := projects.Get(chi.URLParam(r, "slug"))
		if err != nil {
			h.writeMiss(w, projects.Meta(), err)
			return
		}

		meta := projects.Meta()
		h.write(w, http.StatusOK)(h.pages.RenderProject(pages.ProjectPage{
			Site:      h.site(),
			Title:     project.Title,
			Project:   project,
			BackLink:  meta.ListingPath,
			BackLabel: meta.ListingLabel,
		}))
	}
}

// notFound handles unmatched paths with a page that links back home
func (h pageHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.write(w, http.StatusNotFound)(h.pages.RenderNotFound(pages.NotFoundPage{
			Site:      h.site(),
			Title:     "Page not found",
			Heading:   "Page not found",
			BackLink:  "/",
			BackLabel: "Back home",
		}))
	}
}

// writeMiss renders the collection's not-found page for a NotFound error and
// a bare 500 for anything else
func (h pageHandler) writeMiss(w http.ResponseWriter, meta content.CollectionMeta, err error) {
	if !errs.IsNotFound(err) {
		h.logger.Error().Err(err).Msg("composing page failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.write(w, http.StatusNotFound)(h.pages.RenderNotFound(pages.NotFoundFor(h.site(), meta)))
}

func (h pageHandler) write(w http.ResponseWriter, status int) func([]byte, error) {
	return func(body []byte, err error) {
		if err != nil {
			h.logger.Error().Err(err).Msg("rendering page failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if _, err := w.Write(body); err != nil {
			h.logger.Error().Err(err).Msg("error writing page")
		}
	}
}
