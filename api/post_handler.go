package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/services"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     *content.Collection
	articles  *services.ArticleService
}

func newPostHandler(posts *content.Collection, articles *services.ArticleService) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
		articles:  articles,
	}
}

// listPosts returns posts in authored order, optionally filtered by ?tag= and cut to ?limit=
func (h postHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r, h.posts.Len())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		posts := h.posts.Take(limit)
		if tag := r.URL.Query().Get("tag"); tag != "" {
			posts = h.posts.WithTag(tag)
			posts = posts[:min(limit, len(posts))]
		}

		h.responder.WriteJSON(w, ItemCollection{
			Items: posts,
			Total: len(posts),
		})
	}
}

// getPost returns the composed article for a post slug
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		article, err := h.articles.Article(r.Context(), slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, article)
	}
}
