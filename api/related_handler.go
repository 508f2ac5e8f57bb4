package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/content"
)

type relatedHandler struct {
	responder    Responder
	store        content.Store
	defaultLimit int
}

func newRelatedHandler(store content.Store, defaultLimit int) relatedHandler {
	return relatedHandler{
		responder:    NewResponder(log.With().Str("handlerName", "relatedHandler").Logger()),
		store:        store,
		defaultLimit: defaultLimit,
	}
}

// getRelated lists up to ?limit= items of a collection other than {slug}.
// The slug does not have to exist.
func (h relatedHandler) getRelated() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r, h.defaultLimit)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id := content.CollectionID(chi.URLParam(r, "collection"))
		related, err := h.store.SelectRelated(id, chi.URLParam(r, "slug"), limit)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ItemCollection{
			Items: related,
			Total: len(related),
		})
	}
}
