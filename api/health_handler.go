package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/errs"
)

type healthHandler struct {
	responder   Responder
	store       content.Store
	startupTime time.Time
}

func newHealthHandler(store content.Store, startupTime time.Time) healthHandler {
	return healthHandler{
		responder:   NewResponder(log.With().Str("handlerName", "healthHandler").Logger()),
		store:       store,
		startupTime: startupTime,
	}
}

func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status:        "ok",
			UptimeSeconds: int64(time.Since(h.startupTime).Seconds()),
			Posts:         h.store.Posts().Len(),
			Projects:      h.store.Projects().Len(),
		})
	}
}

// unknownRoute answers unmatched /api paths with a JSON 404
func (h healthHandler) unknownRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteError(w, errs.NewNotFound("route"))
	}
}
