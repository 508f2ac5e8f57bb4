package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type profileHandler struct {
	responder Responder
	profile   models.Profile
}

func newProfileHandler(profile models.Profile) profileHandler {
	return profileHandler{
		responder: NewResponder(log.With().Str("handlerName", "profileHandler").Logger()),
		profile:   profile,
	}
}

func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.profile)
	}
}
