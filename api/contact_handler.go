package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
)

const maxContactBodySize = 64 << 10 // 64KB

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	contact   *services.ContactService
}

func newContactHandler(contact *services.ContactService) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		contact:   contact,
	}
}

// sendMessage accepts a contact form submission and answers 202 with a receipt
func (h contactHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg models.ContactMessage
		if err := decodeJSONBody(w, r, maxContactBodySize, "contact", &msg); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		receipt, err := h.contact.Send(r.Context(), msg)
		if err != nil {
			var fieldErrs services.FieldErrors
			if errors.As(err, &fieldErrs) {
				h.responder.WriteFieldErrors(w, fieldErrs)
				return
			}
			if errs.IsTimeout(err) {
				h.logger.Warn().Err(err).Str("requestId", ctxGetRequestID(r.Context())).Msg("contact delivery abandoned")
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusAccepted, receipt)
	}
}
