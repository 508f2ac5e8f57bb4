package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/metadata"
	"github.com/rpupo63/portfolio-site-backend/render"
)

const maxRenderBodySize = 1 << 20 // 1MB

type renderHandler struct {
	responder Responder
	logger    zerolog.Logger
	calc      metadata.Calculator
}

func newRenderHandler(calc metadata.Calculator) renderHandler {
	logger := log.With().Str("handlerName", "renderHandler").Logger()

	return renderHandler{
		responder: NewResponder(logger),
		logger:    logger,
		calc:      calc,
	}
}

// renderBody parses an arbitrary body into blocks and derives its metadata
func (h renderHandler) renderBody() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RenderRequest
		if err := decodeJSONBody(w, r, maxRenderBodySize, "render", &req); err != nil {
			h.logger.Debug().Err(err).Msg("rejecting render request")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, RenderResponse{
			Blocks:   render.Blocks(req.Body),
			Metadata: h.calc.Compute(req.Body),
		})
	}
}
