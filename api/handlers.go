package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/metadata"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(cfg config.Config, deps Dependencies, startupTime time.Time) *routeHandlers {
	// malformed entries are rejected by config.Validate
	proxies, _ := cfg.TrustedProxyPrefixes()
	return &routeHandlers{
		healthHandler:  newHealthHandler(deps.Store, startupTime),
		profileHandler: newProfileHandler(deps.Store.Profile()),
		postHandler:    newPostHandler(deps.Store.Posts(), deps.Articles),
		projectHandler: newProjectHandler(deps.Store.Projects(), cfg.RelatedLimit),
		relatedHandler: newRelatedHandler(deps.Store, cfg.RelatedLimit),
		renderHandler:  newRenderHandler(metadata.NewCalculator(cfg.ReadingWPM)),
		contactHandler: newContactHandler(deps.Contact),
		contactLimiter: NewClientRateLimiter(cfg.ContactRatePerMinute, proxies...),
		pageHandler:    newPageHandler(deps, cfg.PreviewLimit),
	}
}

// parseLimit reads the "limit" query parameter, returning fallback when it is absent
func parseLimit(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errs.NewInvalidFieldError("limit", "must be a non-negative integer")
	}
	return limit, nil
}

// decodeJSONBody decodes a size-limited JSON request body into dst
func decodeJSONBody(w http.ResponseWriter, r *http.Request, maxBytes int64, payloadType string, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		var syntaxErr *json.SyntaxError
		switch {
		case errors.As(err, &maxBytesErr):
			return errs.NewMaxBodySizeExceededError(maxBytes)
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return errs.NewInvalidJSONError(err)
		case errors.Is(err, io.EOF):
			return errs.NewMissingRequiredFieldError("body")
		default:
			return errs.NewMalformedPayloadError(payloadType, err)
		}
	}
	return nil
}
