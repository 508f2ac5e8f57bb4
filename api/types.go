package api

import (
	"github.com/rpupo63/portfolio-site-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler  healthHandler
	profileHandler profileHandler
	postHandler    postHandler
	projectHandler projectHandler
	relatedHandler relatedHandler
	renderHandler  renderHandler
	contactHandler contactHandler
	contactLimiter *ClientRateLimiter
	pageHandler    pageHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error    string            `json:"error"`
	Status   string            `json:"status"`
	Field    string            `json:"field,omitempty"`
	Details  string            `json:"details,omitempty"`
	Cause    string            `json:"cause,omitempty"`
	BackLink string            `json:"backLink,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// ItemCollection is a listing of posts or projects in collection order
type ItemCollection struct {
	Items []models.ContentItem `json:"items"`
	Total int                  `json:"total"`
}

// ProjectDetail is a project with the projects shown next to it
type ProjectDetail struct {
	Project models.ContentItem   `json:"project"`
	Related []models.ContentItem `json:"related"`
}

type RenderRequest struct {
	Body string `json:"body"`
}

type RenderResponse struct {
	Blocks   []models.Block         `json:"blocks"`
	Metadata models.DisplayMetadata `json:"metadata"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Posts         int    `json:"posts"`
	Projects      int    `json:"projects"`
}
