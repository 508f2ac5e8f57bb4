package api

import (
	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes sets up the JSON endpoints under /api
func setupAPIRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		r.NotFound(handlers.healthHandler.unknownRoute())

		r.Get("/health", handlers.healthHandler.getHealth())
		r.Get("/profile", handlers.profileHandler.getProfile())

		// Post endpoints
		r.Get("/posts", handlers.postHandler.listPosts())
		r.Get("/posts/{slug}", handlers.postHandler.getPost())

		// Project endpoints
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{slug}", handlers.projectHandler.getProject())

		r.Get("/{collection}/{slug}/related", handlers.relatedHandler.getRelated())

		r.Post("/render", handlers.renderHandler.renderBody())

		r.Group(func(r chi.Router) {
			r.Use(handlers.contactLimiter.Middleware())
			r.Post("/contact", handlers.contactHandler.sendMessage())
		})
	})
}

// setupPageRoutes sets up the server-rendered HTML pages
func setupPageRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/", handlers.pageHandler.home())
	r.Get("/blog", handlers.pageHandler.blog())
	r.Get("/blog/{slug}", handlers.pageHandler.post())
	r.Get("/projects/{slug}", handlers.pageHandler.project())
	r.NotFound(handlers.pageHandler.notFound())
}
