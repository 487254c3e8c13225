package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/api/user/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/data-quality", func(r chi.Router) {
			r.Get("/filter-options", h.filterOptions)

			r.Route("/dashboards", func(r chi.Router) {
				r.Get("/", h.listDashboards)
				r.Post("/", h.createDashboard)

				r.Route("/{dashboardID}", func(r chi.Router) {
					r.Get("/", h.getScoreCard)
					r.Put("/", h.updateDashboard)
					r.Delete("/", h.deleteDashboard)

					r.Get("/definition", h.getDashboardDefinition)
					r.Post("/recalculate", h.recalculateDashboard)
					r.Get("/breakdown", h.getBreakdown)
					r.Get("/issues", h.getIssues)
				})
			})

			r.Route("/connections", func(r chi.Router) {
				r.Get("/", h.listConnections)
				r.Post("/", h.createConnection)
				r.Get("/{connectionID}", h.getConnection)
			})
		})
	})

	return router
}
