// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the control API router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Post("/refresh", h.refresh)

		r.Get("/status/full", h.fullStatus)
		r.Get("/status/recent", h.recentStatus)
		r.Get("/accomplishments", h.accomplishments)

		r.Post("/linked/refresh", h.refreshLinked)
		r.Get("/linked/count", h.linkedCount)

		r.Get("/schedule", h.scheduleStatus)
		r.Delete("/schedule", h.cancelSchedule)
		r.Post("/map-change", h.mapChange)

		r.Get("/settings", h.getSettings)
		r.Put("/settings", h.putSettings)

		r.Get("/version", h.getVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
