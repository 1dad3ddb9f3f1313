package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePage(
	r chi.Router,
	pageHandler *adaptor.PageHandler,
	healthHandler *adaptor.HealthHandler,
) {
	// GET / - booking page, a browser client of the JSON API
	r.Get("/", pageHandler.Index)

	// GET /health - liveness plus store ping
	r.Get("/health", healthHandler.Health)
}
