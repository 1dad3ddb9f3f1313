// internal/wire/wire.go
package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/cache"
	"movie-booking/pkg/database"
	"movie-booking/pkg/events"
	"movie-booking/pkg/middleware"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled HTTP router.
type App struct {
	Router *chi.Mux
}

// Deps are the collaborators built in main and shared by every route.
type Deps struct {
	DB        database.PgxIface
	Cache     cache.MovieCache
	Publisher events.Publisher
}

// Wiring builds repositories, services and handlers and mounts their routes.
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	repo := repository.NewRepository(deps.DB, logger)
	service := usecase.NewService(repo, deps.Cache, deps.Publisher, logger)
	handler := adaptor.NewHandler(service, deps.DB, config.App.Name, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(chimw.StripSlashes)

	wireMovie(r, handler.Movie, handler.Booking)
	wireBooking(r, handler.Booking)
	wirePage(r, handler.Page, handler.Health)

	return r
}
