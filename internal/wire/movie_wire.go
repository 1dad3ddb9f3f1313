package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	bookingHandler *adaptor.BookingHandler,
) {
	r.Route("/api/movies", func(r chi.Router) {
		// GET /api/movies - all movies, id ascending
		r.Get("/", movieHandler.GetMovies)

		// GET /api/movies/{id}
		r.Get("/{id}", movieHandler.GetMovieByID)

		// GET /api/movies/{id}/bookings - bookings for one movie
		r.Get("/{id}/bookings", bookingHandler.GetMovieBookings)
	})
}
