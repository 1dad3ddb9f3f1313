package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
) {
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - reserve seats and record the booking
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings - all bookings, id ascending
		r.Get("/", bookingHandler.GetBookings)

		// GET /api/bookings/{id}
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// GET /api/bookings/customer/{name} - bookings made under one name
		r.Get("/customer/{name}", bookingHandler.GetCustomerBookings)
	})
}
