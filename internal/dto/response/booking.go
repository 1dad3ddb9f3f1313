package response

import (
	"movie-booking/internal/data/entity"
	"time"
)

type BookingResponse struct {
	ID           int64     `json:"id"`
	MovieID      int64     `json:"movie_id"`
	CustomerName string    `json:"customer_name"`
	SeatsBooked  int       `json:"seats_booked"`
	CreatedAt    time.Time `json:"created_at"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           booking.ID,
		MovieID:      booking.MovieID,
		CustomerName: booking.CustomerName,
		SeatsBooked:  booking.SeatsBooked,
		CreatedAt:    booking.CreatedAt.UTC(),
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = BookingToResponse(booking)
	}
	return out
}
