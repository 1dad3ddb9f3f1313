package repository

import "errors"

var (
	// ErrMovieNotFound is returned by BookingRepository.Create when movie_id does not resolve.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrInsufficientSeats is returned when the movie has fewer seats left than requested.
	ErrInsufficientSeats = errors.New("insufficient seats")
)
