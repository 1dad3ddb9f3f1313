package entity

import (
	"time"
)

type Movie struct {
	Base
	Title           string    `db:"title"`
	Description     *string   `db:"description"`
	DurationMinutes int       `db:"duration_minutes"`
	Showtime        time.Time `db:"showtime"`
	Price           float64   `db:"price"`
	AvailableSeats  int       `db:"available_seats"`
}
