package response

import (
	"movie-booking/internal/data/entity"
	"time"
)

type MovieResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Showtime        time.Time `json:"showtime"`
	Price           float64   `json:"price"`
	AvailableSeats  int       `json:"available_seats"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:              movie.ID,
		Title:           movie.Title,
		Description:     movie.Description,
		DurationMinutes: movie.DurationMinutes,
		Showtime:        movie.Showtime.UTC(),
		Price:           movie.Price,
		AvailableSeats:  movie.AvailableSeats,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
