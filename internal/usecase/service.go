package usecase

import (
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/cache"
	"movie-booking/pkg/events"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Booking BookingService
}

func NewService(repo *repository.Repository, movieCache cache.MovieCache, publisher events.Publisher, log *zap.Logger) *Service {
	return &Service{
		Movie:   NewMovieService(repo, movieCache, log),
		Booking: NewBookingService(repo, movieCache, publisher, log),
	}
}
