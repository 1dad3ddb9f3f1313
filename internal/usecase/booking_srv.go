package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/cache"
	"movie-booking/pkg/events"

	"go.uber.org/zap"
)

const sideEffectTimeout = 2 * time.Second

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, id int64) (*response.BookingResponse, error)
	GetBookingsByMovie(ctx context.Context, movieID int64) ([]response.BookingResponse, error)
	GetBookingsByCustomer(ctx context.Context, customerName string) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	cache     cache.MovieCache
	publisher events.Publisher
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, movieCache cache.MovieCache, publisher events.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		cache:     movieCache,
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	booking := &entity.Booking{
		MovieID:      req.MovieID,
		CustomerName: req.CustomerName,
		SeatsBooked:  req.SeatsBooked,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		switch {
		case errors.Is(err, repository.ErrMovieNotFound):
			return nil, ErrMovieNotFound
		case errors.Is(err, repository.ErrInsufficientSeats):
			s.log.Info("Booking rejected, not enough seats",
				zap.Int64("movie_id", req.MovieID),
				zap.Int("seats_requested", req.SeatsBooked),
			)
			return nil, ErrInsufficientSeats
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// The booking is committed; cache and event failures must not undo it, and a
	// client hanging up must not skip them.
	sideCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	if err := s.cache.InvalidateMovie(sideCtx, booking.MovieID); err != nil {
		s.log.Warn("Movie cache invalidation failed", zap.Error(err), zap.Int64("movie_id", booking.MovieID))
	}
	if err := s.publisher.PublishBookingCreated(sideCtx, booking); err != nil {
		s.log.Error("Failed to publish booking event", zap.Error(err), zap.Int64("booking_id", booking.ID))
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("movie_id", booking.MovieID),
		zap.String("customer_name", booking.CustomerName),
		zap.Int("seats_booked", booking.SeatsBooked),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id int64) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingsByMovie(ctx context.Context, movieID int64) ([]response.BookingResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	bookings, err := s.repo.Booking.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get bookings for movie %d: %w", movieID, err)
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingsByCustomer(ctx context.Context, customerName string) ([]response.BookingResponse, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, newValidationError("customer_name", "Must not be blank")
	}

	bookings, err := s.repo.Booking.FindByCustomerName(ctx, customerName)
	if err != nil {
		return nil, fmt.Errorf("get bookings for customer: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}
