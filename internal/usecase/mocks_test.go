package usecase

import (
	"context"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/cache"

	"github.com/stretchr/testify/mock"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Booking, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByCustomerName(ctx context.Context, name string) ([]*entity.Booking, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

type MockMovieCache struct {
	mock.Mock
}

func (m *MockMovieCache) GetMovies(ctx context.Context) ([]*entity.Movie, cache.Generation, bool, error) {
	args := m.Called(ctx)
	gen := args.Get(1).(cache.Generation)
	if args.Get(0) == nil {
		return nil, gen, args.Bool(2), args.Error(3)
	}
	return args.Get(0).([]*entity.Movie), gen, args.Bool(2), args.Error(3)
}

func (m *MockMovieCache) SetMovies(ctx context.Context, gen cache.Generation, movies []*entity.Movie) error {
	args := m.Called(ctx, gen, movies)
	return args.Error(0)
}

func (m *MockMovieCache) GetMovie(ctx context.Context, id int64) (*entity.Movie, cache.Generation, bool, error) {
	args := m.Called(ctx, id)
	gen := args.Get(1).(cache.Generation)
	if args.Get(0) == nil {
		return nil, gen, args.Bool(2), args.Error(3)
	}
	return args.Get(0).(*entity.Movie), gen, args.Bool(2), args.Error(3)
}

func (m *MockMovieCache) SetMovie(ctx context.Context, gen cache.Generation, movie *entity.Movie) error {
	args := m.Called(ctx, gen, movie)
	return args.Error(0)
}

func (m *MockMovieCache) InvalidateMovie(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishBookingCreated(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

type fixture struct {
	movies    *MockMovieRepository
	bookings  *MockBookingRepository
	cache     *MockMovieCache
	publisher *MockPublisher
	repo      *repository.Repository
}

func newFixture() *fixture {
	f := &fixture{
		movies:    new(MockMovieRepository),
		bookings:  new(MockBookingRepository),
		cache:     new(MockMovieCache),
		publisher: new(MockPublisher),
	}
	f.repo = &repository.Repository{Movie: f.movies, Booking: f.bookings}
	return f
}
