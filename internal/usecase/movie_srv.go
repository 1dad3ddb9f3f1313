package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/cache"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error)
}

type movieService struct {
	repo  *repository.Repository
	cache cache.MovieCache
	log   *zap.Logger
}

func NewMovieService(repo *repository.Repository, movieCache cache.MovieCache, log *zap.Logger) MovieService {
	return &movieService{
		repo:  repo,
		cache: movieCache,
		log:   log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	cached, gen, ok, cacheErr := s.cache.GetMovies(ctx)
	if cacheErr != nil {
		s.log.Warn("Movie cache read failed", zap.Error(cacheErr))
	}
	if ok {
		return response.MoviesToResponse(cached), nil
	}

	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	// Without a generation from the read there is nothing safe to write under.
	if cacheErr == nil {
		if err := s.cache.SetMovies(ctx, gen, movies); err != nil {
			s.log.Warn("Movie cache write failed", zap.Error(err))
		}
	}

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	cached, gen, ok, cacheErr := s.cache.GetMovie(ctx, id)
	if cacheErr != nil {
		s.log.Warn("Movie cache read failed", zap.Error(cacheErr), zap.Int64("movie_id", id))
	}
	if ok {
		resp := response.MovieToResponse(cached)
		return &resp, nil
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	if cacheErr == nil {
		if err := s.cache.SetMovie(ctx, gen, movie); err != nil {
			s.log.Warn("Movie cache write failed", zap.Error(err), zap.Int64("movie_id", id))
		}
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}
