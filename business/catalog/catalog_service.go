package catalog

import (
	"context"
	"errors"
	"fmt"

	"cineMatch/domain"
	"cineMatch/pkg/logger"
)

// MovieRepository contract interface
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	FindByID(ctx context.Context, id uint64) (domain.Movie, error)
	FindAll(ctx context.Context) ([]domain.Movie, error)
}

// SnapshotRebuilder recomputes the derived recommendation state after a
// catalog mutation. The rebuild happens before AddMovie returns, so the new
// movie is recommendable as soon as the response is sent.
type SnapshotRebuilder interface {
	Rebuild(ctx context.Context) error
}

type catalogService struct {
	movieRepo  MovieRepository
	rebuilder  SnapshotRebuilder
	seedRating float64
}

func NewCatalogService(movieRepo MovieRepository, rebuilder SnapshotRebuilder, seedRating float64) *catalogService {
	return &catalogService{
		movieRepo:  movieRepo,
		rebuilder:  rebuilder,
		seedRating: seedRating,
	}
}

func (s *catalogService) GetAllMovies(ctx context.Context) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all movies")
		return nil, fmt.Errorf("context error: %w", err)
	}

	movies, err := s.movieRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all movies", err)
		return nil, err
	}

	return movies, nil
}

func (s *catalogService) GetMovieByID(ctx context.Context, id uint64) (domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get movie by id")
		return domain.Movie{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("Invalid movie id")
		return domain.Movie{}, errors.New("invalid movie id")
	}

	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find movie", err)
		return domain.Movie{}, err
	}

	return movie, nil
}

// AddMovie appends a movie to the catalog and rebuilds the recommendation
// snapshot. A missing average rating gets the configured seed value.
func (s *catalogService) AddMovie(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when add movie")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if movie.Title == "" {
		logger.Error("Invalid movie data: title is required")
		return nil, errors.New("title is required")
	}
	if len(movie.Genres) == 0 {
		logger.Error("Invalid movie data: at least one genre is required")
		return nil, errors.New("at least one genre is required")
	}

	if movie.AverageRating == 0 {
		movie.AverageRating = s.seedRating
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		logger.Error("failed to create movie", err)
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	if err := s.rebuilder.Rebuild(ctx); err != nil {
		logger.Error("failed to rebuild snapshot after catalog add", err)
		return nil, fmt.Errorf("rebuild catalog state: %w", err)
	}

	logger.Info("movie added to catalog", "movie_id", movie.ID, "title", movie.Title)

	return movie, nil
}
