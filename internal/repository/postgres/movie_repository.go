package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cineMatch/domain"
)

type MovieRepository struct {
	DB *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{
		DB: db,
	}
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(movie).Error; err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id uint64) (domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return domain.Movie{}, fmt.Errorf("context error: %w", err)
	}

	var movie domain.Movie

	err := r.DB.WithContext(ctx).First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Movie{}, errors.New("movie not found")
		}
		return domain.Movie{}, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

// FindAll returns the catalog ordered by ascending id. The recommender's
// feature matrix rows follow this order, so it must stay deterministic.
func (r *MovieRepository) FindAll(ctx context.Context) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var movies []domain.Movie
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&movies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}

	return movies, nil
}
