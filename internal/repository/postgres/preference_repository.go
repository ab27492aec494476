package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cineMatch/domain"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{
		DB: db,
	}
}

func (r *PreferenceRepository) Create(ctx context.Context, pref *domain.UserPreference) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(pref).Error; err != nil {
		return fmt.Errorf("failed to create user preferences: %w", err)
	}

	return nil
}

// Update replaces the stored ratings wholesale.
func (r *PreferenceRepository) Update(ctx context.Context, pref *domain.UserPreference) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Model(&domain.UserPreference{}).
		Where("id = ?", pref.ID).
		Update("ratings", pref.Ratings)
	if result.Error != nil {
		return fmt.Errorf("failed to update user preferences: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("user not found")
	}

	return nil
}

func (r *PreferenceRepository) FindByID(ctx context.Context, id uint) (domain.UserPreference, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserPreference{}, fmt.Errorf("context error: %w", err)
	}

	var pref domain.UserPreference

	err := r.DB.WithContext(ctx).First(&pref, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserPreference{}, errors.New("user not found")
		}
		return domain.UserPreference{}, fmt.Errorf("failed to find user preferences: %w", err)
	}

	return pref, nil
}
