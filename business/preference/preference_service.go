package preference

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/datatypes"

	"cineMatch/domain"
	"cineMatch/pkg/logger"
)

// PreferenceRepository contract interface
type PreferenceRepository interface {
	Create(ctx context.Context, pref *domain.UserPreference) error
	Update(ctx context.Context, pref *domain.UserPreference) error
	FindByID(ctx context.Context, id uint) (domain.UserPreference, error)
}

type preferenceService struct {
	prefRepo PreferenceRepository
}

func NewPreferenceService(prefRepo PreferenceRepository) *preferenceService {
	return &preferenceService{
		prefRepo: prefRepo,
	}
}

// CreatePreferences stores a new user's ratings and hands back the record
// with the fresh auto-assigned user id. Empty ratings are allowed; such a
// user just gets the degenerate zero preference vector at recommend time.
func (s *preferenceService) CreatePreferences(ctx context.Context, ratings map[uint64]float64) (domain.UserPreference, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create preferences")
		return domain.UserPreference{}, fmt.Errorf("context error: %w", err)
	}

	pref := domain.UserPreference{
		Ratings: RatingsToJSONMap(ratings),
	}

	if err := s.prefRepo.Create(ctx, &pref); err != nil {
		logger.Error("failed to create user preferences", err)
		return domain.UserPreference{}, fmt.Errorf("failed to create preferences: %w", err)
	}

	logger.Info("user preferences created", "user_id", pref.ID, "ratings", len(ratings))

	return pref, nil
}

// UpdatePreferences replaces the whole ratings map for an existing user.
func (s *preferenceService) UpdatePreferences(ctx context.Context, id uint, ratings map[uint64]float64) (domain.UserPreference, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when update preferences")
		return domain.UserPreference{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("Invalid user id")
		return domain.UserPreference{}, fmt.Errorf("invalid user id")
	}

	pref := domain.UserPreference{
		ID:      id,
		Ratings: RatingsToJSONMap(ratings),
	}

	if err := s.prefRepo.Update(ctx, &pref); err != nil {
		logger.Error("failed to update user preferences", err)
		return domain.UserPreference{}, err
	}

	updated, err := s.prefRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to fetch updated preferences", err)
		return domain.UserPreference{}, fmt.Errorf("failed to fetch updated preferences: %w", err)
	}

	return updated, nil
}

func (s *preferenceService) GetPreferences(ctx context.Context, id uint) (domain.UserPreference, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get preferences")
		return domain.UserPreference{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("Invalid user id")
		return domain.UserPreference{}, fmt.Errorf("invalid user id")
	}

	return s.prefRepo.FindByID(ctx, id)
}

// GetRatings returns a user's ratings decoded into engine form.
func (s *preferenceService) GetRatings(ctx context.Context, id uint) (map[uint64]float64, error) {
	pref, err := s.GetPreferences(ctx, id)
	if err != nil {
		return nil, err
	}
	return RatingsFromJSONMap(pref.Ratings)
}

// RatingsToJSONMap converts engine-form ratings into the JSONB column
// representation (movie id as string key).
func RatingsToJSONMap(ratings map[uint64]float64) datatypes.JSONMap {
	m := make(datatypes.JSONMap, len(ratings))
	for movieID, weight := range ratings {
		m[strconv.FormatUint(movieID, 10)] = weight
	}
	return m
}

// RatingsFromJSONMap decodes a stored ratings column. Postgres JSONB round
// trips numbers as float64; json.Number shows up when a caller decoded with
// UseNumber.
func RatingsFromJSONMap(m datatypes.JSONMap) (map[uint64]float64, error) {
	out := make(map[uint64]float64, len(m))
	for key, val := range m {
		movieID, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid movie id %q in stored ratings", key)
		}

		switch v := val.(type) {
		case float64:
			out[movieID] = v
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil, fmt.Errorf("invalid rating for movie %s: %w", key, err)
			}
			out[movieID] = f
		default:
			return nil, fmt.Errorf("invalid rating value for movie %s", key)
		}
	}
	return out, nil
}
