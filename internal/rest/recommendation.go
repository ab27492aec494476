package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"cineMatch/business/recommender"
	"cineMatch/domain"
	"cineMatch/pkg/logger"
	"cineMatch/pkg/metrics"
)

type (
	RecommendationService interface {
		Recommend(ctx context.Context, ratings map[uint64]float64, n int) ([]domain.Recommendation, error)
		DebugRecommend(ctx context.Context, ratings map[uint64]float64, n int) ([]domain.DebugRecommendation, error)
	}

	// PreferenceReader resolves a user id to engine-form ratings.
	PreferenceReader interface {
		GetRatings(ctx context.Context, id uint) (map[uint64]float64, error)
	}

	RecommendationHandler struct {
		recoService RecommendationService
		prefReader  PreferenceReader
		defaultN    int
	}
)

func NewRecommendationHandler(recoService RecommendationService, prefReader PreferenceReader, defaultN int) *RecommendationHandler {
	return &RecommendationHandler{
		recoService: recoService,
		prefReader:  prefReader,
		defaultN:    defaultN,
	}
}

// GET /api/v1/recommendations/:user_id?n=5
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.RecommendLatency)
	defer timer.ObserveDuration()
	metrics.RecommendRequests.Inc()

	userID, n, err := h.parseParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ratings, status, err := h.loadRatings(c, userID)
	if err != nil {
		return c.JSON(status, ResponseError{Message: err.Error()})
	}

	recs, err := h.recoService.Recommend(c.Request().Context(), ratings, n)
	if err != nil {
		return h.recommendError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"user_id":         userID,
		"recommendations": recs,
	}))
}

// GET /api/v1/recommendations/:user_id/debug?n=5
func (h *RecommendationHandler) DebugRecommend(c echo.Context) error {
	userID, n, err := h.parseParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ratings, status, err := h.loadRatings(c, userID)
	if err != nil {
		return c.JSON(status, ResponseError{Message: err.Error()})
	}

	recs, err := h.recoService.DebugRecommend(c.Request().Context(), ratings, n)
	if err != nil {
		return h.recommendError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"user_id":         userID,
		"recommendations": recs,
	}))
}

func (h *RecommendationHandler) parseParams(c echo.Context) (uint, int, error) {
	userID, err := parseUserID(c.Param("user_id"))
	if err != nil {
		return 0, 0, errors.New("invalid user id")
	}

	n := h.defaultN
	if raw := c.QueryParam("n"); raw != "" {
		n, err = strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, 0, errors.New("invalid n")
		}
	}

	return userID, n, nil
}

func (h *RecommendationHandler) loadRatings(c echo.Context, userID uint) (map[uint64]float64, int, error) {
	ratings, err := h.prefReader.GetRatings(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to load user ratings", err)
		if err.Error() == "user not found" {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}
	return ratings, 0, nil
}

func (h *RecommendationHandler) recommendError(c echo.Context, err error) error {
	logger.Error("Failed to compute recommendations", err)
	switch {
	case errors.Is(err, recommender.ErrUnknownMovie):
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	case errors.Is(err, recommender.ErrInvalidCatalog):
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
}
