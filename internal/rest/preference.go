package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"cineMatch/domain"
	"cineMatch/pkg/logger"
)

type PreferenceService interface {
	CreatePreferences(ctx context.Context, ratings map[uint64]float64) (domain.UserPreference, error)
	UpdatePreferences(ctx context.Context, id uint, ratings map[uint64]float64) (domain.UserPreference, error)
	GetPreferences(ctx context.Context, id uint) (domain.UserPreference, error)
}

type PreferenceHandler struct {
	preferenceService PreferenceService
	validator         *validator.Validate
	timeout           time.Duration
}

func NewPreferenceHandler(preferenceService PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
		validator:         validator.New(),
		timeout:           10 * time.Second,
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// Ratings keys are movie ids; the map may be empty but must be present.
type SavePreferencesRequest struct {
	Ratings map[uint64]float64 `json:"ratings" validate:"required"`
}

func (h *PreferenceHandler) CreateUser(c echo.Context) error {
	var req SavePreferencesRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate preferences request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pref, err := h.preferenceService.CreatePreferences(ctx, req.Ratings)
	if err != nil {
		logger.Error("Failed to create user preferences", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "User added successfully",
		"user_id": pref.ID,
	})
}

func (h *PreferenceHandler) UpdateUser(c echo.Context) error {
	userID, err := parseUserID(c.Param("id"))
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
	}

	var req SavePreferencesRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate preferences request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pref, err := h.preferenceService.UpdatePreferences(ctx, userID, req.Ratings)
	if err != nil {
		logger.Error("Failed to update user preferences", err)
		if err.Error() == "user not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "User preferences updated successfully",
		"user_id": pref.ID,
	})
}

func (h *PreferenceHandler) GetUser(c echo.Context) error {
	userID, err := parseUserID(c.Param("id"))
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pref, err := h.preferenceService.GetPreferences(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user preferences", err)
		if err.Error() == "user not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, pref)
}

func parseUserID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
