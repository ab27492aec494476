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

type CatalogService interface {
	GetAllMovies(ctx context.Context) ([]domain.Movie, error)
	GetMovieByID(ctx context.Context, id uint64) (domain.Movie, error)
	AddMovie(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
}

type MovieHandler struct {
	catalogService CatalogService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewMovieHandler(catalogService CatalogService) *MovieHandler {
	return &MovieHandler{
		catalogService: catalogService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateMovieRequest struct {
	Title            string   `json:"title" validate:"required"`
	Director         string   `json:"director"`
	Genres           []string `json:"genres" validate:"required,min=1,dive,required"`
	Runtime          float64  `json:"runtime" validate:"gte=0"`
	OriginalLanguage string   `json:"original_language"`
	Description      string   `json:"description"`
	Studios          []string `json:"studios"`
	AverageRating    float64  `json:"average_rating" validate:"gte=0,lte=5"`
}

func (h *MovieHandler) GetAllMovies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	movies, err := h.catalogService.GetAllMovies(ctx)
	if err != nil {
		logger.Error("Failed to find all movies", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all movies",
		"movies":  movies,
	})
}

func (h *MovieHandler) GetMovieByID(c echo.Context) error {
	movieIDStr := c.Param("id")

	movieID, err := strconv.ParseUint(movieIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid movie id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid movie id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	movie, err := h.catalogService.GetMovieByID(ctx, movieID)
	if err != nil {
		logger.Error("Failed to find movie", err)
		if err.Error() == "movie not found" || err.Error() == "invalid movie id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get movie",
		"movie":   movie,
	})
}

func (h *MovieHandler) CreateMovie(c echo.Context) error {
	var req CreateMovieRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate movie request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	movie := &domain.Movie{
		Title:            req.Title,
		Director:         req.Director,
		Genres:           req.Genres,
		Runtime:          req.Runtime,
		OriginalLanguage: req.OriginalLanguage,
		Description:      req.Description,
		Studios:          req.Studios,
		AverageRating:    req.AverageRating,
	}

	newMovie, err := h.catalogService.AddMovie(ctx, movie)
	if err != nil {
		logger.Error("Failed to add movie", err)
		if err.Error() == "title is required" || err.Error() == "at least one genre is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "movie successfully added",
		"movie":   newMovie,
	})
}
