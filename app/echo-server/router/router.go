package router

import (
	"github.com/labstack/echo/v4"

	"cineMatch/internal/rest"
)

func SetupUserRoutes(api *echo.Group, handler *rest.PreferenceHandler) {
	users := api.Group("/users")

	users.POST("", handler.CreateUser)
	users.GET("/:id", handler.GetUser)
	users.PUT("/:id", handler.UpdateUser)
}

func SetupMovieRoutes(api *echo.Group, handler *rest.MovieHandler) {
	movies := api.Group("/movies")

	movies.GET("", handler.GetAllMovies)
	movies.GET("/:id", handler.GetMovieByID)
	movies.POST("", handler.CreateMovie)
}

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")

	reco.GET("/:user_id", handler.Recommend)
	reco.GET("/:user_id/debug", handler.DebugRecommend)
}
