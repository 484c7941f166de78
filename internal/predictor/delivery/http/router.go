package http

import (
	"net/http"

	"stock-predictor/pkg/logger"
	"stock-predictor/pkg/validator"

	"github.com/labstack/echo/v4"
	swagger "github.com/swaggo/echo-swagger"
)

// NewRouter wires every handler into a new Echo instance.
func NewRouter(predictionHandler *PredictionHandler, seriesHandler *SeriesHandler, validate *validator.Validator, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate
	e.Use(RequestLogger(log))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	apiV1 := e.Group("/api/v1")
	predictionHandler.RegisterRoutes(apiV1.Group("/predictions"))
	seriesHandler.RegisterRoutes(apiV1.Group("/series"))
	apiV1.GET("/dashboard", seriesHandler.GetDashboard)

	e.GET("/swagger/*", swagger.WrapHandler)
	return e
}
