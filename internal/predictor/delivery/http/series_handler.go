package http

import (
	"net/http"
	"strconv"

	"stock-predictor/internal/predictor/dto"
	"stock-predictor/internal/predictor/service"
	"stock-predictor/pkg/logger"
	"stock-predictor/pkg/validator"

	"github.com/labstack/echo/v4"
)

// SeriesHandler handles HTTP requests for synthetic price series.
type SeriesHandler struct {
	seriesService service.SeriesService
	logger        *logger.Logger
}

// NewSeriesHandler creates a new SeriesHandler.
func NewSeriesHandler(seriesService service.SeriesService, logger *logger.Logger) *SeriesHandler {
	return &SeriesHandler{seriesService: seriesService, logger: logger}
}

// RegisterRoutes registers the series routes to the Echo group.
func (h *SeriesHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetSeries)
	g.GET("/profiles", h.GetProfiles)
}

// GetSeries godoc
// @Summary Generate a synthetic OHLCV series
// @Description Generate days+1 daily bars ending today (or end_date), oldest first
// @Tags series
// @Produce  json
// @Param   profile     query  string  false  "Generator profile"
// @Param   days        query  int     false  "Days before the end date"
// @Param   base_price  query  number  false  "Open of the first bar"
// @Param   end_date    query  string  false  "Date of the last bar (YYYY-MM-DD)"
// @Success 200 {object} dto.SeriesResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /series [get]
func (h *SeriesHandler) GetSeries(c echo.Context) error {
	var req dto.SeriesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters"})
	}
	if raw := c.QueryParam("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return writeError(c, &validator.ValidationError{Fields: []validator.FieldError{{Field: "days", Message: "must be an integer"}}})
		}
		req.Days = &days
	}

	resp, err := h.seriesService.Generate(c.Request().Context(), &req)
	if err != nil {
		h.logger.DebugContext(c.Request().Context(), "Failed to generate series", logger.ErrorField(err))
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetProfiles godoc
// @Summary List generator profiles
// @Tags series
// @Produce  json
// @Success 200 {array} dto.ProfileResponse
// @Router /series/profiles [get]
func (h *SeriesHandler) GetProfiles(c echo.Context) error {
	return c.JSON(http.StatusOK, h.seriesService.Profiles(c.Request().Context()))
}

// GetDashboard godoc
// @Summary Get the dashboard snapshot
// @Description The featured symbol's series, regenerated on the configured schedule
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (h *SeriesHandler) GetDashboard(c echo.Context) error {
	resp, err := h.seriesService.Dashboard(c.Request().Context())
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to build dashboard snapshot", logger.ErrorField(err))
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
