package http

import (
	"net/http"

	"stock-predictor/internal/predictor/dto"
	"stock-predictor/internal/predictor/service"
	"stock-predictor/pkg/common"
	"stock-predictor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictionHandler handles HTTP requests for the prediction form.
type PredictionHandler struct {
	predictionService service.PredictionService
	logger            *logger.Logger
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictionService service.PredictionService, logger *logger.Logger) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService, logger: logger}
}

// RegisterRoutes registers the prediction routes to the Echo group.
func (h *PredictionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Submit)
	g.GET("/sessions/:id", h.GetSession)
	g.DELETE("/sessions/:id", h.ResetSession)
}

// Submit godoc
// @Summary Submit a prediction
// @Description Validate the form and fabricate a next-day prediction after the simulated latency
// @Tags predictions
// @Accept  json
// @Produce  json
// @Param   X-Session-ID  header  string  false  "Form session id"
// @Param   request  body    dto.PredictionRequest  true  "Prediction form"
// @Success 200 {object} dto.PredictionSessionResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.PredictionSessionResponse
// @Failure 504 {object} dto.PredictionSessionResponse
// @Router /predictions [post]
func (h *PredictionHandler) Submit(c echo.Context) error {
	var req dto.PredictionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	sessionID := c.Request().Header.Get(common.HeaderSessionID)
	if sessionID == "" {
		sessionID = req.SessionID
	}

	resp, err := h.predictionService.Submit(c.Request().Context(), sessionID, &req)
	if resp == nil {
		// the service layer already logs the error
		return writeError(c, err)
	}

	c.Response().Header().Set(common.HeaderSessionID, resp.SessionID)
	if err != nil {
		// failed submissions still carry their session
		status, _ := errorStatus(err)
		return c.JSON(status, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetSession godoc
// @Summary Get a prediction session
// @Description Get the lifecycle state and last result of a prediction form session
// @Tags predictions
// @Produce  json
// @Param   id  path    string  true  "Session ID"
// @Success 200 {object} dto.PredictionSessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /predictions/sessions/{id} [get]
func (h *PredictionHandler) GetSession(c echo.Context) error {
	resp, err := h.predictionService.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ResetSession godoc
// @Summary Reset a prediction session
// @Description Return the session to idle and drop any result, including one still in flight
// @Tags predictions
// @Produce  json
// @Param   id  path    string  true  "Session ID"
// @Success 200 {object} dto.PredictionSessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /predictions/sessions/{id} [delete]
func (h *PredictionHandler) ResetSession(c echo.Context) error {
	resp, err := h.predictionService.Reset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
