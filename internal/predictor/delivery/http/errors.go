package http

import (
	"context"
	"errors"
	"net/http"

	"stock-predictor/internal/entity"
	"stock-predictor/internal/predictor/dto"
	"stock-predictor/internal/predictor/service"
	"stock-predictor/pkg/common"
	"stock-predictor/pkg/validator"

	"github.com/labstack/echo/v4"
)

// writeError maps service errors to status codes and error bodies.
func writeError(c echo.Context, err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Error: "Invalid request", Fields: verr.Fields})
	}
	status, message := errorStatus(err)
	return c.JSON(status, dto.ErrorResponse{Error: message})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrSessionNotFound):
		return http.StatusNotFound, "Prediction session not found"
	case errors.Is(err, service.ErrUnknownProfile):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, entity.ErrSubmissionInProgress):
		return http.StatusConflict, "A prediction is already in progress for this session"
	case errors.Is(err, entity.ErrStaleRequest):
		return http.StatusConflict, "The prediction was superseded"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, common.PredictionFailedMessage
	case errors.Is(err, entity.ErrPredictionFailed):
		return http.StatusBadGateway, common.PredictionFailedMessage
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
