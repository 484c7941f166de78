package http

import (
	"time"

	"stock-predictor/pkg/common"
	"stock-predictor/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestLogger tags each request with an id and logs its outcome.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(common.HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(common.HeaderRequestID, id)
			c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), id)))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.InfoContext(c.Request().Context(), "HTTP request",
				logger.StringField("method", req.Method),
				logger.StringField("path", c.Path()),
				logger.IntField("status", c.Response().Status),
				logger.Field("latency", time.Since(start)))
			return nil
		}
	}
}
