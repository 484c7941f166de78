package dto

import "stock-predictor/pkg/validator"

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists the rejected fields of a request.
type ValidationErrorResponse struct {
	Error  string                 `json:"error"`
	Fields []validator.FieldError `json:"fields"`
}
