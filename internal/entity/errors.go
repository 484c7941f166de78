package entity

import "errors"

var (
	ErrPredictionFailed     = errors.New("prediction failed")
	ErrInvalidRecord        = errors.New("invalid prediction record")
	ErrSubmissionInProgress = errors.New("a prediction is already being submitted")
	ErrStaleRequest         = errors.New("prediction result belongs to a superseded request")
	ErrSessionNotFound      = errors.New("prediction session not found")
)
