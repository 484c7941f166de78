package entity

import (
	"fmt"
	"time"
)

type SessionStatus string

const (
	SessionIdle       SessionStatus = "idle"
	SessionSubmitting SessionStatus = "submitting"
	SessionSucceeded  SessionStatus = "succeeded"
	SessionFailed     SessionStatus = "failed"
)

// PredictionSession is the request lifecycle of one prediction form:
// idle -> submitting -> succeeded | failed -> idle.
type PredictionSession struct {
	ID        string
	Status    SessionStatus
	RequestID string
	Record    *PredictionRecord
	Error     string
	UpdatedAt time.Time
}

func NewPredictionSession(id string, now time.Time) *PredictionSession {
	return &PredictionSession{ID: id, Status: SessionIdle, UpdatedAt: now}
}

// Begin moves the session into submitting for requestID. A finished session
// returns to idle first; a session already submitting is rejected.
func (s *PredictionSession) Begin(requestID string, now time.Time) error {
	if s.Status == SessionSubmitting {
		return fmt.Errorf("%w (request %s)", ErrSubmissionInProgress, s.RequestID)
	}
	s.Reset(now)
	s.Status = SessionSubmitting
	s.RequestID = requestID
	return nil
}

// Complete records the result of requestID. Results of any other request are rejected.
func (s *PredictionSession) Complete(requestID string, record *PredictionRecord, now time.Time) error {
	if err := s.owns(requestID); err != nil {
		return err
	}
	s.Status = SessionSucceeded
	s.Record = record
	s.Error = ""
	s.UpdatedAt = now
	return nil
}

// Fail records the failure of requestID. Failures of any other request are rejected.
func (s *PredictionSession) Fail(requestID string, cause error, now time.Time) error {
	if err := s.owns(requestID); err != nil {
		return err
	}
	s.Status = SessionFailed
	s.Record = nil
	s.Error = cause.Error()
	s.UpdatedAt = now
	return nil
}

// Reset clears the session back to idle from any state.
func (s *PredictionSession) Reset(now time.Time) {
	s.Status = SessionIdle
	s.RequestID = ""
	s.Record = nil
	s.Error = ""
	s.UpdatedAt = now
}

func (s *PredictionSession) owns(requestID string) error {
	if s.Status != SessionSubmitting || s.RequestID != requestID {
		return fmt.Errorf("%w: %s", ErrStaleRequest, requestID)
	}
	return nil
}
