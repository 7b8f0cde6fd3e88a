package models

import "errors"

var (
	ErrTimeout              = errors.New("fraud check timed out")
	ErrCircuitOpen          = errors.New("circuit breaker is open")
	ErrFraudUnavailable     = errors.New("no fraud responders available")
	ErrMismatchedReply      = errors.New("fraud reply does not match request")
	ErrDuplicateTransaction = errors.New("transaction already staged")
	ErrPersistenceConflict  = errors.New("staged record was modified concurrently")
	ErrInvalidTransition    = errors.New("invalid processing status transition")
)
