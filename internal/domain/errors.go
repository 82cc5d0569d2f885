package domain

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrOrderNotFound    = errors.New("order not found")
)

var (
	ErrNoBookingFlow = errors.New("no active booking flow")
	ErrFlowConflict  = errors.New("booking flow is not in the required state")
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

var (
	ErrValidation = errors.New("validation error")
)
