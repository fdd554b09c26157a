package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrConflict      = errors.New("resource conflict")
	ErrInternalError = errors.New("internal server error")
)

// Meeting errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
)

// Participant errors
var (
	ErrParticipantNotFound = errors.New("participant not found")
)

// Analytics errors
var (
	ErrAnalyticsNotFound = errors.New("analytics not found for this meeting")
	ErrAnalyticsExists   = errors.New("analytics already exist for this meeting")
)

// Connector errors
var (
	ErrConnectorNotFound = errors.New("connector not found")
)
