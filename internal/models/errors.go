package models

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrBusy is returned while a unit toggle is still fanning out.
	ErrBusy            = errors.New("a unit change is already in progress")
	ErrSessionNotFound = errors.New("session not found")
)

// ValidationError reports bad user input. No network call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NotFoundError is returned when the service cannot resolve the location.
type NotFoundError struct {
	Query   string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ServiceError carries a structured error reported by the service,
// including ones delivered with HTTP 200.
type ServiceError struct {
	Code    int
	Type    string
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// TransportError covers network failures, non-2xx statuses and malformed
// payloads.
type TransportError struct {
	Op      string
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// PartialUpdateError is returned when at least one city failed to refresh
// during a unit change. Nothing was applied.
type PartialUpdateError struct {
	Unit   Unit
	Failed map[string]error
}

func (e *PartialUpdateError) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	return fmt.Sprintf("failed to switch to %s units for %d of the cities: %s",
		e.Unit, len(e.Failed), strings.Join(ids, ", "))
}

// UserMessage returns the text to show the user for err.
func UserMessage(err error, fallback string) string {
	var (
		validation *ValidationError
		notFound   *NotFoundError
		service    *ServiceError
	)
	switch {
	case errors.As(err, &validation):
		return validation.Message
	case errors.As(err, &notFound):
		return notFound.Message
	case errors.As(err, &service):
		return service.Message
	}
	return fallback
}
