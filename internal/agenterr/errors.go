package agenterr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ConfigurationError reports required environment variables that were not set.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Missing, ", "))
}

// UnsupportedIntentError is returned when a query resolves to an intent
// outside the supported vocabulary.
type UnsupportedIntentError struct {
	Label string
}

func (e *UnsupportedIntentError) Error() string {
	return fmt.Sprintf("unsupported intent: %q", e.Label)
}

// MissingEntityError names a required entity that was absent (or present but
// unresolvable) for the detected intent.
type MissingEntityError struct {
	Entity string
}

func (e *MissingEntityError) Error() string {
	return fmt.Sprintf("missing required entity: %q", e.Entity)
}

// ExternalServiceError wraps a failed call to a speech/NLU/LLM service.
// Callers surface a generic message and never retry.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s service call failed: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// DatabaseError wraps a failed SQL execution.
type DatabaseError struct {
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error: %v", e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// HTTPStatus maps each error kind to its distinct response status.
func HTTPStatus(err error) int {
	var (
		missing     *MissingEntityError
		unsupported *UnsupportedIntentError
		external    *ExternalServiceError
	)
	switch {
	case errors.As(err, &missing):
		return http.StatusBadRequest
	case errors.As(err, &unsupported):
		return http.StatusUnprocessableEntity
	case errors.As(err, &external):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the client-facing message for err. External service
// failures are reported generically; everything else is safe to echo.
func PublicMessage(err error) string {
	var external *ExternalServiceError
	if errors.As(err, &external) {
		return fmt.Sprintf("%s service is currently unavailable", external.Service)
	}
	return err.Error()
}
