package rickmorty

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotFound marks a 404 from the API. It is never retried.
	ErrNotFound = errors.New("resource not found")

	// ErrMalformedResponse marks a body that does not match the expected shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrRetriesExhausted wraps the last cause once every attempt has failed.
	ErrRetriesExhausted = errors.New("retries exhausted")
)

// APIError describes a non-2xx response.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api %s returned status %d", e.Endpoint, e.StatusCode)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err came from a 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// errorMessage pulls the "error" field the API puts in failure bodies.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}
