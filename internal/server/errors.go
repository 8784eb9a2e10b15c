package server

import (
	"fmt"
	"net/http"
)

// ErrStoreUnavailable indicates the mention store is not configured
type ErrStoreUnavailable struct{}

func (e *ErrStoreUnavailable) Error() string {
	return "mention store is not configured; set DATABASE_URL"
}

// ErrAnalysisUnavailable indicates no summarization backend is configured
type ErrAnalysisUnavailable struct{}

func (e *ErrAnalysisUnavailable) Error() string {
	return "summarization is not configured; set GEMINI_API_KEY"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrStoreUnavailable, *ErrAnalysisUnavailable:
		return http.StatusServiceUnavailable
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
