package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alwitt/larder/query"
	"gorm.io/gorm"
)

// APIError represents a structured error response to be sent to the client.
// It implements the standard `error` interface.
type APIError struct {
	// Status is the HTTP status code that corresponds to this error
	Status int `json:"status"`
	// Message is the user-friendly error message
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewBadRequestError creates an error representing a 400 Bad Request
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewNotFoundError creates an error representing a 404 Not Found
func NewNotFoundError(message string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: message,
	}
}

// NewConflictError creates an error representing a 409 Conflict
func NewConflictError(message string) *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Message: message,
	}
}

// NewInternalServerError creates an error representing a 500 Internal Server Error
func NewInternalServerError() *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occurred. Please try again later.",
	}
}

// FromStoreError translates errors from the store layer into specific APIError
// types, decoupling the HTTP handlers from the persistence implementation.
func FromStoreError(err error) *APIError {
	var rangeErr query.InvalidRangeError
	if errors.As(err, &rangeErr) {
		return NewBadRequestError(rangeErr.Error())
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("The requested document could not be found")
	}

	// Any untranslatable error becomes a generic internal server error to avoid
	// leaking implementation details to the client
	return NewInternalServerError()
}

// writeJSON marshal the payload to the response with a status code
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeAPIError send a structured error response
func writeAPIError(w http.ResponseWriter, apiErr *APIError) {
	writeJSON(w, apiErr.Status, apiErr)
}
