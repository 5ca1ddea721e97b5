// Package errors provides standardized error handling for the estatehub core.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeStorageDecodeFailed ErrorCode = "STORAGE_DECODE_FAILED"
	ErrCodeStorageWriteFailed  ErrorCode = "STORAGE_WRITE_FAILED"

	ErrCodeCatalogQueryFailed ErrorCode = "CATALOG_QUERY_FAILED"
	ErrCodeCatalogScanFailed  ErrorCode = "CATALOG_SCAN_FAILED"

	ErrCodeListingValidationFailed ErrorCode = "LISTING_VALIDATION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageDecodeError marks a persisted payload that failed to parse.
// Recovery is local (start from the empty value), so it is never retryable.
func NewStorageDecodeError(key string, details string) *StandardError {
	e := newError(ErrCodeStorageDecodeFailed, "persisted payload could not be decoded", details, false)
	e.Metadata = map[string]interface{}{"key": key}
	return e
}

// NewStorageWriteError marks a failed persistence write. The in-memory state
// is already mutated when this is raised.
func NewStorageWriteError(key string, details string) *StandardError {
	e := newError(ErrCodeStorageWriteFailed, "persistence write failed", details, true)
	e.Metadata = map[string]interface{}{"key": key}
	return e
}

// NewCatalogQueryError marks a failed property catalog read.
func NewCatalogQueryError(details string) *StandardError {
	return newError(ErrCodeCatalogQueryFailed, "catalog query failed", details, true)
}

// NewCatalogScanError marks a catalog row that could not be decoded into a
// Property. Not retryable: the row itself is bad.
func NewCatalogScanError(details string) *StandardError {
	return newError(ErrCodeCatalogScanFailed, "catalog row scan failed", details, false)
}

// NewListingValidationError marks a listing draft that failed schema validation.
func NewListingValidationError(details string) *StandardError {
	return newError(ErrCodeListingValidationFailed, "listing failed validation", details, false)
}
