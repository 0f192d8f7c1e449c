// internal/errors/errors.go
package appErrors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// ErrIncompleteAsset is returned when a scan is requested for an asset whose
// vendor, product or version is missing.
var ErrIncompleteAsset = errors.New("asset must have vendor, product, and version for CVE scanning")

// APIError is a non-2xx answer from the platform backend.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s %s: backend returned %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: backend returned %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
}

// Helper constructor
func NewAPIError(method, path string, status int, detail string) error {
	return &APIError{Method: method, Path: path, StatusCode: status, Detail: detail}
}

// IsNotFound reports whether err is, or wraps, a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// ValidationError lists the form fields that failed validation, by their
// JSON names.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on fields: %s", strings.Join(e.Fields, ", "))
}

func NewValidationError(fields ...string) error {
	return &ValidationError{Fields: fields}
}

// AsValidation unwraps a *ValidationError from err.
func AsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
