// Package errs defines the error kinds shared by the domain and use case
// layers. Concrete errors wrap one of these with %w so callers classify
// them with errors.Is.
package errs

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrStateConflict   = errors.New("state conflict")
	ErrExternalService = errors.New("external service failure")
)
