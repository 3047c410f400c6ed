package api

import (
	"errors"
	"fmt"

	"github.com/okarpov/taskdeck/internal/validation"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// FieldErrors carries the per-field messages of a 400 response so forms
// can place them next to the offending inputs.
type FieldErrors struct {
	Fields validation.Errors
}

func (e *FieldErrors) Error() string {
	return fmt.Sprintf("rejected: %d field error(s)", len(e.Fields))
}
