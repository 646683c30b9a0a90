package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlreadyParticipated = errors.New("you have already participated in this poll")
	ErrConsentRequired     = errors.New("consent is required to participate")
	ErrInternal            = errors.New("internal server error")
)

// ValidationError carries the list of missing or invalid fields so the
// handler can report them by name.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
