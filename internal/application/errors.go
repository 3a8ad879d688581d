package application

import (
	"errors"
	"strings"

	"github.com/oksasatya/wil-portal/internal/domain/repository"
	"github.com/oksasatya/wil-portal/pkg/validation"
)

var (
	// ErrInvalidCredentials covers both unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned for missing, invalid, expired or revoked tokens.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is the repository sentinel, re-exported for handlers.
	ErrNotFound = repository.ErrNotFound
)

// ValidationError is a user-correctable input problem. Fields names every
// offending field, not just the first.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string { return e.Message }

// missingFieldsError converts a validator error into a ValidationError whose
// message is produced by format from the missing field names.
func missingFieldsError(err error, format func(fields []string) string) error {
	fields := validation.MissingFields(err)
	if len(fields) == 0 {
		return &ValidationError{Message: "invalid payload"}
	}
	return &ValidationError{Message: format(fields), Fields: fields}
}

func listMissing(fields []string) string {
	return "Missing required fields: " + strings.Join(fields, ", ")
}
