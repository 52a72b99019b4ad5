package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/sanmei-api/internal/batch"
	"github.com/phrazzld/sanmei-api/internal/domain"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case err == nil:
		return http.StatusInternalServerError

	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidGender),
		errors.Is(err, domain.ErrUnsupportedYearRange),
		errors.Is(err, domain.ErrInvalidCombination),
		errors.Is(err, batch.ErrEmptyBatch),
		errors.Is(err, batch.ErrTooManyItems),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)
	case errors.Is(err, domain.ErrInvalidDate):
		return "Invalid birth date or time"
	case errors.Is(err, domain.ErrInvalidGender):
		return "Invalid gender: use M or F"
	case errors.Is(err, domain.ErrUnsupportedYearRange):
		return "Birth year must be between 1900 and 2099"
	case errors.Is(err, batch.ErrEmptyBatch):
		return "Batch has no charts"
	case errors.Is(err, batch.ErrTooManyItems):
		return "Batch has too many charts"
	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"
	case errors.Is(err, context.Canceled):
		return "Request canceled"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message naming the first failing field.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	field := strings.ToLower(fe.Field())
	return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
