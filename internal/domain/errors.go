// Package domain defines the core value types and errors shared by the engine.
package domain

import "errors"

// Common domain errors used across the engine. Callers wrap them with context
// and test for them with errors.Is.
var (
	// ErrInvalidDate is returned for impossible calendar dates (day 31 in a
	// 30-day month, Feb 29 in a non-leap year) and out-of-range clock values.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnsupportedYearRange is returned when a year falls outside the span
	// the solar-term estimator is validated for.
	ErrUnsupportedYearRange = errors.New("unsupported year range")

	// ErrInvalidCombination is returned when a stem and branch do not form one
	// of the 60 valid sexagenary pairs.
	ErrInvalidCombination = errors.New("invalid stem/branch combination")

	// ErrInvalidGender is returned when a gender value is not recognized.
	ErrInvalidGender = errors.New("invalid gender value")
)
