package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Gender selects the stepping direction of the decade cycle.
type Gender string

// Recognized gender values.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// genderAliases maps case-folded user input to a Gender.
var genderAliases = map[string]Gender{
	"m":      GenderMale,
	"male":   GenderMale,
	"f":      GenderFemale,
	"female": GenderFemale,
}

// ParseGender converts user input ("M", "f", "Male", ...) into a Gender.
// Anything else is rejected with ErrInvalidGender.
func ParseGender(s string) (Gender, error) {
	// A Caser is stateful, so each call gets its own.
	key := cases.Fold().String(strings.TrimSpace(s))
	g, ok := genderAliases[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
	return g, nil
}

// Valid reports whether g is one of the two recognized values.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// BirthInput is the tuple the engine consumes. Hour and Minute default to 0.
type BirthInput struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Day    int    `json:"day"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Gender Gender `json:"gender"`
}

// NewBirthInput builds and validates a BirthInput.
func NewBirthInput(year, month, day, hour, minute int, gender Gender) (*BirthInput, error) {
	in := &BirthInput{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Gender: gender,
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	return in, nil
}

// Validate checks the calendar date, the clock fields and the gender.
// It does not check the supported year range; that belongs to the solar-term
// estimator.
func (b BirthInput) Validate() error {
	if err := b.ValidateMoment(); err != nil {
		return err
	}
	if !b.Gender.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidGender, string(b.Gender))
	}
	return nil
}

// ValidateMoment checks the calendar date and the clock fields only.
func (b BirthInput) ValidateMoment() error {
	if err := ValidateDate(b.Year, b.Month, b.Day); err != nil {
		return err
	}
	if b.Hour < 0 || b.Hour > 23 || b.Minute < 0 || b.Minute > 59 {
		return fmt.Errorf("%w: time %02d:%02d", ErrInvalidDate, b.Hour, b.Minute)
	}
	return nil
}

// Moment returns the birth moment as a UTC time.
func (b BirthInput) Moment() time.Time {
	return time.Date(b.Year, time.Month(b.Month), b.Day, b.Hour, b.Minute, 0, 0, time.UTC)
}

// Key returns a stable string identifying the input, used for caching.
func (b BirthInput) Key() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d/%s", b.Year, b.Month, b.Day, b.Hour, b.Minute, b.Gender)
}

// ValidateDate rejects impossible calendar dates. time.Date normalizes
// overflowing fields, so a date is valid only if it survives the round trip.
func ValidateDate(year, month, day int) error {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return nil
}
