package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phrazzld/sanmei-api/internal/domain"
	"github.com/phrazzld/sanmei-api/internal/service"
)

// ChartRequest defines the payload for the chart endpoint. Birthday is
// "YYYY-MM-DD" or "YYYY/MM/DD"; Time is an optional "HH:MM".
type ChartRequest struct {
	Birthday string `json:"birthday"       validate:"required"`
	Time     string `json:"time,omitempty"`
	Gender   string `json:"gender"         validate:"required"`
}

// BatchRequest defines the payload for the batch endpoint.
type BatchRequest struct {
	Charts []ChartRequest `json:"charts" validate:"required,min=1,dive"`
}

// BatchItem is one entry of a BatchResponse. Exactly one of Report and
// Error is set.
type BatchItem struct {
	ID     string          `json:"id"`
	Index  int             `json:"index"`
	Report *service.Report `json:"report,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// BatchResponse defines the response of the batch endpoint.
type BatchResponse struct {
	Items  []BatchItem `json:"items"`
	Failed int         `json:"failed"`
}

// ToBirthInput parses the request into a validated birth input.
func (r ChartRequest) ToBirthInput() (domain.BirthInput, error) {
	var in domain.BirthInput

	year, month, day, err := parseBirthday(r.Birthday)
	if err != nil {
		return in, err
	}
	hour, minute, err := parseClock(r.Time)
	if err != nil {
		return in, err
	}
	gender, err := domain.ParseGender(r.Gender)
	if err != nil {
		return in, err
	}

	p, err := domain.NewBirthInput(year, month, day, hour, minute, gender)
	if err != nil {
		return in, err
	}
	return *p, nil
}

// parseBirthday accepts "YYYY-MM-DD" or "YYYY/MM/DD" with a single kind of
// separator.
func parseBirthday(s string) (year, month, day int, err error) {
	s = strings.TrimSpace(s)
	sep := "-"
	if strings.Contains(s, "/") {
		sep = "/"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 || len(parts[0]) != 4 {
		return 0, 0, 0, fmt.Errorf("%w: birthday %q is not YYYY-MM-DD", domain.ErrInvalidDate, s)
	}

	var fields [3]int
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || len(p) > 4 {
			return 0, 0, 0, fmt.Errorf("%w: birthday %q is not YYYY-MM-DD", domain.ErrInvalidDate, s)
		}
		fields[i] = n
	}
	return fields[0], fields[1], fields[2], nil
}

// parseClock accepts an empty string (midnight) or "HH:MM".
func parseClock(s string) (hour, minute int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil
	}
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: time %q is not HH:MM", domain.ErrInvalidDate, s)
	}
	hour, hErr := strconv.Atoi(h)
	minute, mErr := strconv.Atoi(m)
	if hErr != nil || mErr != nil {
		return 0, 0, fmt.Errorf("%w: time %q is not HH:MM", domain.ErrInvalidDate, s)
	}
	return hour, minute, nil
}
