package fortune

import (
	"fmt"
	"time"

	"github.com/phrazzld/sanmei-api/internal/domain"
	"github.com/phrazzld/sanmei-api/internal/domain/chart"
	"github.com/phrazzld/sanmei-api/internal/domain/kanshi"
	"github.com/phrazzld/sanmei-api/internal/domain/solarterm"
)

// Direction is the way the decade cycle steps through the sexagenary cycle.
type Direction int

// Directions.
const (
	Forward  Direction = iota // 順行
	Backward                  // 逆行
)

func (d Direction) String() string {
	if d == Forward {
		return "順行"
	}
	return "逆行"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// sign is +1 going forward and -1 going backward.
func (d Direction) sign() int {
	if d == Forward {
		return 1
	}
	return -1
}

// DirectionOf returns Forward for a male born in a positive-stem year or a
// female born in a negative-stem year, and Backward otherwise.
func DirectionOf(yearStem kanshi.Stem, g domain.Gender) (Direction, error) {
	if !g.Valid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidGender, string(g))
	}
	positive := yearStem.Polarity() == kanshi.Positive
	if (g == domain.GenderMale) == positive {
		return Forward, nil
	}
	return Backward, nil
}

// RisingAge returns the age at which the first decade begins (立運).
//
// Going forward it counts the days from the birth date to the next solar-term
// boundary; going backward, the days since the most recent one. The count is
// divided by three, a remainder of two rounds up, and the result is at least 1.
func RisingAge(c *chart.Chart, dir Direction, est *solarterm.Estimator) (int, error) {
	if est == nil {
		est = solarterm.Default()
	}
	birth := time.Date(c.Birth.Year(), c.Birth.Month(), c.Birth.Day(), 0, 0, 0, 0, time.UTC)

	var days int
	switch dir {
	case Forward:
		next, err := est.NextBoundary(birth)
		if err != nil {
			return 0, fmt.Errorf("next boundary: %w", err)
		}
		days = daysBetween(birth, next)
	default:
		prev, err := est.PreviousBoundary(birth)
		if err != nil {
			return 0, fmt.Errorf("previous boundary: %w", err)
		}
		days = daysBetween(prev, birth)
	}

	return risingAgeFromDays(days), nil
}

func risingAgeFromDays(days int) int {
	age := days / 3
	if days%3 == 2 {
		age++
	}
	if age < 1 {
		age = 1
	}
	return age
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
