package solarterm

import (
	"fmt"
	"time"

	"github.com/phrazzld/sanmei-api/internal/domain"
)

// Validated span of the linear estimate.
const (
	MinYear = 1900
	MaxYear = 2099
)

// drift is the mean advance of a solar term per year, in days.
const drift = 0.242194

// monthConstants is the fractional entry day of each month's solar term in 1900.
var monthConstants = [12]float64{5.41, 3.82, 5.59, 4.90, 5.01, 5.12, 6.83, 7.20, 7.37, 8.35, 7.55, 7.43}

type monthKey struct {
	year  int
	month int
}

// Estimator approximates the day of the month on which each month's solar
// term (節入り) falls. It is immutable after construction and safe for
// concurrent use.
type Estimator struct {
	overrides map[monthKey]int
}

// NewEstimator returns an estimator using the embedded override table plus any
// extra overrides. Extra entries win over embedded ones for the same month.
func NewEstimator(extra ...Override) (*Estimator, error) {
	e := &Estimator{overrides: make(map[monthKey]int, len(defaultOverrides)+len(extra))}
	for _, o := range defaultOverrides {
		e.overrides[monthKey{o.Year, o.Month}] = o.Day
	}
	for _, o := range extra {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		e.overrides[monthKey{o.Year, o.Month}] = o.Day
	}
	return e, nil
}

// Default returns an estimator with only the embedded overrides.
func Default() *Estimator {
	return defaultEstimator
}

// Day returns the estimated solar-term entry day for the given month.
// Years outside [MinYear, MaxYear] fail with domain.ErrUnsupportedYearRange.
func (e *Estimator) Day(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month %d", domain.ErrInvalidDate, month)
	}
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%w: %d is outside %d-%d", domain.ErrUnsupportedYearRange, year, MinYear, MaxYear)
	}
	return e.estimate(year, month), nil
}

// Boundary returns the solar-term entry date of the given month.
func (e *Estimator) Boundary(year, month int) (time.Time, error) {
	day, err := e.Day(year, month)
	if err != nil {
		return time.Time{}, err
	}
	return date(year, month, day), nil
}

// PreviousBoundary returns the most recent solar-term entry date on or before
// t. NextBoundary returns the first one strictly after t. Both require t to lie
// in the validated span; the neighbouring month is extrapolated when it falls
// one month outside it (December 1899, January 2100).
func (e *Estimator) PreviousBoundary(t time.Time) (time.Time, error) {
	year, month := t.Year(), int(t.Month())
	b, err := e.Boundary(year, month)
	if err != nil {
		return time.Time{}, err
	}
	if t.Day() >= b.Day() {
		return b, nil
	}
	year, month = shiftMonth(year, month, -1)
	return date(year, month, e.estimate(year, month)), nil
}

// NextBoundary returns the first solar-term entry date strictly after t.
func (e *Estimator) NextBoundary(t time.Time) (time.Time, error) {
	year, month := t.Year(), int(t.Month())
	b, err := e.Boundary(year, month)
	if err != nil {
		return time.Time{}, err
	}
	if t.Day() < b.Day() {
		return b, nil
	}
	year, month = shiftMonth(year, month, 1)
	return date(year, month, e.estimate(year, month)), nil
}

// estimate applies the override table, then the linear formula
// trunc(C[month] + drift*y - trunc(y/4)) with y = year-1900.
func (e *Estimator) estimate(year, month int) int {
	if day, ok := e.overrides[monthKey{year, month}]; ok {
		return day
	}
	y := year - MinYear
	return int(monthConstants[month-1] + drift*float64(y) - float64(y/4))
}

func shiftMonth(year, month, delta int) (int, int) {
	m := month - 1 + delta
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	return year, m + 1
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
