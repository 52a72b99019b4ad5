package chart

import (
	"fmt"
	"time"

	"github.com/phrazzld/sanmei-api/internal/domain"
	"github.com/phrazzld/sanmei-api/internal/domain/kanshi"
	"github.com/phrazzld/sanmei-api/internal/domain/solarterm"
)

// Epoch anchors the day pillar: 1900-01-01 is 甲戌.
var (
	dayEpoch   = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	dayEpochID = kanshi.ID(11)
)

// yearEpochOffset maps a sexagenary year to its id: 1900 is 庚子 (37).
const yearEpochOffset = 37

// newYearMonth is the month whose solar term starts the sexagenary year.
const newYearMonth = 2

// monthStemStart gives the stem of the tiger month (寅) for each year stem
// ("year governs month"): 甲己→丙, 乙庚→戊, 丙辛→庚, 丁壬→壬, 戊癸→甲.
var monthStemStart = [5]kanshi.Stem{kanshi.Hinoe, kanshi.Tsuchinoe, kanshi.Kanoe, kanshi.Mizunoe, kanshi.Kinoe}

// Chart is an immutable natal chart.
type Chart struct {
	// Birth is the birth moment in UTC. Only the date affects the pillars.
	Birth time.Time

	Year  kanshi.Pillar
	Month kanshi.Pillar
	Day   kanshi.Pillar

	// DaysIntoMonth counts days since the month's solar term, 1..30.
	DaysIntoMonth int
}

// New derives the natal chart for in. Gender is not consulted. A nil
// estimator uses solarterm.Default().
//
// Impossible dates and clock values fail with domain.ErrInvalidDate before any
// pillar arithmetic; years outside the estimator's span then fail with
// domain.ErrUnsupportedYearRange.
func New(in domain.BirthInput, est *solarterm.Estimator) (*Chart, error) {
	if err := in.ValidateMoment(); err != nil {
		return nil, err
	}
	if est == nil {
		est = solarterm.Default()
	}

	boundary, err := est.Day(in.Year, in.Month)
	if err != nil {
		return nil, fmt.Errorf("month boundary: %w", err)
	}
	newYear, err := est.Day(in.Year, newYearMonth)
	if err != nil {
		return nil, fmt.Errorf("year boundary: %w", err)
	}

	birthDate := time.Date(in.Year, time.Month(in.Month), in.Day, 0, 0, 0, 0, time.UTC)

	yearID := yearPillarID(in.Year, in.Month, in.Day, newYear)
	year := yearID.Pillar()

	return &Chart{
		Birth:         in.Moment(),
		Year:          year,
		Month:         monthPillar(year.Stem, in.Month, in.Day, boundary),
		Day:           dayPillarID(birthDate).Pillar(),
		DaysIntoMonth: daysIntoMonth(in.Day, boundary),
	}, nil
}

// IDs returns the year, month and day ids in that order.
func (c *Chart) IDs() [3]kanshi.ID {
	return [3]kanshi.ID{c.Year.ID(), c.Month.ID(), c.Day.ID()}
}

// Pillars returns the year, month and day pillars in that order.
func (c *Chart) Pillars() [3]kanshi.Pillar {
	return [3]kanshi.Pillar{c.Year, c.Month, c.Day}
}

// ActiveHiddenStem returns the hidden stem of b active at the birth offset.
func (c *Chart) ActiveHiddenStem(b kanshi.Branch) kanshi.Stem {
	return kanshi.ActiveHiddenStem(b, c.DaysIntoMonth)
}

func dayPillarID(date time.Time) kanshi.ID {
	days := int(date.Sub(dayEpoch).Hours() / 24)
	return dayEpochID.Add(days)
}

// yearPillarID treats dates before the February solar term as belonging to
// the previous year.
func yearPillarID(year, month, day, newYearDay int) kanshi.ID {
	sexYear := year
	if month < newYearMonth || (month == newYearMonth && day < newYearDay) {
		sexYear--
	}
	return kanshi.Normalize(sexYear - 1900 + yearEpochOffset)
}

// monthPillar numbers months so that index 2 is the tiger month; dates before
// this month's solar term still belong to the previous month.
func monthPillar(yearStem kanshi.Stem, month, day, boundary int) kanshi.Pillar {
	index := month
	if day < boundary {
		index--
	}
	fromTiger := ((index-2)%12 + 12) % 12
	start := monthStemStart[int(yearStem)%5]
	return kanshi.Pillar{
		Stem:   kanshi.Stem((int(start) + fromTiger) % kanshi.StemCount),
		Branch: kanshi.Branch(index % kanshi.BranchCount),
	}
}

func daysIntoMonth(day, boundary int) int {
	return ((day-boundary)%kanshi.MonthCycleDays+kanshi.MonthCycleDays)%kanshi.MonthCycleDays + 1
}
