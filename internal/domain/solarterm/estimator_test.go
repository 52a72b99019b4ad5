package solarterm

import (
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/sanmei-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay(t *testing.T) {
	t.Parallel()
	est := Default()

	testCases := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{name: "first validated month", year: 1900, month: 1, want: 5},
		{name: "spring boundary 1900", year: 1900, month: 2, want: 3},
		{name: "spring boundary 2024", year: 2024, month: 2, want: 2},
		{name: "january 2000", year: 2000, month: 1, want: 4},
		{name: "december 1999", year: 1999, month: 12, want: 7},
		{name: "last validated month", year: 2099, month: 12, want: 6},
		{name: "override 1970-01", year: 1970, month: 1, want: 6},
		{name: "override 1988-03", year: 1988, month: 3, want: 6},
		{name: "override 1990-08", year: 1990, month: 8, want: 8},
		{name: "no override 1988-04", year: 1988, month: 4, want: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := est.Day(tc.year, tc.month)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDayRejectsUnsupportedYears(t *testing.T) {
	t.Parallel()
	est := Default()

	_, err := est.Day(1899, 12)
	assert.ErrorIs(t, err, domain.ErrUnsupportedYearRange)

	_, err = est.Day(2100, 1)
	assert.ErrorIs(t, err, domain.ErrUnsupportedYearRange)

	_, err = est.Day(2000, 13)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestBoundary(t *testing.T) {
	t.Parallel()
	est := Default()

	got, err := est.Boundary(1988, 3)
	require.NoError(t, err)
	assert.Equal(t, date(1988, 3, 6), got)

	got, err = est.Boundary(2024, 2)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 2), got)

	_, err = est.Boundary(2100, 1)
	assert.ErrorIs(t, err, domain.ErrUnsupportedYearRange)
}

func TestNeighbourBoundaries(t *testing.T) {
	t.Parallel()
	est := Default()

	testCases := []struct {
		name     string
		at       time.Time
		previous time.Time
		next     time.Time
	}{
		{
			name:     "after this month's boundary",
			at:       date(1988, 3, 21),
			previous: date(1988, 3, 6),
			next:     date(1988, 4, 4),
		},
		{
			name:     "on the boundary day",
			at:       date(1988, 3, 6),
			previous: date(1988, 3, 6),
			next:     date(1988, 4, 4),
		},
		{
			name:     "before this month's boundary",
			at:       date(2000, 1, 1),
			previous: date(1999, 12, 7),
			next:     date(2000, 1, 4),
		},
		{
			name:     "extrapolates below the validated span",
			at:       date(1900, 1, 1),
			previous: date(1899, 12, 7),
			next:     date(1900, 1, 5),
		},
		{
			name:     "extrapolates above the validated span",
			at:       date(2099, 12, 20),
			previous: date(2099, 12, 6),
			next:     date(2100, 1, 3),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			prev, err := est.PreviousBoundary(tc.at)
			require.NoError(t, err)
			assert.Equal(t, tc.previous, prev)

			next, err := est.NextBoundary(tc.at)
			require.NoError(t, err)
			assert.Equal(t, tc.next, next)
		})
	}
}

func TestExtraOverrides(t *testing.T) {
	t.Parallel()

	est, err := NewEstimator(Override{Year: 1988, Month: 4, Day: 5})
	require.NoError(t, err)

	got, err := est.Day(1988, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	// The shared default is untouched.
	got, err = Default().Day(1988, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = NewEstimator(Override{Year: 1988, Month: 0, Day: 5})
	assert.ErrorIs(t, err, ErrInvalidOverride)
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	doc := `
overrides:
  - {year: 2001, month: 2, day: 4}
  - year: 2002
    month: 3
    day: 6
`
	got, err := LoadOverrides(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []Override{{2001, 2, 4}, {2002, 3, 6}}, got)

	_, err = LoadOverrides(strings.NewReader("overrides:\n  - {year: 2001, month: 2, day: 40}\n"))
	assert.ErrorIs(t, err, ErrInvalidOverride)

	_, err = LoadOverrides(strings.NewReader("overrides:\n  - {year: 2001, month: 2, dya: 4}\n"))
	assert.Error(t, err, "unknown fields are rejected")

	got, err = LoadOverrides(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
