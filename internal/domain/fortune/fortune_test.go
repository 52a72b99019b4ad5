package fortune

import (
	"testing"

	"github.com/phrazzld/sanmei-api/internal/domain"
	"github.com/phrazzld/sanmei-api/internal/domain/chart"
	"github.com/phrazzld/sanmei-api/internal/domain/kanshi"
	"github.com/phrazzld/sanmei-api/internal/domain/stars"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustChart(t *testing.T, year, month, day int) *chart.Chart {
	t.Helper()
	c, err := chart.New(domain.BirthInput{Year: year, Month: month, Day: day}, nil)
	require.NoError(t, err)
	return c
}

func TestDirectionOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		stem   kanshi.Stem
		gender domain.Gender
		want   Direction
	}{
		{"male, positive year", kanshi.Tsuchinoe, domain.GenderMale, Forward},
		{"female, positive year", kanshi.Tsuchinoe, domain.GenderFemale, Backward},
		{"male, negative year", kanshi.Tsuchinoto, domain.GenderMale, Backward},
		{"female, negative year", kanshi.Tsuchinoto, domain.GenderFemale, Forward},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := DirectionOf(tc.stem, tc.gender)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := DirectionOf(kanshi.Kinoe, domain.Gender("other"))
	assert.ErrorIs(t, err, domain.ErrInvalidGender)
}

func TestRisingAgeFromDays(t *testing.T) {
	t.Parallel()

	for days, want := range map[int]int{0: 1, 1: 1, 2: 1, 3: 1, 4: 1, 5: 2, 6: 2, 14: 5, 15: 5, 25: 8, 29: 10, 30: 10} {
		assert.Equal(t, want, risingAgeFromDays(days), "days %d", days)
	}
}

func TestNewDaiun(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		date   [3]int
		gender domain.Gender
		dir    Direction
		rising int
		first3 [3]kanshi.ID
	}{
		{"forward after boundary", [3]int{1988, 3, 21}, domain.GenderMale, Forward, 5, [3]kanshi.ID{53, 54, 55}},
		{"backward after boundary", [3]int{1988, 3, 21}, domain.GenderFemale, Backward, 5, [3]kanshi.ID{51, 50, 49}},
		{"backward into december 1899", [3]int{1900, 1, 1}, domain.GenderMale, Backward, 8, [3]kanshi.ID{12, 11, 10}},
		{"backward late april", [3]int{1981, 4, 27}, domain.GenderMale, Backward, 8, [3]kanshi.ID{28, 27, 26}},
		{"forward across new year", [3]int{1999, 12, 31}, domain.GenderFemale, Forward, 1, [3]kanshi.ID{14, 15, 16}},
		{"backward june", [3]int{2005, 6, 15}, domain.GenderMale, Backward, 4, [3]kanshi.ID{18, 17, 16}},
		{"backward august", [3]int{1958, 8, 25}, domain.GenderFemale, Backward, 6, [3]kanshi.ID{56, 55, 54}},
		{"backward march", [3]int{2011, 3, 11}, domain.GenderMale, Backward, 2, [3]kanshi.ID{27, 26, 25}},
		{"wraps below id 1", [3]int{2024, 2, 4}, domain.GenderFemale, Backward, 1, [3]kanshi.ID{2, 1, 60}},
		{"overridden boundary", [3]int{1990, 8, 22}, domain.GenderFemale, Backward, 5, [3]kanshi.ID{20, 19, 18}},
		{"before this month's boundary", [3]int{2000, 1, 1}, domain.GenderMale, Backward, 8, [3]kanshi.ID{12, 11, 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := mustChart(t, tc.date[0], tc.date[1], tc.date[2])

			d, err := NewDaiun(c, tc.gender, nil, DefaultDaiunSteps)
			require.NoError(t, err)
			require.Len(t, d.Steps, DefaultDaiunSteps)

			assert.Equal(t, tc.dir, d.Direction)
			assert.Equal(t, tc.rising, d.RisingAge)
			for i, want := range tc.first3 {
				assert.Equal(t, want, d.Steps[i].ID, "step %d", i+1)
			}
			for i, s := range d.Steps {
				assert.Equal(t, tc.rising+i*10, s.Age)
				assert.Equal(t, tc.date[0]+s.Age, s.Year)
			}
		})
	}
}

func TestDaiunStepAnnotations(t *testing.T) {
	t.Parallel()

	c := mustChart(t, 1988, 3, 21)
	d, err := NewDaiun(c, domain.GenderMale, nil, 3)
	require.NoError(t, err)

	first := d.Steps[0]
	assert.Equal(t, "丙辰", first.Pillar.String())
	assert.Equal(t, 5, first.Age)
	assert.Equal(t, 1993, first.Year)
	assert.Equal(t, stars.Chojo, first.TenGod)
	assert.Equal(t, stars.Tennan, first.TwelveStage)
	assert.False(t, first.Void)
	assert.Equal(t, []chart.Finding{
		{Position: chart.East, Aspects: []chart.Aspect{chart.SelfPunishment, chart.SameElement}},
		{Position: chart.Center, Aspects: []chart.Aspect{chart.Harm}},
	}, first.Aspects)

	// Steps are independent of each other.
	for i, s := range d.Steps {
		assert.Equal(t, s, DaiunStep(c, d.Direction, d.RisingAge, i+1))
	}
}

func TestNewDaiunRejectsUnknownGender(t *testing.T) {
	t.Parallel()

	c := mustChart(t, 1988, 3, 21)
	_, err := NewDaiun(c, domain.Gender(""), nil, DefaultDaiunSteps)
	assert.ErrorIs(t, err, domain.ErrInvalidGender)
}

func TestYearID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, kanshi.ID(1), YearID(1984))
	assert.Equal(t, kanshi.ID(41), YearID(2024))
	assert.Equal(t, kanshi.ID(37), YearID(1900))
	assert.Equal(t, kanshi.ID(60), YearID(1983))
}

func TestNenun(t *testing.T) {
	t.Parallel()

	c := mustChart(t, 1988, 3, 21)
	steps := Nenun(c, 1988, DefaultNenunYears)
	require.Len(t, steps, DefaultNenunYears)

	assert.Equal(t, 1988, steps[0].Year)
	assert.Equal(t, 0, steps[0].Age)
	assert.Equal(t, kanshi.ID(5), steps[0].ID)
	assert.Equal(t, c.Year.ID(), steps[0].ID)

	for i, s := range steps {
		assert.Equal(t, 1988+i, s.Year)
		assert.Equal(t, i, s.Age)
		assert.Equal(t, YearID(s.Year), s.ID)
		assert.Equal(t, c.VoidGroup().Contains(s.Pillar.Branch), s.Void)
		assert.Equal(t, s, NenunStep(c, s.Year))
	}

	// 2028 and 2029 are 申 and 酉 years, the chart's void group.
	assert.True(t, steps[2028-1988].Void)
	assert.True(t, steps[2029-1988].Void)
	assert.False(t, steps[2030-1988].Void)

	assert.Empty(t, Nenun(c, 2000, 0))
	assert.Empty(t, Nenun(c, 2000, -3))
}
