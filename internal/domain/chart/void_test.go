package chart

import (
	"testing"

	"github.com/phrazzld/sanmei-api/internal/domain/kanshi"
	"github.com/stretchr/testify/assert"
)

func TestVoidGroupOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, VoidDogPig, VoidGroupOf(1))
	assert.Equal(t, VoidDogPig, VoidGroupOf(10))
	assert.Equal(t, VoidMonkeyRooster, VoidGroupOf(11))
	assert.Equal(t, VoidHorseGoat, VoidGroupOf(21))
	assert.Equal(t, VoidDragonSnake, VoidGroupOf(40))
	assert.Equal(t, VoidTigerRabbit, VoidGroupOf(41))
	assert.Equal(t, VoidRatOx, VoidGroupOf(60))
	assert.Equal(t, "申酉", VoidGroupOf(11).String())
}

func TestVoidGroupDependsOnlyOnBlock(t *testing.T) {
	t.Parallel()

	for id := kanshi.ID(1); id <= kanshi.CycleLength; id++ {
		start := kanshi.ID((int(id)-1)/10*10 + 1)
		assert.Equal(t, VoidGroupOf(start), VoidGroupOf(id), "id %d", id)

		// The group is exactly the two branches missing from the block.
		g := VoidGroupOf(id)
		for k := 0; k < 10; k++ {
			assert.False(t, g.Contains(start.Add(k).Branch()), "id %d", id)
		}
	}
}

func TestEpochVoidGroup(t *testing.T) {
	t.Parallel()

	c := mustChart(t, 1900, 1, 1)
	assert.Equal(t, kanshi.ID(11), c.Day.ID())
	assert.Equal(t, VoidMonkeyRooster, c.VoidGroup())
}

func TestNatalVoids(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		date  [3]int
		group VoidGroup
		want  []NatalVoid
	}{
		{[3]int{1900, 1, 1}, VoidMonkeyRooster, []NatalVoid{SeatedVoid}},
		{[3]int{1988, 3, 21}, VoidMonkeyRooster, []NatalVoid{DayVoid, SeatedVoid}},
		{[3]int{2024, 4, 11}, VoidTigerRabbit, []NatalVoid{ResidentVoid}},
		{[3]int{2001, 5, 20}, VoidMonkeyRooster, []NatalVoid{}},
		{[3]int{2024, 6, 22}, VoidRatOx, []NatalVoid{}},
		{[3]int{1999, 11, 8}, VoidDogPig, []NatalVoid{MonthVoid}},
		{[3]int{2024, 2, 4}, VoidDragonSnake, []NatalVoid{YearVoid}},
		{[3]int{2000, 1, 1}, VoidRatOx, []NatalVoid{MonthVoid}},
		{[3]int{1981, 4, 27}, VoidMonkeyRooster, []NatalVoid{YearVoid, SeatedVoid}},
		{[3]int{1966, 8, 2}, VoidHorseGoat, []NatalVoid{YearVoid, MonthVoid, DoubleNatalVoid}},
		{[3]int{1973, 1, 25}, VoidRatOx, []NatalVoid{YearVoid, MonthVoid, DoubleNatalVoid}},
		{[3]int{1960, 5, 28}, VoidRatOx, []NatalVoid{YearVoid, DayVoid, ReciprocalVoid}},
		{[3]int{1962, 11, 2}, VoidTigerRabbit, []NatalVoid{YearVoid, DayVoid, ReciprocalVoid, ResidentVoid}},
	}

	for _, tc := range testCases {
		c := mustChart(t, tc.date[0], tc.date[1], tc.date[2])
		assert.Equal(t, tc.group, c.VoidGroup(), "%v", tc.date)
		assert.Equal(t, tc.want, NatalVoids(c), "%v", tc.date)
	}
}

func TestVoidTimingOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		group     VoidGroup
		reference int
		hours     string
		years     [3]YearSpan
	}{
		{
			name:      "next span ahead",
			group:     VoidMonkeyRooster,
			reference: 2026,
			hours:     "16:00〜20:00",
			years:     [3]YearSpan{{2016, 2017}, {2028, 2029}, {2040, 2041}},
		},
		{
			name:      "first year of a span",
			group:     VoidHorseGoat,
			reference: 2026,
			hours:     "12:00〜16:00",
			years:     [3]YearSpan{{2014, 2015}, {2026, 2027}, {2038, 2039}},
		},
		{
			name:      "second year of a span",
			group:     VoidDragonSnake,
			reference: 2025,
			hours:     "08:00〜12:00",
			years:     [3]YearSpan{{2012, 2013}, {2024, 2025}, {2036, 2037}},
		},
		{
			name:      "span just finished",
			group:     VoidDragonSnake,
			reference: 2026,
			hours:     "08:00〜12:00",
			years:     [3]YearSpan{{2024, 2025}, {2036, 2037}, {2048, 2049}},
		},
		{
			name:      "reference before 1900",
			group:     VoidRatOx,
			reference: 1898,
			hours:     "00:00〜04:00",
			years:     [3]YearSpan{{1888, 1889}, {1900, 1901}, {1912, 1913}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := VoidTimingOf(tc.group, tc.reference)
			assert.Equal(t, tc.hours, got.Hours)
			assert.Equal(t, tc.years, got.Years)
		})
	}

	assert.Equal(t, "2月〜3月", VoidTimingOf(VoidTigerRabbit, 2026).Months)
	assert.Equal(t, "2024年〜2025年", YearSpan{2024, 2025}.String())
}
