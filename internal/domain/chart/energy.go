package chart

import (
	"github.com/phrazzld/sanmei-api/internal/domain/kanshi"
	"github.com/phrazzld/sanmei-api/internal/domain/stars"
)

// Energy is the chart's twelve-stage energy profile.
// Total == sum(ByElement) == sum(ByStem).
type Energy struct {
	ByStem    [kanshi.StemCount]int
	ByElement [kanshi.ElementCount]int
	Total     int
}

// EnergyOf scores every stem of the chart (the three visible stems and every
// hidden stem of the three branches, regardless of the birth offset) against
// each of the three natal branches and sums the twelve-stage scores.
func EnergyOf(c *Chart) Energy {
	var e Energy
	branches := [3]kanshi.Branch{c.Year.Branch, c.Month.Branch, c.Day.Branch}

	for _, stem := range allStems(c) {
		score := 0
		for _, b := range branches {
			score += stars.TwelveStageOf(stem, b).Score()
		}
		e.ByStem[stem] += score
		e.ByElement[stem.Element()] += score
		e.Total += score
	}
	return e
}

// allStems lists visible stems followed by the full hidden-stem list of each
// pillar's branch. Repeated stems are scored once per occurrence.
func allStems(c *Chart) []kanshi.Stem {
	out := make([]kanshi.Stem, 0, 12)
	for _, p := range c.Pillars() {
		out = append(out, p.Stem)
		for _, h := range kanshi.HiddenStems(p.Branch) {
			out = append(out, h.Stem)
		}
	}
	return out
}
