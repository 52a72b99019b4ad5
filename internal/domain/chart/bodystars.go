package chart

import (
	"github.com/phrazzld/sanmei-api/internal/domain/kanshi"
	"github.com/phrazzld/sanmei-api/internal/domain/stars"
)

// MainStars are the ten-god stars at the five body positions (人体星図).
type MainStars struct {
	Head      stars.TenGod `json:"head"`       // year stem
	Chest     stars.TenGod `json:"chest"`      // active hidden stem of the month branch
	Belly     stars.TenGod `json:"belly"`      // month stem
	LeftHand  stars.TenGod `json:"left_hand"`  // active hidden stem of the year branch
	RightHand stars.TenGod `json:"right_hand"` // active hidden stem of the day branch
}

// SubStars are the twelve-stage stars of the day stem in each natal branch,
// read as early, middle and late life.
type SubStars struct {
	Early  stars.TwelveStage `json:"early"`
	Middle stars.TwelveStage `json:"middle"`
	Late   stars.TwelveStage `json:"late"`
}

// MainStarsOf classifies each body position against the day stem. Hidden
// stems are those active at the birth offset.
func MainStarsOf(c *Chart) MainStars {
	day := c.Day.Stem
	return MainStars{
		Head:      stars.TenGodOf(day, c.Year.Stem),
		Chest:     stars.TenGodOf(day, c.ActiveHiddenStem(c.Month.Branch)),
		Belly:     stars.TenGodOf(day, c.Month.Stem),
		LeftHand:  stars.TenGodOf(day, c.ActiveHiddenStem(c.Year.Branch)),
		RightHand: stars.TenGodOf(day, c.ActiveHiddenStem(c.Day.Branch)),
	}
}

// SubStarsOf returns the day stem's stage in the year, month and day branches.
func SubStarsOf(c *Chart) SubStars {
	day := c.Day.Stem
	return SubStars{
		Early:  stars.TwelveStageOf(day, c.Year.Branch),
		Middle: stars.TwelveStageOf(day, c.Month.Branch),
		Late:   stars.TwelveStageOf(day, c.Day.Branch),
	}
}

// Transition lists the active hidden stems of the day, month and year
// branches, in that order.
func Transition(c *Chart) [3]kanshi.Stem {
	return [3]kanshi.Stem{
		c.ActiveHiddenStem(c.Day.Branch),
		c.ActiveHiddenStem(c.Month.Branch),
		c.ActiveHiddenStem(c.Year.Branch),
	}
}
