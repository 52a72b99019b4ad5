package fortune

import (
	"github.com/phrazzld/sanmei-api/internal/domain"
	"github.com/phrazzld/sanmei-api/internal/domain/chart"
	"github.com/phrazzld/sanmei-api/internal/domain/kanshi"
	"github.com/phrazzld/sanmei-api/internal/domain/solarterm"
	"github.com/phrazzld/sanmei-api/internal/domain/stars"
)

// DefaultDaiunSteps covers a hundred years of decades.
const DefaultDaiunSteps = 10

// DefaultNenunYears is the default length of the annual cycle.
const DefaultNenunYears = 100

// nenunEpoch is a 甲子 (id 1) year.
const nenunEpoch = 1984

// Step is one entry of a fortune cycle.
type Step struct {
	Age         int               `json:"age"`
	Year        int               `json:"year"`
	ID          kanshi.ID         `json:"id"`
	Pillar      kanshi.Pillar     `json:"pillar"`
	TenGod      stars.TenGod      `json:"ten_god"`
	TwelveStage stars.TwelveStage `json:"twelve_stage"`
	Aspects     []chart.Finding   `json:"aspects"`
	Void        bool              `json:"void"`
}

// Daiun is the decade cycle.
type Daiun struct {
	RisingAge int       `json:"rising_age"`
	Direction Direction `json:"direction"`
	Steps     []Step    `json:"steps"`
}

// NewDaiun builds the decade cycle of c with the given number of steps.
// Step i (1-based) has id monthID±i and starts at age risingAge+(i-1)*10.
func NewDaiun(c *chart.Chart, g domain.Gender, est *solarterm.Estimator, steps int) (*Daiun, error) {
	dir, err := DirectionOf(c.Year.Stem, g)
	if err != nil {
		return nil, err
	}
	rising, err := RisingAge(c, dir, est)
	if err != nil {
		return nil, err
	}

	d := &Daiun{RisingAge: rising, Direction: dir, Steps: make([]Step, 0, steps)}
	for i := 1; i <= steps; i++ {
		d.Steps = append(d.Steps, DaiunStep(c, dir, rising, i))
	}
	return d, nil
}

// DaiunStep computes decade step i of c on its own.
func DaiunStep(c *chart.Chart, dir Direction, risingAge, i int) Step {
	id := c.Month.ID().Add(dir.sign() * i)
	age := risingAge + (i-1)*10
	return newStep(c, id, age, c.Birth.Year()+age)
}

// Nenun builds the annual cycle for count calendar years starting at from.
func Nenun(c *chart.Chart, from, count int) []Step {
	if count < 0 {
		count = 0
	}
	out := make([]Step, 0, count)
	for y := from; y < from+count; y++ {
		out = append(out, NenunStep(c, y))
	}
	return out
}

// NenunStep computes the annual step for calendar year y.
func NenunStep(c *chart.Chart, y int) Step {
	return newStep(c, YearID(y), y-c.Birth.Year(), y)
}

// YearID returns the cycle id of calendar year y as a whole (1984 is 甲子).
func YearID(y int) kanshi.ID {
	return kanshi.Normalize(y - nenunEpoch + 1)
}

func newStep(c *chart.Chart, id kanshi.ID, age, year int) Step {
	p := id.Pillar()
	return Step{
		Age:         age,
		Year:        year,
		ID:          id,
		Pillar:      p,
		TenGod:      stars.TenGodOf(c.Day.Stem, p.Stem),
		TwelveStage: stars.TwelveStageOf(c.Day.Stem, p.Branch),
		Aspects:     chart.CycleFindings(c, p),
		Void:        c.VoidGroup().Contains(p.Branch),
	}
}
