package service

import (
	"fmt"
	"time"

	"github.com/phrazzld/sanmei-api/internal/domain"
	"github.com/phrazzld/sanmei-api/internal/domain/chart"
	"github.com/phrazzld/sanmei-api/internal/domain/fortune"
	"github.com/phrazzld/sanmei-api/internal/domain/kanshi"
	"github.com/phrazzld/sanmei-api/internal/domain/solarterm"
	"github.com/phrazzld/sanmei-api/internal/domain/stars"
)

// Report is the complete structured reading of one birth input. A Report is
// never modified after BuildReport returns it, so cached reports are shared
// between callers.
type Report struct {
	Input       domain.BirthInput    `json:"input"`
	Pillars     Pillars              `json:"pillars"`
	Transition  [3]kanshi.Stem       `json:"transition"`
	MainStars   chart.MainStars      `json:"main_stars"`
	SubStars    SubStars             `json:"sub_stars"`
	Void        Void                 `json:"void"`
	Abnormal    []chart.AbnormalFlag `json:"abnormal"`
	Aspects     []chart.Finding      `json:"aspects"`
	Daiun       *fortune.Daiun       `json:"daiun"`
	Nenun       []fortune.Step       `json:"nenun"`
	CosmicPlate [3]kanshi.ID         `json:"cosmic_plate"`
	Energy      Energy               `json:"energy"`
	EightGate   chart.EightGate      `json:"eight_gate"`
}

// Pillars holds the three natal pillars.
type Pillars struct {
	Year  PillarDetail `json:"year"`
	Month PillarDetail `json:"month"`
	Day   PillarDetail `json:"day"`
}

// PillarDetail is one natal pillar with its hidden-stem breakdown.
type PillarDetail struct {
	ID               kanshi.ID           `json:"id"`
	Stem             kanshi.Stem         `json:"stem"`
	Branch           kanshi.Branch       `json:"branch"`
	HiddenStems      []kanshi.HiddenStem `json:"hidden_stems"`
	ActiveHiddenStem kanshi.Stem         `json:"active_hidden_stem"`
	PrincipalStem    kanshi.Stem         `json:"principal_stem"`
}

// SubStars are the twelve-stage stars with their scores and keywords.
type SubStars struct {
	Early  StageDetail `json:"early"`
	Middle StageDetail `json:"middle"`
	Late   StageDetail `json:"late"`
}

// StageDetail is one twelve-stage star.
type StageDetail struct {
	Star    stars.TwelveStage `json:"star"`
	Score   int               `json:"score"`
	Keyword string            `json:"keyword"`
}

// Void holds the void group, natal void conditions and timing.
type Void struct {
	Group  chart.VoidGroup   `json:"group"`
	Natal  []chart.NatalVoid `json:"natal"`
	Timing chart.VoidTiming  `json:"timing"`
}

// Energy is the energy profile keyed by element and stem glyph.
type Energy struct {
	Total     int                    `json:"total"`
	ByElement map[kanshi.Element]int `json:"by_element"`
	ByStem    map[kanshi.Stem]int    `json:"by_stem"`
}

// BuildReport computes the full report for in. now supplies the reference
// year of the void timing. A nil estimator uses solarterm.Default().
func BuildReport(in domain.BirthInput, now time.Time, params *Params, est *solarterm.Estimator) (*Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if params == nil {
		params = NewDefaultParams()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	c, err := chart.New(in, est)
	if err != nil {
		return nil, fmt.Errorf("derive chart: %w", err)
	}
	daiun, err := fortune.NewDaiun(c, in.Gender, est, params.DaiunSteps)
	if err != nil {
		return nil, fmt.Errorf("decade cycle: %w", err)
	}

	energy := chart.EnergyOf(c)
	group := c.VoidGroup()
	sub := chart.SubStarsOf(c)

	return &Report{
		Input: in,
		Pillars: Pillars{
			Year:  pillarDetail(c, c.Year),
			Month: pillarDetail(c, c.Month),
			Day:   pillarDetail(c, c.Day),
		},
		Transition: chart.Transition(c),
		MainStars:  chart.MainStarsOf(c),
		SubStars: SubStars{
			Early:  stageDetail(sub.Early),
			Middle: stageDetail(sub.Middle),
			Late:   stageDetail(sub.Late),
		},
		Void: Void{
			Group:  group,
			Natal:  chart.NatalVoids(c),
			Timing: chart.VoidTimingOf(group, now.Year()),
		},
		Abnormal:    nonNil(chart.AbnormalPillars(c)),
		Aspects:     chart.NatalFindings(c),
		Daiun:       daiun,
		Nenun:       fortune.Nenun(c, in.Year, params.NenunYears),
		CosmicPlate: c.IDs(),
		Energy:      energyDetail(energy),
		EightGate:   chart.EightGateOf(c, energy),
	}, nil
}

func pillarDetail(c *chart.Chart, p kanshi.Pillar) PillarDetail {
	return PillarDetail{
		ID:               p.ID(),
		Stem:             p.Stem,
		Branch:           p.Branch,
		HiddenStems:      kanshi.HiddenStems(p.Branch),
		ActiveHiddenStem: c.ActiveHiddenStem(p.Branch),
		PrincipalStem:    kanshi.PrincipalStem(p.Branch),
	}
}

func stageDetail(s stars.TwelveStage) StageDetail {
	return StageDetail{Star: s, Score: s.Score(), Keyword: s.Keyword()}
}

func energyDetail(e chart.Energy) Energy {
	out := Energy{
		Total:     e.Total,
		ByElement: make(map[kanshi.Element]int, kanshi.ElementCount),
		ByStem:    make(map[kanshi.Stem]int, kanshi.StemCount),
	}
	for _, el := range kanshi.Elements() {
		out.ByElement[el] = e.ByElement[el]
	}
	for _, s := range kanshi.Stems() {
		out.ByStem[s] = e.ByStem[s]
	}
	return out
}

// nonNil keeps empty lists as [] rather than null in JSON.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
