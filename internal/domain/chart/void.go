package chart

import (
	"fmt"

	"github.com/phrazzld/sanmei-api/internal/domain/kanshi"
)

// VoidGroup is one of the six void branch pairs (天中殺), named by its pair.
type VoidGroup int

// Void groups, numbered so that group g contains branches 2g and 2g+1.
const (
	VoidRatOx         VoidGroup = iota // 子丑
	VoidTigerRabbit                    // 寅卯
	VoidDragonSnake                    // 辰巳
	VoidHorseGoat                      // 午未
	VoidMonkeyRooster                  // 申酉
	VoidDogPig                         // 戌亥
)

// voidByBlock maps each ten-id block of the cycle (starting at 1, 11, ...,
// 51) to the two branches it leaves unpaired.
var voidByBlock = [6]VoidGroup{
	VoidDogPig,        // 1-10
	VoidMonkeyRooster, // 11-20
	VoidHorseGoat,     // 21-30
	VoidDragonSnake,   // 31-40
	VoidTigerRabbit,   // 41-50
	VoidRatOx,         // 51-60
}

// VoidGroupOf resolves the void group of a cycle id. It depends only on the
// id's block.
func VoidGroupOf(id kanshi.ID) VoidGroup {
	id = kanshi.Normalize(int(id))
	return voidByBlock[(int(id)-1)/10]
}

// Branches returns the two branches of the group.
func (g VoidGroup) Branches() [2]kanshi.Branch {
	return [2]kanshi.Branch{kanshi.Branch(2 * g), kanshi.Branch(2*g + 1)}
}

// Contains reports whether b is one of the group's branches.
func (g VoidGroup) Contains(b kanshi.Branch) bool {
	return int(b)/2 == int(g)
}

func (g VoidGroup) String() string {
	if g < 0 || g > VoidDogPig {
		return "?"
	}
	pair := g.Branches()
	return pair[0].String() + pair[1].String()
}

// MarshalText implements encoding.TextMarshaler.
func (g VoidGroup) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// NatalVoid is a void condition carried by the natal chart itself.
type NatalVoid int

// Natal void conditions in report order.
const (
	YearVoid        NatalVoid = iota // 生年中殺: year branch in the day pillar's group
	MonthVoid                        // 生月中殺: month branch in the day pillar's group
	DayVoid                          // 生日中殺: day branch in the year pillar's group
	DoubleNatalVoid                  // 宿命二中殺: year and month void
	ReciprocalVoid                   // 互換中殺: year and day void
	SeatedVoid                       // 日座中殺: day pillar 甲戌 or 乙亥
	ResidentVoid                     // 日居中殺: day pillar 甲辰 or 乙巳
)

var natalVoidNames = [...]string{"生年中殺", "生月中殺", "生日中殺", "宿命二中殺", "互換中殺", "日座中殺", "日居中殺"}

func (v NatalVoid) String() string {
	if v < 0 || int(v) >= len(natalVoidNames) {
		return "?"
	}
	return natalVoidNames[v]
}

// MarshalText implements encoding.TextMarshaler.
func (v NatalVoid) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// VoidGroup returns the void group of the chart's day pillar.
func (c *Chart) VoidGroup() VoidGroup {
	return VoidGroupOf(c.Day.ID())
}

// NatalVoids lists the chart's natal void conditions in NatalVoid order.
func NatalVoids(c *Chart) []NatalVoid {
	dayGroup := c.VoidGroup()
	yearGroup := VoidGroupOf(c.Year.ID())

	year := dayGroup.Contains(c.Year.Branch)
	month := dayGroup.Contains(c.Month.Branch)
	day := yearGroup.Contains(c.Day.Branch)

	out := []NatalVoid{}
	if year {
		out = append(out, YearVoid)
	}
	if month {
		out = append(out, MonthVoid)
	}
	if day {
		out = append(out, DayVoid)
	}
	if year && month {
		out = append(out, DoubleNatalVoid)
	}
	if year && day {
		out = append(out, ReciprocalVoid)
	}
	switch c.Day.ID() {
	case 11, 12:
		out = append(out, SeatedVoid)
	case 41, 42:
		out = append(out, ResidentVoid)
	}
	return out
}

// YearSpan is a two-year void period, inclusive.
type YearSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s YearSpan) String() string {
	return fmt.Sprintf("%d年〜%d年", s.Start, s.End)
}

// VoidTiming describes when a void group recurs: its daily hours, its months
// and the void years around a reference year.
type VoidTiming struct {
	Hours  string      `json:"hours"`
	Months string      `json:"months"`
	Years  [3]YearSpan `json:"years"`
}

var voidWindows = [6]struct{ hours, months string }{
	VoidRatOx:         {"00:00〜04:00", "12月〜1月"},
	VoidTigerRabbit:   {"04:00〜08:00", "2月〜3月"},
	VoidDragonSnake:   {"08:00〜12:00", "4月〜5月"},
	VoidHorseGoat:     {"12:00〜16:00", "6月〜7月"},
	VoidMonkeyRooster: {"16:00〜20:00", "8月〜9月"},
	VoidDogPig:        {"20:00〜24:00", "10月〜11月"},
}

// VoidTimingOf returns the timing of group g relative to referenceYear.
//
// Void years are the two consecutive years whose branches form the group. The
// middle span is the one in progress at referenceYear, or the next one if none
// is; the other two are twelve years before and after it.
func VoidTimingOf(g VoidGroup, referenceYear int) VoidTiming {
	w := voidWindows[g]
	// 1900 is a 子 year.
	current := ((referenceYear-1900)%kanshi.BranchCount + kanshi.BranchCount) % kanshi.BranchCount
	ahead := ((int(g.Branches()[0])-current)%kanshi.BranchCount + kanshi.BranchCount) % kanshi.BranchCount

	center := referenceYear + ahead
	if ahead == kanshi.BranchCount-1 {
		// second year of a span in progress
		center = referenceYear - 1
	}

	t := VoidTiming{Hours: w.hours, Months: w.months}
	for i := range t.Years {
		start := center + (i-1)*kanshi.BranchCount
		t.Years[i] = YearSpan{Start: start, End: start + 1}
	}
	return t
}
