package chart

import (
	"slices"

	"github.com/phrazzld/sanmei-api/internal/domain/kanshi"
)

// Aspect is one relation found between two pillars.
type Aspect int

// Aspects in report order.
const (
	HeavenClashEarthOpposition Aspect = iota // 天剋地冲
	StemUnion                                // 干合
	Combination                              // 支合
	Opposition                               // 対冲
	Harm                                     // 害
	Break                                    // 破
	SelfPunishment                           // 自刑
	OrdinaryPunishment                       // 旺気刑
	NoblePunishment                          // 生貴刑
	StoragePunishment                        // 庫気刑
	HalfTriad                                // 半会
	GreatHalfTriad                           // 大半会
	SameElement                              // 比和
)

var aspectNames = [...]string{
	"天剋地冲", "干合", "支合", "対冲", "害", "破", "自刑", "旺気刑", "生貴刑", "庫気刑", "半会", "大半会", "比和",
}

func (a Aspect) String() string {
	if a < 0 || int(a) >= len(aspectNames) {
		return "?"
	}
	return aspectNames[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Aspect) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Position labels which natal side a finding belongs to.
type Position int

// Natal sides. Year–Month pairs are East, Month–Day Center, Year–Day West.
// A cycle pillar compared with a natal pillar takes that pillar's side:
// year East, month Center, day West.
const (
	East Position = iota
	Center
	West
)

var positionNames = [...]string{"東方", "中央", "西方"}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return "?"
	}
	return positionNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Finding is the set of aspects found at one position.
type Finding struct {
	Position Position `json:"position"`
	Aspects  []Aspect `json:"aspects"`
}

func (f Finding) String() string {
	s := f.Position.String()
	for i, a := range f.Aspects {
		if i > 0 {
			s += "＋"
		}
		s += a.String()
	}
	return s
}

// branchPairs is a symmetric membership table over unordered branch pairs.
type branchPairs [kanshi.BranchCount][kanshi.BranchCount]bool

func newBranchPairs(pairs ...[2]kanshi.Branch) *branchPairs {
	var t branchPairs
	for _, p := range pairs {
		t[p[0]][p[1]] = true
		t[p[1]][p[0]] = true
	}
	return &t
}

func (t *branchPairs) has(a, b kanshi.Branch) bool {
	return t[a][b]
}

var (
	combinations = newBranchPairs(
		[2]kanshi.Branch{kanshi.Rat, kanshi.Ox},
		[2]kanshi.Branch{kanshi.Tiger, kanshi.Pig},
		[2]kanshi.Branch{kanshi.Rabbit, kanshi.Dog},
		[2]kanshi.Branch{kanshi.Dragon, kanshi.Rooster},
		[2]kanshi.Branch{kanshi.Snake, kanshi.Monkey},
		[2]kanshi.Branch{kanshi.Horse, kanshi.Goat},
	)
	harms = newBranchPairs(
		[2]kanshi.Branch{kanshi.Rat, kanshi.Goat},
		[2]kanshi.Branch{kanshi.Ox, kanshi.Horse},
		[2]kanshi.Branch{kanshi.Tiger, kanshi.Snake},
		[2]kanshi.Branch{kanshi.Rabbit, kanshi.Dragon},
		[2]kanshi.Branch{kanshi.Monkey, kanshi.Pig},
		[2]kanshi.Branch{kanshi.Rooster, kanshi.Dog},
	)
	breaks = newBranchPairs(
		[2]kanshi.Branch{kanshi.Rat, kanshi.Rooster},
		[2]kanshi.Branch{kanshi.Ox, kanshi.Dragon},
		[2]kanshi.Branch{kanshi.Tiger, kanshi.Pig},
		[2]kanshi.Branch{kanshi.Rabbit, kanshi.Horse},
		[2]kanshi.Branch{kanshi.Snake, kanshi.Monkey},
		[2]kanshi.Branch{kanshi.Goat, kanshi.Dog},
	)
	ordinaryPunishments = newBranchPairs(
		[2]kanshi.Branch{kanshi.Rat, kanshi.Rabbit},
	)
	noblePunishments = newBranchPairs(
		[2]kanshi.Branch{kanshi.Tiger, kanshi.Snake},
		[2]kanshi.Branch{kanshi.Snake, kanshi.Monkey},
		[2]kanshi.Branch{kanshi.Monkey, kanshi.Tiger},
	)
	storagePunishments = newBranchPairs(
		[2]kanshi.Branch{kanshi.Ox, kanshi.Dog},
		[2]kanshi.Branch{kanshi.Dog, kanshi.Goat},
		[2]kanshi.Branch{kanshi.Goat, kanshi.Ox},
	)
)

// selfPunishing branches punish themselves when paired with an identical branch.
var selfPunishing = [kanshi.BranchCount]bool{
	kanshi.Dragon: true, kanshi.Horse: true, kanshi.Rooster: true, kanshi.Pig: true,
}

// triads are the four three-branch sets; any two distinct members form a half triad.
var triads = [4][3]kanshi.Branch{
	{kanshi.Monkey, kanshi.Rat, kanshi.Dragon},
	{kanshi.Pig, kanshi.Rabbit, kanshi.Goat},
	{kanshi.Tiger, kanshi.Horse, kanshi.Dog},
	{kanshi.Snake, kanshi.Rooster, kanshi.Ox},
}

func opposed(a, b kanshi.Branch) bool {
	d := int(a) - int(b)
	return d == 6 || d == -6
}

func stemsUnite(a, b kanshi.Stem) bool {
	d := int(a) - int(b)
	return d == 5 || d == -5
}

// stemsClash holds for stem-index distances of 4 or 6, the overcoming pairs.
func stemsClash(a, b kanshi.Stem) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d == 4 || d == 6
}

func sameTriad(a, b kanshi.Branch) bool {
	if a == b {
		return false
	}
	for _, t := range triads {
		if slices.Contains(t[:], a) && slices.Contains(t[:], b) {
			return true
		}
	}
	return false
}

// DetectPair returns the aspects between two pillars, in Aspect order.
//
// A clashing stem pair over opposed branches is reported as
// HeavenClashEarthOpposition alone. Otherwise every matching relation is
// accumulated; a half triad under identical stems is reported as
// GreatHalfTriad, and SameElement is added only when nothing besides
// SelfPunishment matched.
func DetectPair(a, b kanshi.Pillar) []Aspect {
	if stemsClash(a.Stem, b.Stem) && opposed(a.Branch, b.Branch) {
		return []Aspect{HeavenClashEarthOpposition}
	}

	var out []Aspect
	if stemsUnite(a.Stem, b.Stem) {
		out = append(out, StemUnion)
	}
	if combinations.has(a.Branch, b.Branch) {
		out = append(out, Combination)
	}
	if opposed(a.Branch, b.Branch) {
		out = append(out, Opposition)
	}
	if harms.has(a.Branch, b.Branch) {
		out = append(out, Harm)
	}
	if breaks.has(a.Branch, b.Branch) {
		out = append(out, Break)
	}
	if a.Branch == b.Branch && selfPunishing[a.Branch] {
		out = append(out, SelfPunishment)
	}
	if ordinaryPunishments.has(a.Branch, b.Branch) {
		out = append(out, OrdinaryPunishment)
	}
	if noblePunishments.has(a.Branch, b.Branch) {
		out = append(out, NoblePunishment)
	}
	if storagePunishments.has(a.Branch, b.Branch) {
		out = append(out, StoragePunishment)
	}
	if sameTriad(a.Branch, b.Branch) {
		if a.Stem == b.Stem {
			out = append(out, GreatHalfTriad)
		} else {
			out = append(out, HalfTriad)
		}
	}
	if a.Branch.Element() == b.Branch.Element() {
		if len(out) == 0 || (len(out) == 1 && out[0] == SelfPunishment) {
			out = append(out, SameElement)
		}
	}
	return out
}

// NatalFindings compares the natal pillars pairwise: Year–Month (East),
// Month–Day (Center) and Year–Day (West). Positions without aspects are
// omitted.
func NatalFindings(c *Chart) []Finding {
	return collect(map[Position][]Aspect{
		East:   DetectPair(c.Year, c.Month),
		Center: DetectPair(c.Month, c.Day),
		West:   DetectPair(c.Year, c.Day),
	})
}

// CycleFindings compares a fortune-cycle pillar with each natal pillar.
func CycleFindings(c *Chart, p kanshi.Pillar) []Finding {
	return collect(map[Position][]Aspect{
		East:   DetectPair(c.Year, p),
		Center: DetectPair(c.Month, p),
		West:   DetectPair(c.Day, p),
	})
}

// collect deduplicates and sorts aspects per position and orders findings by
// position.
func collect(byPos map[Position][]Aspect) []Finding {
	out := make([]Finding, 0, len(byPos))
	for pos, aspects := range byPos {
		if len(aspects) == 0 {
			continue
		}
		uniq := slices.Clone(aspects)
		slices.Sort(uniq)
		out = append(out, Finding{Position: pos, Aspects: slices.Compact(uniq)})
	}
	slices.SortFunc(out, func(a, b Finding) int { return int(a.Position) - int(b.Position) })
	return out
}
