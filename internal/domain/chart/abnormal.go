package chart

import "github.com/phrazzld/sanmei-api/internal/domain/kanshi"

// Abnormality classifies a pillar as one of the abnormal cycle ids (異常干支).
type Abnormality int

// Abnormality categories.
const (
	NotAbnormal      Abnormality = iota
	OrdinaryAbnormal             // 通常異常干支
	ConcealedUnion               // 暗合異常干支
)

var abnormalityNames = [...]string{"", "通常異常干支", "暗合異常干支"}

func (a Abnormality) String() string {
	if a < 0 || int(a) >= len(abnormalityNames) {
		return "?"
	}
	return abnormalityNames[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Abnormality) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

var abnormalIDs = map[kanshi.ID]Abnormality{
	// 甲戌 乙亥 戊戌 庚子 辛亥 丁巳
	11: OrdinaryAbnormal, 12: OrdinaryAbnormal, 35: OrdinaryAbnormal,
	37: OrdinaryAbnormal, 48: OrdinaryAbnormal, 54: OrdinaryAbnormal,
	// 辛巳 壬午 丙戌 丁亥 戊子 癸巳 己亥
	18: ConcealedUnion, 19: ConcealedUnion, 23: ConcealedUnion, 24: ConcealedUnion,
	25: ConcealedUnion, 30: ConcealedUnion, 36: ConcealedUnion,
}

// AbnormalityOf classifies a single cycle id.
func AbnormalityOf(id kanshi.ID) Abnormality {
	return abnormalIDs[id]
}

// PillarName names one of the three natal pillars.
type PillarName int

// Natal pillars.
const (
	YearPillar PillarName = iota
	MonthPillar
	DayPillar
)

var pillarNames = [...]string{"年柱", "月柱", "日柱"}

func (p PillarName) String() string {
	if p < 0 || int(p) >= len(pillarNames) {
		return "?"
	}
	return pillarNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p PillarName) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// AbnormalFlag marks one natal pillar as abnormal.
type AbnormalFlag struct {
	Pillar   PillarName    `json:"pillar"`
	Kanshi   kanshi.Pillar `json:"kanshi"`
	Category Abnormality   `json:"category"`
}

// AbnormalPillars flags each natal pillar whose id is abnormal, in year, month,
// day order.
func AbnormalPillars(c *Chart) []AbnormalFlag {
	var out []AbnormalFlag
	for i, p := range c.Pillars() {
		if a := AbnormalityOf(p.ID()); a != NotAbnormal {
			out = append(out, AbnormalFlag{Pillar: PillarName(i), Kanshi: p, Category: a})
		}
	}
	return out
}
