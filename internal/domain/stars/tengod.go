package stars

import "github.com/phrazzld/sanmei-api/internal/domain/kanshi"

// TenGod is one of the ten major stars.
type TenGod int

// The ten major stars, ordered by generation distance from the day stem and
// then by polarity (equal first).
const (
	Kanshaku TenGod = iota // 貫索: same element, same polarity
	Sekimon                // 石門: same element, different polarity
	Hokaku                 // 鳳閣: self generates other, same polarity
	Chojo                  // 調舒: self generates other, different polarity
	Rokuzon                // 禄存: self overcomes other, same polarity
	Shiroku                // 司禄: self overcomes other, different polarity
	Shaki                  // 車騎: other overcomes self, same polarity
	Kengyu                 // 牽牛: other overcomes self, different polarity
	Ryuko                  // 龍高: other generates self, same polarity
	Gyokudo                // 玉堂: other generates self, different polarity
)

// TenGodCount is the number of major stars.
const TenGodCount = 10

var tenGodNames = [TenGodCount]string{
	"貫索", "石門", "鳳閣", "調舒", "禄存", "司禄", "車騎", "牽牛", "龍高", "玉堂",
}

func (g TenGod) String() string {
	if g < 0 || int(g) >= TenGodCount {
		return "?"
	}
	return tenGodNames[g]
}

// MarshalText implements encoding.TextMarshaler.
func (g TenGod) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// TenGodOf classifies other relative to the day stem.
//
// The generation distance d = (element(other) - element(day)) mod 5 selects
// the relationship:
//
//	0  same element
//	1  day generates other
//	2  day overcomes other
//	3  other overcomes day
//	4  other generates day
//
// and the polarity match picks one of the two stars of that relationship.
// Every (distance, polarity) pair maps to exactly one star.
func TenGodOf(day, other kanshi.Stem) TenGod {
	d := day.Element().Distance(other.Element())
	g := TenGod(d * 2)
	if day.Polarity() != other.Polarity() {
		g++
	}
	return g
}
