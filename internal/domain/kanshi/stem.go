package kanshi

import "fmt"

// Stem is one of the ten heavenly stems, 甲 (0) through 癸 (9).
type Stem int

// The ten stems.
const (
	Kinoe      Stem = iota // 甲
	Kinoto                 // 乙
	Hinoe                  // 丙
	Hinoto                 // 丁
	Tsuchinoe              // 戊
	Tsuchinoto             // 己
	Kanoe                  // 庚
	Kanoto                 // 辛
	Mizunoe                // 壬
	Mizunoto               // 癸
)

// StemCount is the number of heavenly stems.
const StemCount = 10

var stemNames = [StemCount]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

func (s Stem) String() string {
	if !s.Valid() {
		return "?"
	}
	return stemNames[s]
}

// Valid reports whether s is one of the ten stems.
func (s Stem) Valid() bool {
	return s >= 0 && int(s) < StemCount
}

// Element of the stem: stems pair up per element, 甲乙 Wood through 壬癸 Water.
func (s Stem) Element() Element {
	return Element(int(s) / 2)
}

// Polarity of the stem: even indices are positive.
func (s Stem) Polarity() Polarity {
	return Polarity(int(s) % 2)
}

// ParseStem resolves a stem glyph.
func ParseStem(glyph string) (Stem, error) {
	for i, name := range stemNames {
		if name == glyph {
			return Stem(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stem %q", glyph)
}

// Stems lists the ten stems in cycle order.
func Stems() [StemCount]Stem {
	var out [StemCount]Stem
	for i := range out {
		out[i] = Stem(i)
	}
	return out
}

// Branch is one of the twelve earthly branches, 子 (0) through 亥 (11).
type Branch int

// The twelve branches.
const (
	Rat     Branch = iota // 子
	Ox                    // 丑
	Tiger                 // 寅
	Rabbit                // 卯
	Dragon                // 辰
	Snake                 // 巳
	Horse                 // 午
	Goat                  // 未
	Monkey                // 申
	Rooster               // 酉
	Dog                   // 戌
	Pig                   // 亥
)

// BranchCount is the number of earthly branches.
const BranchCount = 12

var branchNames = [BranchCount]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// anchorStems is the representative stem used for a branch's element.
var anchorStems = [BranchCount]Stem{
	Mizunoto,   // 子
	Tsuchinoto, // 丑
	Kinoe,      // 寅
	Kinoto,     // 卯
	Tsuchinoe,  // 辰
	Hinoe,      // 巳
	Hinoto,     // 午
	Tsuchinoto, // 未
	Kanoe,      // 申
	Kanoto,     // 酉
	Tsuchinoe,  // 戌
	Mizunoe,    // 亥
}

// branchPolarities follows the traditional assignment, which is not simply
// index parity (子 is negative, 亥 is positive).
var branchPolarities = [BranchCount]Polarity{
	Negative, Negative, Positive, Negative, Positive, Positive,
	Negative, Negative, Positive, Negative, Positive, Positive,
}

func (b Branch) String() string {
	if !b.Valid() {
		return "?"
	}
	return branchNames[b]
}

// Valid reports whether b is one of the twelve branches.
func (b Branch) Valid() bool {
	return b >= 0 && int(b) < BranchCount
}

// AnchorStem returns the stem that represents the branch in element lookups.
func (b Branch) AnchorStem() Stem {
	return anchorStems[b]
}

// Element of the branch, taken from its anchor stem.
func (b Branch) Element() Element {
	return anchorStems[b].Element()
}

// Polarity of the branch.
func (b Branch) Polarity() Polarity {
	return branchPolarities[b]
}

// ParseBranch resolves a branch glyph.
func ParseBranch(glyph string) (Branch, error) {
	for i, name := range branchNames {
		if name == glyph {
			return Branch(i), nil
		}
	}
	return 0, fmt.Errorf("unknown branch %q", glyph)
}

// Branches lists the twelve branches in cycle order.
func Branches() [BranchCount]Branch {
	var out [BranchCount]Branch
	for i := range out {
		out[i] = Branch(i)
	}
	return out
}
