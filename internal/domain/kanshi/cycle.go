package kanshi

import (
	"fmt"

	"github.com/phrazzld/sanmei-api/internal/domain"
)

// CycleLength is the length of the sexagenary cycle.
const CycleLength = 60

// ID is a position in the sexagenary cycle, 1 (甲子) through 60 (癸亥).
type ID int

// Normalize maps any integer onto [1, 60] with 1-based wraparound:
// ((n-1) mod 60) + 1, taking the non-negative remainder.
func Normalize(n int) ID {
	r := (n - 1) % CycleLength
	if r < 0 {
		r += CycleLength
	}
	return ID(r + 1)
}

// Valid reports whether id lies in [1, 60].
func (id ID) Valid() bool {
	return id >= 1 && id <= CycleLength
}

// Add steps n positions through the cycle, wrapping in both directions.
func (id ID) Add(n int) ID {
	return Normalize(int(id) + n)
}

// Stem returns the stem of the id.
func (id ID) Stem() Stem {
	return StemOf(id)
}

// Branch returns the branch of the id.
func (id ID) Branch() Branch {
	return BranchOf(id)
}

// Pillar returns the stem/branch pair of the id.
func (id ID) Pillar() Pillar {
	return Pillar{Stem: StemOf(id), Branch: BranchOf(id)}
}

// StemOf returns Stem[(id-1) mod 10]. Ids outside [1, 60] are normalized first.
func StemOf(id ID) Stem {
	return Stem((int(Normalize(int(id))) - 1) % StemCount)
}

// BranchOf returns Branch[(id-1) mod 12]. Ids outside [1, 60] are normalized first.
func BranchOf(id ID) Branch {
	return Branch((int(Normalize(int(id))) - 1) % BranchCount)
}

// IDOf is the inverse of StemOf/BranchOf. Only pairs whose stem and branch
// indices share parity exist in the cycle; the rest fail with
// domain.ErrInvalidCombination.
//
// The id is solved directly: id-1 ≡ s (mod 10) and id-1 ≡ b (mod 12) gives
// id-1 = s + 10k where 10k ≡ b-s (mod 12), i.e. k ≡ 5(b-s)/2 (mod 6).
func IDOf(stem Stem, branch Branch) (ID, error) {
	if !stem.Valid() || !branch.Valid() {
		return 0, fmt.Errorf("%w: stem %d, branch %d", domain.ErrInvalidCombination, int(stem), int(branch))
	}
	diff := int(branch) - int(stem)
	if diff%2 != 0 {
		return 0, fmt.Errorf("%w: %s%s", domain.ErrInvalidCombination, stem, branch)
	}
	k := ((diff/2)*5%6 + 6) % 6
	return ID(int(stem) + 10*k + 1), nil
}

// Pillar is a stem/branch pair representing a year, month or day.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// NewPillar validates the pair and returns the pillar.
func NewPillar(stem Stem, branch Branch) (Pillar, error) {
	if _, err := IDOf(stem, branch); err != nil {
		return Pillar{}, err
	}
	return Pillar{Stem: stem, Branch: branch}, nil
}

// ID returns the sexagenary id of the pillar. Pillars built through NewPillar
// or ID.Pillar are always valid; an invalid pair yields 0.
func (p Pillar) ID() ID {
	id, err := IDOf(p.Stem, p.Branch)
	if err != nil {
		return 0
	}
	return id
}

func (p Pillar) String() string {
	return p.Stem.String() + p.Branch.String()
}
