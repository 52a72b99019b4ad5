package kanshi

// MonthCycleDays is the length of the solar month the hidden-stem table is
// apportioned over.
const MonthCycleDays = 30

// HiddenStem is one sub-stem buried in a branch and the number of days of the
// solar month during which it is active.
type HiddenStem struct {
	Stem Stem `json:"stem"`
	Days int  `json:"days"`
}

// hiddenStems lists each branch's sub-stems in activation order. The last
// entry is the principal stem. Day counts per branch sum to 30.
var hiddenStems = [BranchCount][]HiddenStem{
	Rat:     {{Mizunoto, 30}},
	Ox:      {{Mizunoto, 9}, {Kanoto, 3}, {Tsuchinoto, 18}},
	Tiger:   {{Tsuchinoe, 7}, {Hinoe, 7}, {Kinoe, 16}},
	Rabbit:  {{Kinoto, 30}},
	Dragon:  {{Kinoto, 9}, {Mizunoto, 3}, {Tsuchinoe, 18}},
	Snake:   {{Tsuchinoe, 7}, {Kanoe, 7}, {Hinoe, 16}},
	Horse:   {{Tsuchinoto, 10}, {Hinoto, 20}},
	Goat:    {{Hinoto, 9}, {Kinoto, 3}, {Tsuchinoto, 18}},
	Monkey:  {{Tsuchinoe, 10}, {Mizunoe, 3}, {Kanoe, 17}},
	Rooster: {{Kanoto, 30}},
	Dog:     {{Kanoto, 9}, {Hinoto, 3}, {Tsuchinoe, 18}},
	Pig:     {{Kinoe, 12}, {Mizunoe, 18}},
}

// HiddenStems returns a copy of the branch's ordered hidden-stem slots.
func HiddenStems(b Branch) []HiddenStem {
	src := hiddenStems[b]
	out := make([]HiddenStem, len(src))
	copy(out, src)
	return out
}

// ActiveHiddenStem returns the sub-stem whose cumulative day range contains
// offset, the number of days since the solar month began (1..30). Offsets past
// the end of the table resolve to the principal stem.
func ActiveHiddenStem(b Branch, offset int) Stem {
	slots := hiddenStems[b]
	remaining := offset
	for _, slot := range slots {
		if remaining <= slot.Days {
			return slot.Stem
		}
		remaining -= slot.Days
	}
	return slots[len(slots)-1].Stem
}

// PrincipalStem returns the branch's principal (last) hidden stem.
func PrincipalStem(b Branch) Stem {
	slots := hiddenStems[b]
	return slots[len(slots)-1].Stem
}
