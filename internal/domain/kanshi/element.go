package kanshi

// Element is one of the five phases, ordered by the generation cycle
// Wood → Fire → Earth → Metal → Water → Wood.
type Element int

// The five elements in generation order.
const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// ElementCount is the number of elements in the generation cycle.
const ElementCount = 5

var elementNames = [ElementCount]string{"木", "火", "土", "金", "水"}

func (e Element) String() string {
	if e < 0 || int(e) >= ElementCount {
		return "?"
	}
	return elementNames[e]
}

// Shift returns the element n steps along the generation cycle (n may be negative).
func (e Element) Shift(n int) Element {
	return Element(((int(e)+n)%ElementCount + ElementCount) % ElementCount)
}

// Distance returns how many generation steps lead from e to other, in [0, 4].
func (e Element) Distance(other Element) int {
	return ((int(other)-int(e))%ElementCount + ElementCount) % ElementCount
}

// Elements lists the five elements in generation order.
func Elements() [ElementCount]Element {
	return [ElementCount]Element{Wood, Fire, Earth, Metal, Water}
}

// Polarity is the yin/yang attribute of a stem or branch.
type Polarity int

// Polarities.
const (
	Positive Polarity = iota
	Negative
)

func (p Polarity) String() string {
	if p == Positive {
		return "+"
	}
	return "-"
}
