package chart

// EightGate redistributes the per-element energy around the day stem's
// element.
type EightGate struct {
	Self  int `json:"self"`  // same element as the day stem
	North int `json:"north"` // generates the day stem (received)
	South int `json:"south"` // generated by the day stem (transmitted)
	West  int `json:"west"`  // overcomes the day stem (honor)
	East  int `json:"east"`  // overcome by the day stem (accumulated)
}

// EightGateOf places the element totals at offsets 0, -1, +1, -2, +2 from the
// day stem's element along the generation cycle.
func EightGateOf(c *Chart, e Energy) EightGate {
	self := c.Day.Stem.Element()
	at := func(n int) int { return e.ByElement[self.Shift(n)] }
	return EightGate{
		Self:  at(0),
		North: at(-1),
		South: at(1),
		West:  at(-2),
		East:  at(2),
	}
}
