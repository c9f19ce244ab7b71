package model

import "fmt"

// Slot is one transition slot of the waveform table: the descriptors for the
// left and right transition directions.
type Slot struct {
	Left  Register
	Right Register
}

// Side selects one transition direction of a slot.
type Side string

const (
	// SideLeft is the left transition direction.
	SideLeft Side = "left"
	// SideRight is the right transition direction.
	SideRight Side = "right"
)

// Sides lists both transition directions in table order.
var Sides = []Side{SideLeft, SideRight}

// Register returns the descriptor of the slot for the given side.
func (s Slot) Register(side Side) Register {
	if side == SideRight {
		return s.Right
	}

	return s.Left
}

// WithRegister returns a copy of the slot with the given side replaced.
func (s Slot) WithRegister(side Side, r Register) Slot {
	if side == SideRight {
		s.Right = r
	} else {
		s.Left = r
	}

	return s
}

// ConfigModel is the in-memory view of a GPIF configuration file. It is built
// once per run and never modified afterwards.
type ConfigModel struct {
	NumStates int
	// States is indexed by state index; a nil entry is an index that was never
	// bound to a name.
	States []*string
	// Wavedata holds one slot per descriptor line, in file order.
	Wavedata []Slot
	// Positions maps each state index to the slot it uses.
	Positions []int
}

// StateName returns the name bound to a state index.
func (c *ConfigModel) StateName(index int) (string, bool) {
	if index < 0 || index >= len(c.States) || c.States[index] == nil {
		return "", false
	}

	return *c.States[index], true
}

// DisplayStateName is StateName with a placeholder for unnamed indices.
func (c *ConfigModel) DisplayStateName(index int) string {
	if name, ok := c.StateName(index); ok {
		return name
	}

	return fmt.Sprintf("<state %d>", index)
}

// SlotStates returns the indices of every state routed to slot, in ascending
// state-index order.
func (c *ConfigModel) SlotStates(slot int) []int {
	var states []int

	for state, position := range c.Positions {
		if position == slot {
			states = append(states, state)
		}
	}

	return states
}

// Transition is a decoded valid descriptor.
type Transition struct {
	BetaDeassert bool
	RepeatCount  uint8
	Beta         uint32
	AlphaRight   uint8
	AlphaLeft    uint8
	F1           uint8
	F0           uint8
	Fd           uint8
	Fc           uint8
	Fb           uint8
	Fa           uint8
	NextState    uint8
}
