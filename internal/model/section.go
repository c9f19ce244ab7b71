package model

// SectionTag is the short name of a summary section in a generated GPIF
// configuration header.
type SectionTag string

// Known section tags.
const (
	SectionNumStates        SectionTag = "NUM STATES"
	SectionStatesMap        SectionTag = "STATES MAP"
	SectionAlpha            SectionTag = "ALPHA"
	SectionTransition       SectionTag = "TRANSITION"
	SectionWavedata         SectionTag = "WAVEDATA"
	SectionWavedataPosition SectionTag = "WAVEDATA POSITION"
	SectionRegisters        SectionTag = "REGISTERS"
	SectionConfig           SectionTag = "CONFIG"
)
