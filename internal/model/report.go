package model

// ReportForm selects how a configuration report is rendered.
type ReportForm string

const (
	// ReportFull dumps the whole model and every decoded field.
	ReportFull ReportForm = "full"
	// ReportOverlay prints the ten-column overlay table.
	ReportOverlay ReportForm = "overlay"
	// ReportYAML marshals the report as YAML.
	ReportYAML ReportForm = "yaml"
)

// Report is the read-only view of a configuration model used for printing.
type Report struct {
	Source    Path         `yaml:"source"`
	NumStates int          `yaml:"num_states"`
	States    []string     `yaml:"states"`
	Positions []int        `yaml:"wavedata_position"`
	Slots     []SlotReport `yaml:"wavedata"`
}

// SlotReport describes a single transition slot.
type SlotReport struct {
	Index  int               `yaml:"index"`
	Raw    [2]string         `yaml:"raw"`
	States []string          `yaml:"states"`
	Left   *TransitionReport `yaml:"left,omitempty"`
	Right  *TransitionReport `yaml:"right,omitempty"`
}

// TransitionReport is a decoded descriptor with its bitmask fields expanded
// into bit positions. A nil TransitionReport means the descriptor is not valid.
// NextStateName is empty when the next state has no name.
type TransitionReport struct {
	BetaDeassert  uint8   `yaml:"beta_deassert"`
	RepeatCount   uint8   `yaml:"repeat_count"`
	Beta          BitList `yaml:"beta,flow"`
	AlphaRight    BitList `yaml:"alpha_right,flow"`
	AlphaLeft     BitList `yaml:"alpha_left,flow"`
	F1            uint8   `yaml:"f1"`
	F0            uint8   `yaml:"f0"`
	Fd            uint8   `yaml:"fd"`
	Fc            uint8   `yaml:"fc"`
	Fb            uint8   `yaml:"fb"`
	Fa            uint8   `yaml:"fa"`
	NextState     uint8   `yaml:"next_state"`
	NextStateName string  `yaml:"next_state_name,omitempty"`
}
