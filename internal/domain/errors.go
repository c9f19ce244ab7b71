package domain

import (
	"errors"
	"fmt"

	m "gpifab.dev/pkg/gpifab/internal/model"
)

// ValidationKind classifies a structural validation error.
type ValidationKind string

// Validation error kinds.
const (
	KindSequencing        ValidationKind = "sequencing"
	KindTopologyMismatch  ValidationKind = "topology-mismatch"
	KindValidityMismatch  ValidationKind = "validity-mismatch"
	KindNextStateMismatch ValidationKind = "next-state-mismatch"
	KindSlotCount         ValidationKind = "slot-count"
)

// ValidationError reports an overlay row that disagrees with the topology of
// the configuration file.
type ValidationError struct {
	Slot int
	Kind ValidationKind
	// Side is empty for errors that concern the whole row.
	Side     m.Side
	Expected any
	Found    any
}

func (e *ValidationError) Error() string {
	if e.Side == "" {
		return fmt.Sprintf("row %d: %s: expected %v, found %v", e.Slot, e.Kind, e.Expected, e.Found)
	}

	return fmt.Sprintf("row %d: %s register: %s: expected %v, found %v", e.Slot, e.Side, e.Kind, e.Expected, e.Found)
}

// ModelError reports a configuration file whose content breaks an invariant
// of the configuration model.
type ModelError struct {
	Reason string
}

func (e *ModelError) Error() string {
	return "invalid configuration: " + e.Reason
}

// ErrSourceChanged is returned when the configuration file changes between
// validation and rewriting.
var ErrSourceChanged = errors.New("configuration file changed while it was being edited")

// ErrOutputIsInput is returned when the output path would overwrite the input.
var ErrOutputIsInput = errors.New("output path must differ from the input path")

// ErrDescriptorCount is returned when the rewritten file does not hold the
// same number of descriptor literals as the model.
var ErrDescriptorCount = errors.New("descriptor count does not match the configuration model")
