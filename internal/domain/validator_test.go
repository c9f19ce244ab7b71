package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gpifab.dev/pkg/gpifab/internal/domain"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

func requireValidationError(t *testing.T, err error) *domain.ValidationError {
	t.Helper()

	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)

	return validationErr
}

func TestValidate_SampleOverlays(t *testing.T) {
	model := loadSample(t)

	for _, name := range []string{"overlay_identity.tsv", "overlay_edit.tsv"} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, domain.Validate(&model, parseOverlay(t, name), false))
		})
	}
}

func TestValidate_FewerRowsThanSlots(t *testing.T) {
	model := loadSample(t)
	rows := parseOverlay(t, "overlay_identity.tsv")

	assert.NoError(t, domain.Validate(&model, rows[:1], false))
	assert.NoError(t, domain.Validate(&model, nil, false))
}

func TestValidate_Sequencing(t *testing.T) {
	model := loadSample(t)
	rows := parseOverlay(t, "overlay_identity.tsv")
	rows[1], rows[2] = rows[2], rows[1]

	err := requireValidationError(t, domain.Validate(&model, rows, false))

	assert.Equal(t, 1, err.Slot)
	assert.Equal(t, domain.KindSequencing, err.Kind)
	assert.Equal(t, 1, err.Expected)
	assert.Equal(t, 2, err.Found)
}

func TestValidate_TopologyMismatch(t *testing.T) {
	model := m.ConfigModel{
		NumStates: 2,
		States:    []*string{strPtr("IDLE"), strPtr("RUN")},
		Wavedata:  []m.Slot{{}},
		Positions: []int{0, 0},
	}
	rows := []m.OverlayRow{{Index: 0, AssociatedStates: []string{"RUN", "IDLE"}}}

	err := requireValidationError(t, domain.Validate(&model, rows, false))

	assert.Equal(t, 0, err.Slot)
	assert.Equal(t, domain.KindTopologyMismatch, err.Kind)
	assert.Equal(t, []string{"IDLE", "RUN"}, err.Expected)
	assert.Equal(t, []string{"RUN", "IDLE"}, err.Found)
	assert.Equal(t, "row 0: topology-mismatch: expected [IDLE RUN], found [RUN IDLE]", err.Error())
}

func TestValidate_UnnamedStateNeverMatches(t *testing.T) {
	model := m.ConfigModel{
		NumStates: 2,
		States:    []*string{strPtr("IDLE"), nil},
		Wavedata:  []m.Slot{{}},
		Positions: []int{0, 0},
	}
	rows := []m.OverlayRow{{Index: 0, AssociatedStates: []string{"IDLE", "<state 1>"}}}

	err := requireValidationError(t, domain.Validate(&model, rows, false))

	assert.Equal(t, domain.KindTopologyMismatch, err.Kind)
	assert.Equal(t, []string{"IDLE", "<state 1>"}, err.Expected)
}

func TestValidate_ValidityMismatch(t *testing.T) {
	model := loadSample(t)
	rows := parseOverlay(t, "overlay_identity.tsv")
	rows[1].Right.Beta = bits(1)

	err := requireValidationError(t, domain.Validate(&model, rows, false))

	assert.Equal(t, 1, err.Slot)
	assert.Equal(t, domain.KindValidityMismatch, err.Kind)
	assert.Equal(t, m.SideRight, err.Side)
	assert.Equal(t, "no transition", err.Expected)
	assert.Equal(t, "beta [1]", err.Found)
}

func TestValidate_NextStateMismatch(t *testing.T) {
	tests := []struct {
		name   string
		target *string
		found  string
	}{
		{"wrong target", strPtr("WRITE"), "WRITE"},
		{"missing target", nil, "no target state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := loadSample(t)
			rows := parseOverlay(t, "overlay_identity.tsv")
			rows[0].Left.Target = tt.target

			err := requireValidationError(t, domain.Validate(&model, rows, false))

			assert.Equal(t, 0, err.Slot)
			assert.Equal(t, domain.KindNextStateMismatch, err.Kind)
			assert.Equal(t, m.SideLeft, err.Side)
			assert.Equal(t, "READ", err.Expected)
			assert.Equal(t, tt.found, err.Found)
		})
	}
}

func TestValidate_UnnamedNextStateMatchesEmptyTarget(t *testing.T) {
	model := m.ConfigModel{
		NumStates: 2,
		States:    []*string{strPtr("IDLE")},
		Wavedata:  []m.Slot{{Left: limbs(0x00000001, 0x00000000, 0x80000000)}},
		Positions: []int{0},
	}
	rows := []m.OverlayRow{{Index: 0, AssociatedStates: []string{"IDLE"}, Left: m.SideOverlay{Beta: bits(3)}}}

	assert.NoError(t, domain.Validate(&model, rows, false))
}

func TestValidate_SlotCount(t *testing.T) {
	model := loadSample(t)
	rows := parseOverlay(t, "overlay_identity.tsv")
	rows = append(rows, m.OverlayRow{Index: 3, AssociatedStates: []string{}})

	err := requireValidationError(t, domain.Validate(&model, rows, false))

	assert.Equal(t, 3, err.Slot)
	assert.Equal(t, domain.KindSlotCount, err.Kind)
	assert.Equal(t, 3, err.Expected)
	assert.Equal(t, 4, err.Found)
}

func TestValidate_FailFastStopsAtFirstError(t *testing.T) {
	model := loadSample(t)
	rows := parseOverlay(t, "overlay_identity.tsv")
	rows[0].Left.Target = strPtr("WRITE")
	rows[2].AssociatedStates = []string{"DONE"}

	err := domain.Validate(&model, rows, false)

	validationErr := requireValidationError(t, err)
	assert.Equal(t, 0, validationErr.Slot)

	var joined interface{ Unwrap() []error }
	assert.False(t, errors.As(err, &joined))
}

func TestValidate_AggregateCollectsEveryError(t *testing.T) {
	model := loadSample(t)
	rows := parseOverlay(t, "overlay_identity.tsv")
	rows[0].Left.Target = strPtr("WRITE")
	rows[1].Right.Target = strPtr("IDLE")
	rows[2].AssociatedStates = []string{"DONE"}

	err := domain.Validate(&model, rows, true)
	require.Error(t, err)

	var joined interface{ Unwrap() []error }
	require.ErrorAs(t, err, &joined)

	errs := joined.Unwrap()
	require.Len(t, errs, 3)

	kinds := make([]domain.ValidationKind, len(errs))
	for i, e := range errs {
		kinds[i] = requireValidationError(t, e).Kind
	}

	assert.Equal(t, []domain.ValidationKind{
		domain.KindNextStateMismatch,
		domain.KindValidityMismatch,
		domain.KindTopologyMismatch,
	}, kinds)
}
