package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gpifab.dev/pkg/gpifab/internal/domain"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

func TestMutate_SampleEdit(t *testing.T) {
	model := loadSample(t)
	original := append([]m.Slot(nil), model.Wavedata...)

	mutated, err := domain.Mutate(parseOverlay(t, "overlay_edit.tsv"), model.Wavedata)
	require.NoError(t, err)

	assert.Equal(t, [3]uint32{0x00000301, 0x00400180, 0x80000000}, mutated[0].Left.Limbs())
	assert.Equal(t, original[0].Right, mutated[0].Right)
	assert.Equal(t, original[1], mutated[1])
	assert.Equal(t, [3]uint32{0x00000000, 0x00000140, 0xC0200000}, mutated[2].Left.Limbs())
	assert.Equal(t, original[2].Right, mutated[2].Right)

	assert.Equal(t, original, model.Wavedata, "input must not be modified")
	assert.Equal(t, 2, domain.ChangedRegisters(model.Wavedata, mutated))
}

func TestMutate_IdentityOverlayChangesNothing(t *testing.T) {
	model := loadSample(t)

	mutated, err := domain.Mutate(parseOverlay(t, "overlay_identity.tsv"), model.Wavedata)
	require.NoError(t, err)

	assert.Equal(t, model.Wavedata, mutated)
	assert.Zero(t, domain.ChangedRegisters(model.Wavedata, mutated))
}

func TestMutate_EmptyBitsetClearsField(t *testing.T) {
	wavedata := []m.Slot{{Left: limbs(0x00000301, 0x00400040, 0x80000000)}}
	rows := []m.OverlayRow{{Index: 0, Left: m.SideOverlay{AlphaLeft: bits(), Beta: bits()}}}

	mutated, err := domain.Mutate(rows, wavedata)
	require.NoError(t, err)

	assert.Equal(t, [3]uint32{0x00000301, 0x00000000, 0x80000000}, mutated[0].Left.Limbs())
}

func TestMutate_OnlyRequestedFieldsChange(t *testing.T) {
	wavedata := []m.Slot{{
		Left:  limbs(0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF),
		Right: limbs(0x00000000, 0x00000000, 0x80000000),
	}}
	rows := []m.OverlayRow{{
		Index: 0,
		Left:  m.SideOverlay{AlphaRight: bits()},
		Right: m.SideOverlay{AlphaRight: bits(0, 7)},
	}}

	mutated, err := domain.Mutate(rows, wavedata)
	require.NoError(t, err)

	// alpha_right is bits 46-53: bits 14-21 of the middle limb.
	assert.Equal(t, [3]uint32{0xFFFFFFFF, 0xFFC03FFF, 0xFFFFFFFF}, mutated[0].Left.Limbs())
	assert.Equal(t, [3]uint32{0x00000000, 0x00204000, 0x80000000}, mutated[0].Right.Limbs())
}

func TestMutate_RowOutsideTable(t *testing.T) {
	_, err := domain.Mutate([]m.OverlayRow{{Index: 1, Line: 4}}, []m.Slot{{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no wavedata slot 1")
}
