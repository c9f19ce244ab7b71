package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gpifab.dev/pkg/gpifab/internal/domain"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

func TestBuildReport_Sample(t *testing.T) {
	report := domain.BuildReport("cyfxgpif2config.h", loadSample(t))

	assert.Equal(t, m.Path("cyfxgpif2config.h"), report.Source)
	assert.Equal(t, 4, report.NumStates)
	assert.Equal(t, []string{"IDLE", "READ", "WRITE", "DONE"}, report.States)
	assert.Equal(t, []int{0, 1, 2, 1}, report.Positions)
	require.Len(t, report.Slots, 3)

	slot := report.Slots[0]
	assert.Equal(t, [2]string{"0x800000000040004000000301", "0x800000040000800000002002"}, slot.Raw)
	assert.Equal(t, []string{"IDLE"}, slot.States)
	assert.Equal(t, &m.TransitionReport{
		Beta:          m.BitList{0},
		AlphaRight:    m.BitList{},
		AlphaLeft:     m.BitList{0},
		Fa:            3,
		NextState:     1,
		NextStateName: "READ",
	}, slot.Left)
	assert.Equal(t, &m.TransitionReport{
		Beta:          m.BitList{12},
		AlphaRight:    m.BitList{1},
		AlphaLeft:     m.BitList{},
		Fb:            1,
		NextState:     2,
		NextStateName: "WRITE",
	}, slot.Right)

	assert.Equal(t, []string{"READ", "DONE"}, report.Slots[1].States)
	assert.Equal(t, uint8(2), report.Slots[1].Left.RepeatCount)
	assert.Nil(t, report.Slots[1].Right)

	assert.Equal(t, uint8(1), report.Slots[2].Left.BetaDeassert)
	assert.Equal(t, m.BitList{0, 2}, report.Slots[2].Left.AlphaLeft)
	assert.Equal(t, "IDLE", report.Slots[2].Left.NextStateName)
	assert.Nil(t, report.Slots[2].Right)
}

func TestBuildReport_UnnamedStates(t *testing.T) {
	model := m.ConfigModel{
		NumStates: 3,
		States:    []*string{strPtr("IDLE"), nil, strPtr("DONE")},
		Wavedata:  []m.Slot{{Left: limbs(0x00000001, 0x00000000, 0x80000000)}},
		Positions: []int{0, 0, 0},
	}

	report := domain.BuildReport("gaps.h", model)

	assert.Equal(t, []string{"IDLE", "<state 1>", "DONE"}, report.States)
	assert.Equal(t, []string{"IDLE", "<state 1>", "DONE"}, report.Slots[0].States)
	assert.Equal(t, uint8(1), report.Slots[0].Left.NextState)
	assert.Empty(t, report.Slots[0].Left.NextStateName)
}
