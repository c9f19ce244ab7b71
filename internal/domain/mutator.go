package domain

import (
	"fmt"

	"gpifab.dev/pkg/gpifab/internal/domain/codec"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

// Mutate returns a copy of wavedata with the alpha and beta bitsets of every
// validated overlay row written into the matching descriptors. Absent
// bitsets and every other field are left untouched; wavedata itself is not
// modified.
func Mutate(rows []m.OverlayRow, wavedata []m.Slot) ([]m.Slot, error) {
	mutated := make([]m.Slot, len(wavedata))
	copy(mutated, wavedata)

	for _, row := range rows {
		if row.Index < 0 || row.Index >= len(mutated) {
			return nil, fmt.Errorf("overlay row %d: no wavedata slot %d", row.Line, row.Index)
		}

		slot := mutated[row.Index]

		for _, side := range m.Sides {
			r, err := mutateRegister(slot.Register(side), row.Side(side))
			if err != nil {
				return nil, fmt.Errorf("wavedata[%d] %s: %w", row.Index, side, err)
			}

			slot = slot.WithRegister(side, r)
		}

		mutated[row.Index] = slot
	}

	return mutated, nil
}

func mutateRegister(r m.Register, overlay m.SideOverlay) (m.Register, error) {
	for _, field := range []struct {
		field codec.Field
		bits  *m.BitList
	}{
		{codec.FieldAlphaLeft, overlay.AlphaLeft},
		{codec.FieldAlphaRight, overlay.AlphaRight},
		{codec.FieldBeta, overlay.Beta},
	} {
		if field.bits == nil {
			continue
		}

		var err error

		r, err = codec.ReplaceField(r, field.field.From, field.field.To, codec.OnBitsToInt(*field.bits))
		if err != nil {
			return m.Register{}, fmt.Errorf("replace %s: %w", field.field.Name, err)
		}
	}

	return r, nil
}

// ChangedRegisters counts the descriptors that differ between two tables of
// the same length.
func ChangedRegisters(before, after []m.Slot) int {
	changed := 0

	for i := range min(len(before), len(after)) {
		for _, side := range m.Sides {
			if before[i].Register(side) != after[i].Register(side) {
				changed++
			}
		}
	}

	return changed
}
