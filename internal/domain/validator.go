package domain

import (
	"errors"
	"log/slog"
	"strings"

	"gpifab.dev/pkg/gpifab/internal/adapter"
	"gpifab.dev/pkg/gpifab/internal/domain/codec"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

// noTransition is reported for a descriptor whose valid bit is clear.
const noTransition = "no transition"

// Validate cross-checks overlay rows against the configuration model. Rows
// are checked in stream order; by default the first mismatch is returned.
// With aggregate set every mismatch is collected and returned joined.
func Validate(model *m.ConfigModel, rows []m.OverlayRow, aggregate bool) error {
	var errs []error

	report := func(err *ValidationError) bool {
		slog.Debug("overlay mismatch", "slot", err.Slot, "kind", err.Kind, "side", err.Side)
		errs = append(errs, err)

		return aggregate
	}

	for i, row := range rows {
		if i >= len(model.Wavedata) {
			report(&ValidationError{
				Slot:     i,
				Kind:     KindSlotCount,
				Expected: len(model.Wavedata),
				Found:    len(rows),
			})

			break
		}

		if !validateRow(model, i, row, report) {
			break
		}
	}

	if len(errs) == 0 {
		return nil
	}

	if !aggregate {
		return errs[0]
	}

	return errors.Join(errs...)
}

// validateRow checks one row against slot i. It returns false as soon as
// report asks to stop.
func validateRow(model *m.ConfigModel, i int, row m.OverlayRow, report func(*ValidationError) bool) bool {
	if row.Index != i {
		if !report(&ValidationError{Slot: i, Kind: KindSequencing, Expected: i, Found: row.Index}) {
			return false
		}
	}

	if expected := model.SlotStates(i); !statesMatch(model, expected, row.AssociatedStates) {
		names := make([]string, len(expected))
		for j, state := range expected {
			names[j] = model.DisplayStateName(state)
		}

		if !report(&ValidationError{Slot: i, Kind: KindTopologyMismatch, Expected: names, Found: row.AssociatedStates}) {
			return false
		}
	}

	for _, side := range m.Sides {
		if err := validateSide(model, i, side, row.Side(side)); err != nil {
			if !report(err) {
				return false
			}
		}
	}

	return true
}

func validateSide(model *m.ConfigModel, i int, side m.Side, overlay m.SideOverlay) *ValidationError {
	transition, ok := codec.Unpack(model.Wavedata[i].Register(side))
	if !ok {
		if overlay.IsAbsent() {
			return nil
		}

		return &ValidationError{Slot: i, Kind: KindValidityMismatch, Side: side, Expected: noTransition, Found: describeOverlay(overlay)}
	}

	name, named := model.StateName(int(transition.NextState))

	switch {
	case named && overlay.Target != nil && *overlay.Target == name:
		return nil
	case !named && overlay.Target == nil:
		return nil
	}

	found := "no target state"
	if overlay.Target != nil {
		found = *overlay.Target
	}

	return &ValidationError{
		Slot:     i,
		Kind:     KindNextStateMismatch,
		Side:     side,
		Expected: model.DisplayStateName(int(transition.NextState)),
		Found:    found,
	}
}

// statesMatch compares the states routed to a slot with the names listed in
// an overlay row. An unnamed state never matches.
func statesMatch(model *m.ConfigModel, expected []int, found []string) bool {
	if len(expected) != len(found) {
		return false
	}

	for j, state := range expected {
		name, ok := model.StateName(state)
		if !ok || name != found[j] {
			return false
		}
	}

	return true
}

func describeOverlay(overlay m.SideOverlay) string {
	parts := make([]string, 0, 4)

	if overlay.Target != nil {
		parts = append(parts, "state "+*overlay.Target)
	}

	for _, bitset := range []struct {
		name string
		bits *m.BitList
	}{
		{"alpha left", overlay.AlphaLeft},
		{"alpha right", overlay.AlphaRight},
		{"beta", overlay.Beta},
	} {
		if bitset.bits != nil {
			parts = append(parts, bitset.name+" "+adapter.FormatBitList(*bitset.bits))
		}
	}

	return strings.Join(parts, ", ")
}
