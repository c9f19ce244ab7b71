package domain

import (
	"context"
	"fmt"
	"log/slog"

	"gpifab.dev/pkg/gpifab/internal/adapter"
	"gpifab.dev/pkg/gpifab/internal/domain/codec"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

// Loader builds the configuration model of a GPIF configuration file.
type Loader interface {
	Load(ctx context.Context, content []byte, strict bool) (m.ConfigModel, error)
}

type loader struct {
	adapter.GPIFFileAdapter
}

// NewLoader creates a Loader that scans files with the given adapter.
func NewLoader(gpifAdapter adapter.GPIFFileAdapter) Loader {
	return &loader{GPIFFileAdapter: gpifAdapter}
}

// Load scans content and materializes the whole model before returning it.
func (l *loader) Load(ctx context.Context, content []byte, strict bool) (m.ConfigModel, error) {
	result, err := l.Scan(ctx, content, strict)
	if err != nil {
		return m.ConfigModel{}, fmt.Errorf("scan configuration: %w", err)
	}

	if result.Skipped > 0 {
		slog.Warn("skipped lines that did not match their section", "count", result.Skipped)
	}

	model, err := buildModel(result)
	if err != nil {
		return m.ConfigModel{}, err
	}

	slog.Debug("loaded configuration model",
		"states", len(model.States),
		"slots", len(model.Wavedata),
		"positions", len(model.Positions))

	return model, nil
}

func buildModel(result adapter.ScanResult) (m.ConfigModel, error) {
	if result.NumStates == nil {
		return m.ConfigModel{}, &ModelError{Reason: "missing CY_NUMBER_OF_STATES"}
	}

	model := m.ConfigModel{
		NumStates: *result.NumStates,
		States:    buildStates(result.States),
		Wavedata:  append([]m.Slot(nil), result.Wavedata...),
		Positions: append([]int(nil), result.Positions...),
	}

	for i, slot := range model.Wavedata {
		for _, side := range m.Sides {
			transition, ok := codec.Unpack(slot.Register(side))
			if ok && int(transition.NextState) >= model.NumStates {
				return m.ConfigModel{}, &ModelError{Reason: fmt.Sprintf(
					"wavedata[%d] %s next state %d is not below the state count %d",
					i, side, transition.NextState, model.NumStates)}
			}
		}
	}

	for state, position := range model.Positions {
		if position < 0 || position >= len(model.Wavedata) {
			return m.ConfigModel{}, &ModelError{Reason: fmt.Sprintf(
				"state %d uses wavedata[%d] but the table has %d entries",
				state, position, len(model.Wavedata))}
		}
	}

	if len(model.Positions) != len(model.States) {
		slog.Warn("wavedata position table does not cover the state map",
			"positions", len(model.Positions),
			"states", len(model.States))
	}

	return model, nil
}

// buildStates fills indices 0..max(index) from the state map bindings.
func buildStates(bindings map[int]string) []*string {
	size := 0

	for index := range bindings {
		if index+1 > size {
			size = index + 1
		}
	}

	states := make([]*string, size)

	for index, name := range bindings {
		states[index] = &name
	}

	return states
}
