package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gpifab.dev/pkg/gpifab/internal/adapter"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

// ProvenanceMarker identifies the comment line of a generated header after
// which the modification note is inserted.
const ProvenanceMarker = "This file is generated by Gpif2 designer"

const slotFormat = "{{0x%08X,0x%08X,0x%08X},{0x%08X,0x%08X,0x%08X}}"

// Rewriter produces the edited configuration file text.
type Rewriter interface {
	Rewrite(ctx context.Context, content []byte, wavedata []m.Slot) ([]byte, error)
}

type rewriter struct {
	adapter.GPIFFileAdapter
	now func() time.Time
}

// NewRewriter creates a Rewriter. now stamps the modification note; nil
// means time.Now.
func NewRewriter(gpifAdapter adapter.GPIFFileAdapter, now func() time.Time) Rewriter {
	if now == nil {
		now = time.Now
	}

	return &rewriter{GPIFFileAdapter: gpifAdapter, now: now}
}

// FormatSlot renders a descriptor pair the way the designer tool does.
func FormatSlot(slot m.Slot) string {
	left := slot.Left.Limbs()
	right := slot.Right.Limbs()

	return fmt.Sprintf(slotFormat, left[0], left[1], left[2], right[0], right[1], right[2])
}

// Rewrite copies content line by line, replacing the k-th descriptor literal
// of the WAVEDATA section with wavedata[k] and adding a modification note
// after the provenance line. Everything else is copied verbatim.
func (r *rewriter) Rewrite(ctx context.Context, content []byte, wavedata []m.Slot) ([]byte, error) {
	var (
		out     strings.Builder
		next    int
		stamped = r.now().Format(time.ANSIC)
	)

	out.Grow(len(content) + 128)

	err := r.Walk(ctx, content, func(line adapter.Line) error {
		text := line.Text

		if line.Section == m.SectionWavedata && !line.Header {
			literal, ok, err := r.ParseWavedata(line)
			if err != nil {
				return err
			}

			if ok {
				if next >= len(wavedata) {
					return fmt.Errorf("line %d: %w: more than %d descriptor lines", line.Number, ErrDescriptorCount, len(wavedata))
				}

				text = text[:literal.Start] + FormatSlot(wavedata[next]) + text[literal.End:]
				next++
			}
		}

		out.WriteString(text)

		if strings.Contains(line.Text, ProvenanceMarker) {
			eol := adapter.LineEnding(line.Text)
			if eol == "" {
				eol = "\n"
				out.WriteString(eol)
			}

			out.WriteString(" *" + eol)
			out.WriteString(" * Waveform alphas and betas modified on " + stamped + eol)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rewrite configuration: %w", err)
	}

	if next != len(wavedata) {
		return nil, fmt.Errorf("%w: found %d descriptor lines, model has %d", ErrDescriptorCount, next, len(wavedata))
	}

	return []byte(out.String()), nil
}
