package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
	"gpifab.dev/pkg/gpifab/internal/adapter"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

const (
	overlayStatesWidth = 24
	overlayTargetWidth = 10
	slotSeparator      = "--------------------------------------------------------------------------------"
	invalidRegister    = "-"
)

// overlayHeader documents the column layout of the overlay form. It is a
// comment line, so the output can be fed back to apply unchanged.
var overlayHeader = "# " + strings.Join([]string{
	"idx", "states", "left_state", "left_alpha_left", "left_alpha_right", "left_beta",
	"right_state", "right_alpha_left", "right_alpha_right", "right_beta",
}, "\t")

// FormatReports renders reports in the requested form.
func FormatReports(reports []m.Report, form m.ReportForm) (string, error) {
	var b strings.Builder

	for i, report := range reports {
		switch form {
		case m.ReportFull:
			if len(reports) > 1 {
				if i > 0 {
					b.WriteString("\n")
				}

				fmt.Fprintf(&b, "==> %s <==\n", report.Source)
			}

			b.WriteString(formatFull(report))
		case m.ReportOverlay:
			if len(reports) > 1 {
				fmt.Fprintf(&b, "# %s\n", report.Source)
			}

			b.WriteString(formatOverlay(report))
		case m.ReportYAML:
			out, err := yaml.Marshal(report)
			if err != nil {
				return "", fmt.Errorf("marshal report %s: %w", report.Source, err)
			}

			if i > 0 {
				b.WriteString("---\n")
			}

			b.Write(out)
		default:
			return "", fmt.Errorf("unknown report format %q", form)
		}
	}

	return b.String(), nil
}

func formatFull(report m.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "num states: %d\n", report.NumStates)
	fmt.Fprintf(&b, "states: [%s]\n", strings.Join(report.States, ", "))
	b.WriteString("wavedata:\n")

	for _, slot := range report.Slots {
		fmt.Fprintf(&b, "%s %s\n", slot.Raw[0], slot.Raw[1])
	}

	fmt.Fprintf(&b, "wavedata position: %s\n\n", formatInts(report.Positions))

	for _, slot := range report.Slots {
		fmt.Fprintf(&b, "wavedata[%d] - states: %s\n", slot.Index, strings.Join(slot.States, ", "))
		b.WriteString(renderSlotTable(slot))
		b.WriteString(slotSeparator + "\n")
	}

	return b.String()
}

func renderSlotTable(slot m.SlotReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Field", "Left", "Right"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	left := transitionFields(slot.Left)
	right := transitionFields(slot.Right)

	for i, label := range transitionLabels {
		table.Append([]string{label, left[i], right[i]})
	}

	table.Render()

	return tableBuffer.String()
}

var transitionLabels = []string{
	"BETA_DEASSERT", "REPEAT_COUNT", "Beta", "Alpha_Right", "Alpha_Left",
	"f1", "f0", "Fd", "Fc", "Fb", "Fa", "NEXT_STATE",
}

func transitionFields(t *m.TransitionReport) []string {
	if t == nil {
		fields := make([]string, len(transitionLabels))
		for i := range fields {
			fields[i] = invalidRegister
		}

		return fields
	}

	return []string{
		strconv.Itoa(int(t.BetaDeassert)),
		strconv.Itoa(int(t.RepeatCount)),
		adapter.FormatBitList(t.Beta),
		adapter.FormatBitList(t.AlphaRight),
		adapter.FormatBitList(t.AlphaLeft),
		strconv.Itoa(int(t.F1)),
		strconv.Itoa(int(t.F0)),
		strconv.Itoa(int(t.Fd)),
		strconv.Itoa(int(t.Fc)),
		strconv.Itoa(int(t.Fb)),
		strconv.Itoa(int(t.Fa)),
		fmt.Sprintf("%d (%s)", t.NextState, nextStateLabel(t)),
	}
}

func nextStateLabel(t *m.TransitionReport) string {
	if t.NextStateName == "" {
		return fmt.Sprintf("<state %d>", t.NextState)
	}

	return t.NextStateName
}

func formatOverlay(report m.Report) string {
	var b strings.Builder

	b.WriteString(overlayHeader + "\n")

	for _, slot := range report.Slots {
		columns := []string{
			strconv.Itoa(slot.Index),
			pad(strings.Join(slot.States, ", "), overlayStatesWidth),
		}
		columns = append(columns, overlaySide(slot.Left)...)
		columns = append(columns, overlaySide(slot.Right)...)

		b.WriteString(strings.Join(columns, "\t") + "\n")
	}

	return b.String()
}

func overlaySide(t *m.TransitionReport) []string {
	if t == nil {
		return []string{pad("", overlayTargetWidth), "", "", ""}
	}

	return []string{
		pad(t.NextStateName, overlayTargetWidth),
		adapter.FormatBitList(t.AlphaLeft),
		adapter.FormatBitList(t.AlphaRight),
		adapter.FormatBitList(t.Beta),
	}
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

func formatInts(values []int) string {
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(items, ", ") + "]"
}
