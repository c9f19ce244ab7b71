package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	m "gpifab.dev/pkg/gpifab/internal/model"
)

// OverlayColumns is the number of tab separated columns of an overlay row.
const OverlayColumns = 10

// OverlayCommentPrefix starts a comment line in an overlay stream.
const OverlayCommentPrefix = "#"

var overlayColumnNames = [OverlayColumns]string{
	"idx",
	"state_names",
	"left_state",
	"left_alpha_left",
	"left_alpha_right",
	"left_beta",
	"right_state",
	"right_alpha_left",
	"right_alpha_right",
	"right_beta",
}

var errTooFewColumns = errors.New("too few columns")

// OverlayAdapter parses the alpha/beta override table supplied by the user.
type OverlayAdapter interface {
	// Parse reads every row of the overlay stream in order.
	Parse(ctx context.Context, r io.Reader) ([]m.OverlayRow, error)
}

// LocalOverlayAdapter parses the tab separated overlay format.
type LocalOverlayAdapter struct{}

// NewLocalOverlayAdapter constructs a LocalOverlayAdapter.
func NewLocalOverlayAdapter() *LocalOverlayAdapter {
	return &LocalOverlayAdapter{}
}

// Parse reads overlay rows, skipping blank and comment lines.
func (a *LocalOverlayAdapter) Parse(ctx context.Context, r io.Reader) ([]m.OverlayRow, error) {
	var rows []m.OverlayRow

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	number := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		number++

		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, OverlayCommentPrefix) {
			continue
		}

		row, err := parseOverlayRow(number, text)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read overlay: %w", err)
	}

	return rows, nil
}

func parseOverlayRow(number int, text string) (m.OverlayRow, error) {
	fields := strings.Split(text, "\t")
	if len(fields) < OverlayColumns {
		return m.OverlayRow{}, &OverlayParseError{
			Line: number,
			Err:  fmt.Errorf("%w: got %d, want %d", errTooFewColumns, len(fields), OverlayColumns),
		}
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return m.OverlayRow{}, &OverlayParseError{Line: number, Column: overlayColumnNames[0], Err: err}
	}

	row := m.OverlayRow{
		Index:            index,
		AssociatedStates: parseStateNames(fields[1]),
		Line:             number,
	}

	row.Left, err = parseSideOverlay(number, fields[2:6], overlayColumnNames[2:6])
	if err != nil {
		return m.OverlayRow{}, err
	}

	row.Right, err = parseSideOverlay(number, fields[6:10], overlayColumnNames[6:10])
	if err != nil {
		return m.OverlayRow{}, err
	}

	return row, nil
}

func parseStateNames(column string) []string {
	if column == "" {
		return []string{}
	}

	names := strings.Split(column, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	return names
}

// parseSideOverlay reads the state, alpha left, alpha right and beta columns
// of one transition direction.
func parseSideOverlay(number int, fields []string, columns []string) (m.SideOverlay, error) {
	var side m.SideOverlay

	if fields[0] != "" {
		target := fields[0]
		side.Target = &target
	}

	bitsets := []**m.BitList{&side.AlphaLeft, &side.AlphaRight, &side.Beta}
	for i, dst := range bitsets {
		bits, err := ParseBitList(fields[i+1])
		if err != nil {
			return m.SideOverlay{}, &OverlayParseError{Line: number, Column: columns[i+1], Err: err}
		}

		*dst = bits
	}

	return side, nil
}

// ParseBitList parses the "[n, n, n]" form of a bitset column. An empty column
// is absent and yields nil; "[]" yields an empty list.
func ParseBitList(column string) (*m.BitList, error) {
	if column == "" {
		return nil, nil
	}

	inner := strings.TrimRight(strings.TrimLeft(column, "["), "]")
	bits := m.BitList{}

	if strings.TrimSpace(inner) == "" {
		return &bits, nil
	}

	for _, item := range strings.Split(inner, ",") {
		bit, err := strconv.ParseUint(strings.TrimSpace(item), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bit position %q: %w", strings.TrimSpace(item), err)
		}

		bits = append(bits, uint(bit))
	}

	return &bits, nil
}

// FormatBitList renders bit positions in the "[n, n, n]" form read by ParseBitList.
func FormatBitList(bits m.BitList) string {
	items := make([]string, len(bits))
	for i, bit := range bits {
		items[i] = strconv.FormatUint(uint64(bit), 10)
	}

	return "[" + strings.Join(items, ", ") + "]"
}
