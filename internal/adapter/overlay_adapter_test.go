package adapter

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	m "gpifab.dev/pkg/gpifab/internal/model"
)

func bitList(bits ...uint) *m.BitList {
	list := m.BitList(bits)
	if list == nil {
		list = m.BitList{}
	}

	return &list
}

func TestLocalOverlayAdapter_Parse(t *testing.T) {
	overlay := strings.Join([]string{
		"# idx\tstates\tleft ...",
		"",
		"0\tIDLE                    \tREAD      \t[1, 2]\t[]\t\tWRITE     \t\t\t[12]",
		"1\tREAD, DONE              \tDONE      \t\t\t\t          \t\t\t",
		"2\t\t\t\t\t\t\t\t\t",
	}, "\n")

	rows, err := NewLocalOverlayAdapter().Parse(context.Background(), strings.NewReader(overlay))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Parse() returned %d rows, want 3", len(rows))
	}

	first := rows[0]
	if first.Index != 0 || first.Line != 3 {
		t.Fatalf("Parse() row 0 index/line = %d/%d", first.Index, first.Line)
	}

	if !reflect.DeepEqual(first.AssociatedStates, []string{"IDLE"}) {
		t.Fatalf("Parse() row 0 states = %q", first.AssociatedStates)
	}

	if first.Left.Target == nil || *first.Left.Target != "READ" {
		t.Fatalf("Parse() row 0 left target = %v", first.Left.Target)
	}

	if !reflect.DeepEqual(first.Left.AlphaLeft, bitList(1, 2)) {
		t.Fatalf("Parse() row 0 left alpha left = %v", first.Left.AlphaLeft)
	}

	if !reflect.DeepEqual(first.Left.AlphaRight, bitList()) {
		t.Fatalf("Parse() row 0 left alpha right = %v, want empty mask", first.Left.AlphaRight)
	}

	if first.Left.Beta != nil {
		t.Fatalf("Parse() row 0 left beta = %v, want absent", first.Left.Beta)
	}

	if first.Right.Target == nil || *first.Right.Target != "WRITE" {
		t.Fatalf("Parse() row 0 right target = %v", first.Right.Target)
	}

	if first.Right.AlphaLeft != nil || first.Right.AlphaRight != nil {
		t.Fatalf("Parse() row 0 right alphas should be absent")
	}

	if !reflect.DeepEqual(first.Right.Beta, bitList(12)) {
		t.Fatalf("Parse() row 0 right beta = %v", first.Right.Beta)
	}

	if !reflect.DeepEqual(rows[1].AssociatedStates, []string{"READ", "DONE"}) {
		t.Fatalf("Parse() row 1 states = %q", rows[1].AssociatedStates)
	}

	if !rows[1].Right.IsAbsent() {
		t.Fatalf("Parse() row 1 right should be absent, got %+v", rows[1].Right)
	}

	if len(rows[2].AssociatedStates) != 0 || !rows[2].Left.IsAbsent() || !rows[2].Right.IsAbsent() {
		t.Fatalf("Parse() row 2 = %+v, want empty row", rows[2])
	}
}

func TestLocalOverlayAdapter_Parse_Errors(t *testing.T) {
	tests := []struct {
		name       string
		overlay    string
		wantLine   int
		wantColumn string
	}{
		{"too few columns", "0\tIDLE\tREAD\n", 1, ""},
		{"bad index", "# header\nx\tIDLE\t\t\t\t\t\t\t\t\n", 2, "idx"},
		{"bad bit position", "0\tIDLE\tREAD\t[1, a]\t\t\t\t\t\t\n", 1, "left_alpha_left"},
		{"negative bit position", "0\tIDLE\t\t\t\t\t\t\t\t[-1]\n", 1, "right_beta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocalOverlayAdapter().Parse(context.Background(), strings.NewReader(tt.overlay))

			var parseErr *OverlayParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse() error = %v, want OverlayParseError", err)
			}

			if parseErr.Line != tt.wantLine || parseErr.Column != tt.wantColumn {
				t.Fatalf("Parse() error = %+v, want line %d column %q", parseErr, tt.wantLine, tt.wantColumn)
			}
		})
	}
}

func TestParseBitList(t *testing.T) {
	tests := []struct {
		column string
		want   *m.BitList
	}{
		{"", nil},
		{"[]", bitList()},
		{"[ ]", bitList()},
		{"[0]", bitList(0)},
		{"[0, 3, 31]", bitList(0, 3, 31)},
		{"[[5]]", bitList(5)},
	}

	for _, tt := range tests {
		got, err := ParseBitList(tt.column)
		if err != nil {
			t.Fatalf("ParseBitList(%q) error = %v", tt.column, err)
		}

		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("ParseBitList(%q) = %v, want %v", tt.column, got, tt.want)
		}
	}
}

func TestFormatBitList(t *testing.T) {
	for want, bits := range map[string]m.BitList{"[]": {}, "[0]": {0}, "[0, 3, 31]": {0, 3, 31}} {
		if got := FormatBitList(bits); got != want {
			t.Fatalf("FormatBitList(%v) = %q, want %q", bits, got, want)
		}

		parsed, err := ParseBitList(want)
		if err != nil || !reflect.DeepEqual(*parsed, bits) {
			t.Fatalf("ParseBitList(%q) = %v, %v", want, parsed, err)
		}
	}
}
