package adapter

import (
	"fmt"

	m "gpifab.dev/pkg/gpifab/internal/model"
)

// UnknownSectionError reports a summary block whose title is not one of the
// known section titles.
type UnknownSectionError struct {
	Line  int
	Title string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("line %d: unknown section title %q", e.Line, e.Title)
}

// MalformedLineError reports a line that looks like section data but does not
// match the section grammar. It is only raised by strict scans.
type MalformedLineError struct {
	Line    int
	Section m.SectionTag
	Text    string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: malformed %s line %q", e.Line, e.Section, e.Text)
}

// LimbOverflowError reports a descriptor word that does not fit in 32 bits.
type LimbOverflowError struct {
	Line int
	Limb string
}

func (e *LimbOverflowError) Error() string {
	return fmt.Sprintf("line %d: descriptor word %s does not fit in 32 bits", e.Line, e.Limb)
}

// OverlayParseError reports an overlay row that cannot be parsed.
type OverlayParseError struct {
	Line   int
	Column string
	Err    error
}

func (e *OverlayParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("overlay line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("overlay line %d: column %s: %v", e.Line, e.Column, e.Err)
}

func (e *OverlayParseError) Unwrap() error {
	return e.Err
}
