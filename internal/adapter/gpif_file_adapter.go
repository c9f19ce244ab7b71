package adapter

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	m "gpifab.dev/pkg/gpifab/internal/model"
)

// summaryOpener starts the comment block that names the following section.
const summaryOpener = "/* Summary"

// sectionTitles maps the descriptive title under a summary opener to its tag.
var sectionTitles = map[string]m.SectionTag{
	"Number of states in the state machine":                              m.SectionNumStates,
	"Mapping of user defined state names to state indices":               m.SectionStatesMap,
	"Initial value of early outputs from the state machine.":             m.SectionAlpha,
	"Transition function values used in the state machine.":              m.SectionTransition,
	"Table containing the transition information for various states.":    m.SectionWavedata,
	"Table that maps state indices to the descriptor table indices.":     m.SectionWavedataPosition,
	"GPIF II configuration register values.":                             m.SectionRegisters,
	"This structure holds all the configuration inputs for the GPIF II.": m.SectionConfig,
}

var (
	numStatesRegex        = regexp.MustCompile(`^#define CY_NUMBER_OF_STATES (\d+)`)
	statesMapRegex        = regexp.MustCompile(`^#define (\w+) (\d+)`)
	wavedataPositionRegex = regexp.MustCompile(`^[\d,]+$`)
	wavedataRegex         = regexp.MustCompile(
		`^\{\s*\{\s*(0[xX][0-9a-fA-F]+)\s*,\s*(0[xX][0-9a-fA-F]+)\s*,\s*(0[xX][0-9a-fA-F]+)\s*\}` +
			`\s*,\s*\{\s*(0[xX][0-9a-fA-F]+)\s*,\s*(0[xX][0-9a-fA-F]+)\s*,\s*(0[xX][0-9a-fA-F]+)\s*\}\s*\}`)
)

// Line is a single source line as seen by the section scanner.
type Line struct {
	// Number is 1-based.
	Number int
	// Text is the raw line including its terminator.
	Text    string
	Trimmed string
	// Section is the section the line belongs to, empty before the first one.
	Section m.SectionTag
	// Header is set for summary openers and section titles.
	Header bool
}

// LineFunc receives every line of a scanned file.
type LineFunc func(line Line) error

// WavedataLiteral is a descriptor pair literal found on a WAVEDATA line.
type WavedataLiteral struct {
	// Start and End delimit the literal inside the raw line.
	Start int
	End   int
	Slot  m.Slot
}

// ScanResult holds everything the scanner extracts from a configuration file.
type ScanResult struct {
	NumStates *int
	// States maps state indices to names; a later binding wins.
	States    map[int]string
	Wavedata  []m.Slot
	Positions []int
	// Skipped counts lines that look like section data but match no grammar.
	Skipped int
}

// GPIFFileAdapter reads the sections of a GPIF II designer generated header.
type GPIFFileAdapter interface {
	// Scan extracts the state count, state map, descriptor table and position
	// table. Lines that do not match their section grammar are skipped unless
	// strict is set and the line looks like section data.
	Scan(ctx context.Context, content []byte, strict bool) (ScanResult, error)

	// Walk calls fn for every line of content with its section attached.
	Walk(ctx context.Context, content []byte, fn LineFunc) error

	// ParseWavedata locates a descriptor pair literal at the start of a raw
	// WAVEDATA line.
	ParseWavedata(line Line) (WavedataLiteral, bool, error)
}

// LocalGPIFFileAdapter is the regexp backed GPIFFileAdapter.
type LocalGPIFFileAdapter struct{}

// NewLocalGPIFFileAdapter constructs a LocalGPIFFileAdapter.
func NewLocalGPIFFileAdapter() *LocalGPIFFileAdapter {
	return &LocalGPIFFileAdapter{}
}

// SplitLines splits content into lines that keep their terminators, so that
// joining the result gives back content unchanged.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	lines := strings.SplitAfter(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// LineEnding returns the terminator of a raw line.
func LineEnding(text string) string {
	switch {
	case strings.HasSuffix(text, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(text, "\n"):
		return "\n"
	default:
		return ""
	}
}

type scanState int

const (
	stateScanning scanState = iota
	stateExpectHeader
	stateInSection
)

// sectionTracker follows the summary blocks of a file.
type sectionTracker struct {
	state scanState
	tag   m.SectionTag
}

// advance feeds one trimmed line to the tracker. It reports whether the line
// was part of a section header.
func (s *sectionTracker) advance(number int, trimmed string) (bool, error) {
	if trimmed == summaryOpener {
		s.state = stateExpectHeader
		return true, nil
	}

	if s.state != stateExpectHeader {
		return false, nil
	}

	tag, ok := sectionTitles[trimmed]
	if !ok {
		return true, &UnknownSectionError{Line: number, Title: trimmed}
	}

	s.state = stateInSection
	s.tag = tag

	return true, nil
}

// Walk calls fn for every line of content with its section attached.
func (a *LocalGPIFFileAdapter) Walk(ctx context.Context, content []byte, fn LineFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tracker sectionTracker

	for i, text := range SplitLines(content) {
		line := Line{
			Number:  i + 1,
			Text:    text,
			Trimmed: strings.TrimSpace(text),
		}

		header, err := tracker.advance(line.Number, line.Trimmed)
		if err != nil {
			return err
		}

		line.Header = header
		if tracker.state == stateInSection {
			line.Section = tracker.tag
		}

		if err := fn(line); err != nil {
			return err
		}
	}

	return nil
}

// Scan extracts the sections the editor cares about from content.
func (a *LocalGPIFFileAdapter) Scan(ctx context.Context, content []byte, strict bool) (ScanResult, error) {
	result := ScanResult{States: map[int]string{}}

	err := a.Walk(ctx, content, func(line Line) error {
		if line.Header {
			return nil
		}

		matched, err := a.scanLine(line, &result)
		if err != nil || matched || !isCandidate(line) {
			return err
		}

		if strict {
			return &MalformedLineError{Line: line.Number, Section: line.Section, Text: line.Trimmed}
		}

		result.Skipped++
		slog.Debug("skipped unmatched line", "line", line.Number, "section", line.Section, "text", line.Trimmed)

		return nil
	})
	if err != nil {
		return ScanResult{}, err
	}

	return result, nil
}

// scanLine applies the grammar of the line's section. It reports whether the
// line matched.
func (a *LocalGPIFFileAdapter) scanLine(line Line, result *ScanResult) (bool, error) {
	switch line.Section {
	case m.SectionNumStates:
		match := numStatesRegex.FindStringSubmatch(line.Trimmed)
		if match == nil {
			return false, nil
		}

		count, err := strconv.Atoi(match[1])
		if err != nil {
			return false, nil
		}

		result.NumStates = &count

		return true, nil

	case m.SectionStatesMap:
		match := statesMapRegex.FindStringSubmatch(line.Trimmed)
		if match == nil {
			return false, nil
		}

		index, err := strconv.Atoi(match[2])
		if err != nil {
			return false, nil
		}

		result.States[index] = match[1]

		return true, nil

	case m.SectionWavedata:
		literal, ok, err := a.ParseWavedata(line)
		if err != nil || !ok {
			return false, err
		}

		result.Wavedata = append(result.Wavedata, literal.Slot)

		return true, nil

	case m.SectionWavedataPosition:
		if !wavedataPositionRegex.MatchString(line.Trimmed) {
			return false, nil
		}

		for _, item := range strings.Split(line.Trimmed, ",") {
			if item == "" {
				continue
			}

			position, err := strconv.Atoi(item)
			if err != nil {
				return false, nil
			}

			result.Positions = append(result.Positions, position)
		}

		return true, nil

	default:
		// Other sections are carried through untouched.
		return true, nil
	}
}

// isCandidate reports whether a line looks like data of its section.
func isCandidate(line Line) bool {
	switch line.Section {
	case m.SectionNumStates, m.SectionStatesMap:
		return strings.HasPrefix(line.Trimmed, "#define")
	case m.SectionWavedata:
		return strings.HasPrefix(line.Trimmed, "{")
	case m.SectionWavedataPosition:
		return line.Trimmed != "" && unicode.IsDigit(rune(line.Trimmed[0]))
	default:
		return false
	}
}

// ParseWavedata locates a descriptor pair literal at the start of a raw line,
// after any leading whitespace.
func (a *LocalGPIFFileAdapter) ParseWavedata(line Line) (WavedataLiteral, bool, error) {
	body := strings.TrimLeftFunc(line.Text, unicode.IsSpace)
	offset := len(line.Text) - len(body)

	loc := wavedataRegex.FindStringSubmatchIndex(body)
	if loc == nil {
		return WavedataLiteral{}, false, nil
	}

	var limbs [6]uint32

	for i := range limbs {
		word := body[loc[2+2*i]:loc[3+2*i]]

		value, err := strconv.ParseUint(word[2:], 16, 32)
		if err != nil {
			return WavedataLiteral{}, false, &LimbOverflowError{Line: line.Number, Limb: word}
		}

		limbs[i] = uint32(value)
	}

	return WavedataLiteral{
		Start: offset + loc[0],
		End:   offset + loc[1],
		Slot: m.Slot{
			Left:  m.FromLimbs([3]uint32{limbs[0], limbs[1], limbs[2]}),
			Right: m.FromLimbs([3]uint32{limbs[3], limbs[4], limbs[5]}),
		},
	}, true, nil
}
