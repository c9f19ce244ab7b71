// Package codec packs and unpacks 96-bit GPIF II waveform descriptors.
//
// A descriptor is split into twelve fields. Bit 95 gates all the others: a
// descriptor without it carries no transition and its remaining bits have no
// meaning.
package codec

import (
	"errors"
	"fmt"
	"math/bits"

	m "gpifab.dev/pkg/gpifab/internal/model"
)

// ErrBitRange is returned for a field range that does not fit a descriptor.
var ErrBitRange = errors.New("invalid bit range")

// Field is a named bit range [From, To) of a descriptor.
type Field struct {
	Name string
	From uint
	To   uint
}

// Width returns the number of bits covered by the field.
func (f Field) Width() uint {
	return f.To - f.From
}

// Descriptor fields, most significant first.
var (
	FieldValid        = Field{Name: "VALID", From: 95, To: 96}
	FieldBetaDeassert = Field{Name: "BETA_DEASSERT", From: 94, To: 95}
	FieldRepeatCount  = Field{Name: "REPEAT_COUNT", From: 86, To: 94}
	FieldBeta         = Field{Name: "Beta", From: 54, To: 86}
	FieldAlphaRight   = Field{Name: "Alpha_Right", From: 46, To: 54}
	FieldAlphaLeft    = Field{Name: "Alpha_Left", From: 38, To: 46}
	FieldF1           = Field{Name: "f1", From: 33, To: 38}
	FieldF0           = Field{Name: "f0", From: 28, To: 33}
	FieldFd           = Field{Name: "Fd", From: 23, To: 28}
	FieldFc           = Field{Name: "Fc", From: 18, To: 23}
	FieldFb           = Field{Name: "Fb", From: 13, To: 18}
	FieldFa           = Field{Name: "Fa", From: 8, To: 13}
	FieldNextState    = Field{Name: "NEXT_STATE", From: 0, To: 8}
)

// Fields lists all descriptor fields. Together they cover bits 0-95 exactly once.
var Fields = []Field{
	FieldValid,
	FieldBetaDeassert,
	FieldRepeatCount,
	FieldBeta,
	FieldAlphaRight,
	FieldAlphaLeft,
	FieldF1,
	FieldF0,
	FieldFd,
	FieldFc,
	FieldFb,
	FieldFa,
	FieldNextState,
}

// Extract returns the value of bits [from, to) of r.
func Extract(r m.Register, from, to uint) (uint64, error) {
	if err := checkRange(from, to); err != nil {
		return 0, err
	}

	return extract(r, from, to), nil
}

// ExtractField returns the value of a descriptor field.
func ExtractField(r m.Register, f Field) uint64 {
	return extract(r, f.From, f.To)
}

// ReplaceField returns r with bits [from, to) replaced by value masked to the
// range width. Bits below from and at or above to are preserved.
func ReplaceField(r m.Register, from, to uint, value uint64) (m.Register, error) {
	if err := checkRange(from, to); err != nil {
		return r, err
	}

	return replace(r, from, to, value), nil
}

// Unpack decodes a descriptor. It returns false when the valid bit is clear,
// in which case no field carries meaning.
func Unpack(r m.Register) (m.Transition, bool) {
	if ExtractField(r, FieldValid) == 0 {
		return m.Transition{}, false
	}

	return m.Transition{
		BetaDeassert: ExtractField(r, FieldBetaDeassert) == 1,
		RepeatCount:  uint8(ExtractField(r, FieldRepeatCount)),
		Beta:         uint32(ExtractField(r, FieldBeta)),
		AlphaRight:   uint8(ExtractField(r, FieldAlphaRight)),
		AlphaLeft:    uint8(ExtractField(r, FieldAlphaLeft)),
		F1:           uint8(ExtractField(r, FieldF1)),
		F0:           uint8(ExtractField(r, FieldF0)),
		Fd:           uint8(ExtractField(r, FieldFd)),
		Fc:           uint8(ExtractField(r, FieldFc)),
		Fb:           uint8(ExtractField(r, FieldFb)),
		Fa:           uint8(ExtractField(r, FieldFa)),
		NextState:    uint8(ExtractField(r, FieldNextState)),
	}, true
}

// Pack encodes a transition into a valid descriptor.
func Pack(t m.Transition) m.Register {
	var r m.Register

	var betaDeassert uint64
	if t.BetaDeassert {
		betaDeassert = 1
	}

	r = replaceField(r, FieldValid, 1)
	r = replaceField(r, FieldBetaDeassert, betaDeassert)
	r = replaceField(r, FieldRepeatCount, uint64(t.RepeatCount))
	r = replaceField(r, FieldBeta, uint64(t.Beta))
	r = replaceField(r, FieldAlphaRight, uint64(t.AlphaRight))
	r = replaceField(r, FieldAlphaLeft, uint64(t.AlphaLeft))
	r = replaceField(r, FieldF1, uint64(t.F1))
	r = replaceField(r, FieldF0, uint64(t.F0))
	r = replaceField(r, FieldFd, uint64(t.Fd))
	r = replaceField(r, FieldFc, uint64(t.Fc))
	r = replaceField(r, FieldFb, uint64(t.Fb))
	r = replaceField(r, FieldFa, uint64(t.Fa))
	r = replaceField(r, FieldNextState, uint64(t.NextState))

	return r
}

// OnBitsToInt turns a list of bit positions into a mask. Positions beyond 63
// do not fit any descriptor field and are dropped.
func OnBitsToInt(positions m.BitList) uint64 {
	var mask uint64

	for _, bit := range positions {
		if bit < 64 {
			mask |= 1 << bit
		}
	}

	return mask
}

// OnBits returns the positions of the set bits of mask in ascending order.
func OnBits(mask uint64) m.BitList {
	positions := make(m.BitList, 0, bits.OnesCount64(mask))

	for mask != 0 {
		bit := uint(bits.TrailingZeros64(mask))
		positions = append(positions, bit)
		mask &^= 1 << bit
	}

	return positions
}

func checkRange(from, to uint) error {
	if from >= to || to > m.RegisterBits || to-from > 64 {
		return fmt.Errorf("%w: [%d,%d)", ErrBitRange, from, to)
	}

	return nil
}

func replaceField(r m.Register, f Field, value uint64) m.Register {
	return replace(r, f.From, f.To, value)
}

func extract(r m.Register, from, to uint) uint64 {
	return shiftRight(r, from) & ones(to-from)
}

func replace(r m.Register, from, to uint, value uint64) m.Register {
	width := to - from
	cleared := shiftLeft(ones(width), from)
	set := shiftLeft(value&ones(width), from)

	return m.Register{
		Lo: r.Lo&^cleared.Lo | set.Lo,
		Hi: r.Hi&^cleared.Hi | set.Hi,
	}
}

// ones returns a mask with the low width bits set, for width in [1, 64].
func ones(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return 1<<width - 1
}

// shiftRight returns the low 64 bits of r >> n.
func shiftRight(r m.Register, n uint) uint64 {
	switch {
	case n == 0:
		return r.Lo
	case n < 64:
		return r.Lo>>n | r.Hi<<(64-n)
	default:
		return r.Hi >> (n - 64)
	}
}

// shiftLeft places v at bit n of a 96-bit register, dropping bits past 95.
func shiftLeft(v uint64, n uint) m.Register {
	var r m.Register

	switch {
	case n == 0:
		r = m.Register{Lo: v}
	case n < 64:
		r = m.Register{Lo: v << n, Hi: v >> (64 - n)}
	default:
		r = m.Register{Hi: v << (n - 64)}
	}

	r.Hi &= 1<<(m.RegisterBits-64) - 1

	return r
}
