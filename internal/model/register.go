package model

import "fmt"

// RegisterBits is the width of a waveform descriptor register.
const RegisterBits = 96

// Register is a 96-bit waveform descriptor. Lo holds bits 0-63 and Hi holds
// bits 64-95; the upper 32 bits of Hi are always zero.
type Register struct {
	Lo uint64
	Hi uint64
}

// FromLimbs composes a register from three 32-bit limbs in little-limb
// order: limbs[2]*2^64 + limbs[1]*2^32 + limbs[0].
func FromLimbs(limbs [3]uint32) Register {
	return Register{
		Lo: uint64(limbs[1])<<32 | uint64(limbs[0]),
		Hi: uint64(limbs[2]),
	}
}

// Limbs splits the register back into its three 32-bit limbs.
func (r Register) Limbs() [3]uint32 {
	return [3]uint32{
		uint32(r.Lo),
		uint32(r.Lo >> 32),
		uint32(r.Hi),
	}
}

// IsZero reports whether no bit is set.
func (r Register) IsZero() bool {
	return r.Lo == 0 && r.Hi == 0
}

// String renders the register as a single hexadecimal number.
func (r Register) String() string {
	if r.Hi == 0 {
		return fmt.Sprintf("0x%x", r.Lo)
	}

	return fmt.Sprintf("0x%x%016x", r.Hi, r.Lo)
}
