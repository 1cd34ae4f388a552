package alu

import (
	"github.com/thelolagemann/go-lr35902/internal/types"
	"github.com/thelolagemann/go-lr35902/internal/types/registers"
)

// Shift is a rotate, shift or swap on a single operand, selected by the
// y field of the first quarter of the 0xCB table.
type Shift func(n uint8, f Flags) (uint8, Flags)

// Shifts holds the extended rotate and shift operations in opcode order.
var Shifts = [8]Shift{
	func(n uint8, _ Flags) (uint8, Flags) { return RotateLeftCarry(n) },
	func(n uint8, _ Flags) (uint8, Flags) { return RotateRightCarry(n) },
	func(n uint8, f Flags) (uint8, Flags) { return RotateLeft(n, f.C()) },
	func(n uint8, f Flags) (uint8, Flags) { return RotateRight(n, f.C()) },
	func(n uint8, _ Flags) (uint8, Flags) { return ShiftLeftArithmetic(n) },
	func(n uint8, _ Flags) (uint8, Flags) { return ShiftRightArithmetic(n) },
	func(n uint8, _ Flags) (uint8, Flags) { return Swap(n) },
	func(n uint8, _ Flags) (uint8, Flags) { return ShiftRightLogical(n) },
}

// ShiftNames holds the mnemonics of Shifts.
var ShiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// RotateLeftCarry rotates n left by 1 bit. The most significant bit is
// copied to both the carry flag and the least significant bit.
//
//	RLC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func RotateLeftCarry(n uint8) (uint8, Flags) {
	computed := n<<1 | n>>7
	return computed, registers.NewFlags(computed == 0, false, false, n&types.Bit7 != 0)
}

// RotateRightCarry rotates n right by 1 bit. The least significant bit
// is copied to both the carry flag and the most significant bit.
//
//	RRC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func RotateRightCarry(n uint8) (uint8, Flags) {
	computed := n>>1 | n<<7
	return computed, registers.NewFlags(computed == 0, false, false, n&types.Bit0 != 0)
}

// RotateLeft rotates n left through the carry flag.
//
//	RL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func RotateLeft(n uint8, carry bool) (uint8, Flags) {
	computed := n<<1 | carryBit(carry)
	return computed, registers.NewFlags(computed == 0, false, false, n&types.Bit7 != 0)
}

// RotateRight rotates n right through the carry flag.
//
//	RR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func RotateRight(n uint8, carry bool) (uint8, Flags) {
	computed := n>>1 | carryBit(carry)<<7
	return computed, registers.NewFlags(computed == 0, false, false, n&types.Bit0 != 0)
}

// ShiftLeftArithmetic shifts n left by one bit into the carry flag.
//
//	SLA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func ShiftLeftArithmetic(n uint8) (uint8, Flags) {
	computed := n << 1
	return computed, registers.NewFlags(computed == 0, false, false, n&types.Bit7 != 0)
}

// ShiftRightArithmetic shifts n right by one bit into the carry flag.
// The most significant bit does not change.
//
//	SRA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func ShiftRightArithmetic(n uint8) (uint8, Flags) {
	computed := n>>1 | n&types.Bit7
	return computed, registers.NewFlags(computed == 0, false, false, n&types.Bit0 != 0)
}

// ShiftRightLogical shifts n right by one bit into the carry flag.
//
//	SRL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func ShiftRightLogical(n uint8) (uint8, Flags) {
	computed := n >> 1
	return computed, registers.NewFlags(computed == 0, false, false, n&types.Bit0 != 0)
}

// Swap exchanges the upper and lower nibbles of n.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N, H, C - Reset.
func Swap(n uint8) (uint8, Flags) {
	computed := n<<4 | n>>4
	return computed, registers.NewFlags(computed == 0, false, false, false)
}

// TestBit tests bit b of n.
//
//	BIT b, n
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func TestBit(b, n uint8, f Flags) Flags {
	return registers.NewFlags(n&types.Bit(b) == 0, false, true, f.C())
}

// SetBit returns n with bit b set. No flags are affected.
func SetBit(b, n uint8) uint8 {
	return n | types.Bit(b)
}

// ResetBit returns n with bit b cleared. No flags are affected.
func ResetBit(b, n uint8) uint8 {
	return n &^ types.Bit(b)
}
