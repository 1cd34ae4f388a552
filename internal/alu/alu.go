// Package alu implements the arithmetic logic unit of the LR35902.
//
// Every primitive is a pure function: it takes its operands (and, where
// the hardware leaves a flag unaffected or consumes the carry, the
// incoming flags) and returns the result together with the complete
// flag set the hardware produces. Nothing is mutated, the CPU applies
// the returned flags to its register file.
package alu

import (
	"github.com/thelolagemann/go-lr35902/internal/types/registers"
)

// Flags is the flag set produced by an operation.
type Flags = registers.Flags

// Op is an 8-bit operation on the accumulator, selected by the y field
// of the 0x80-0xBF block and of the immediate ALU opcodes.
type Op func(a, b uint8, f Flags) (uint8, Flags)

// Ops holds the accumulator operations in opcode order.
var Ops = [8]Op{
	func(a, b uint8, _ Flags) (uint8, Flags) { return Add(a, b) },
	func(a, b uint8, f Flags) (uint8, Flags) { return Adc(a, b, f.C()) },
	func(a, b uint8, _ Flags) (uint8, Flags) { return Sub(a, b) },
	func(a, b uint8, f Flags) (uint8, Flags) { return Sbc(a, b, f.C()) },
	func(a, b uint8, _ Flags) (uint8, Flags) { return And(a, b) },
	func(a, b uint8, _ Flags) (uint8, Flags) { return Xor(a, b) },
	func(a, b uint8, _ Flags) (uint8, Flags) { return Or(a, b) },
	func(a, b uint8, _ Flags) (uint8, Flags) { return a, Compare(a, b) },
}

// OpNames holds the mnemonics of Ops.
var OpNames = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}

// Add adds b to a.
//
//	ADD A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func Add(a, b uint8) (uint8, Flags) {
	return Adc(a, b, false)
}

// Adc adds b and the carry to a.
//
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func Adc(a, b uint8, carry bool) (uint8, Flags) {
	c := carryBit(carry)
	sum := uint16(a) + uint16(b) + uint16(c)
	half := a&0xF + b&0xF + c
	return uint8(sum), registers.NewFlags(uint8(sum) == 0, false, half > 0xF, sum > 0xFF)
}

// Sub subtracts b from a.
//
//	SUB n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func Sub(a, b uint8) (uint8, Flags) {
	return Sbc(a, b, false)
}

// Sbc subtracts b and the carry from a. The flags are derived from the
// operands rather than the wrapped result, so a borrow is reported even
// when b plus the carry overflows a byte.
//
//	SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func Sbc(a, b uint8, carry bool) (uint8, Flags) {
	c := int(carryBit(carry))
	diff := int(a) - int(b) - c
	half := int(a&0xF) - int(b&0xF) - c
	return uint8(diff), registers.NewFlags(uint8(diff) == 0, true, half < 0, diff < 0)
}

// And performs a bitwise AND.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func And(a, b uint8) (uint8, Flags) {
	r := a & b
	return r, registers.NewFlags(r == 0, false, true, false)
}

// Or performs a bitwise OR.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N, H, C - Reset.
func Or(a, b uint8) (uint8, Flags) {
	r := a | b
	return r, registers.NewFlags(r == 0, false, false, false)
}

// Xor performs a bitwise XOR.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N, H, C - Reset.
func Xor(a, b uint8) (uint8, Flags) {
	r := a ^ b
	return r, registers.NewFlags(r == 0, false, false, false)
}

// Compare subtracts b from a, discarding the result.
//
//	CP n
//
// Flags affected:
//
//	Z - Set if a == b.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if a < b.
func Compare(a, b uint8) Flags {
	_, f := Sub(a, b)
	return f
}

// Increment adds 1 to n.
//
//	INC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func Increment(n uint8, f Flags) (uint8, Flags) {
	r := n + 1
	return r, registers.NewFlags(r == 0, false, n&0xF == 0xF, f.C())
}

// Decrement subtracts 1 from n.
//
//	DEC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func Decrement(n uint8, f Flags) (uint8, Flags) {
	r := n - 1
	return r, registers.NewFlags(r == 0, true, n&0xF == 0, f.C())
}

// Add16 adds rr to hl.
//
//	ADD HL, rr
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func Add16(hl, rr uint16, f Flags) (uint16, Flags) {
	sum := uint32(hl) + uint32(rr)
	return uint16(sum), registers.NewFlags(f.Z(), false, hl&0xFFF+rr&0xFFF > 0xFFF, sum > 0xFFFF)
}

// AddSigned adds the signed offset e to sp. The carries are computed
// on the low byte, as an unsigned 8-bit addition.
//
//	ADD SP, e
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func AddSigned(sp uint16, e uint8) (uint16, Flags) {
	result := uint16(int32(sp) + int32(int8(e)))
	return result, registers.NewFlags(false, false, sp&0xF+uint16(e&0xF) > 0xF, sp&0xFF+uint16(e) > 0xFF)
}

// DecimalAdjust corrects a after a BCD addition or subtraction, as
// indicated by the N flag.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the adjustment carried.
func DecimalAdjust(a uint8, f Flags) (uint8, Flags) {
	carry := f.C()
	if !f.N() {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if f.H() || a&0xF > 0x9 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if f.H() {
			a -= 0x06
		}
	}
	return a, registers.NewFlags(a == 0, f.N(), false, carry)
}

// Complement inverts a.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func Complement(a uint8, f Flags) (uint8, Flags) {
	return ^a, registers.NewFlags(f.Z(), true, true, f.C())
}

// SetCarry sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N, H - Reset.
//	C - Set.
func SetCarry(f Flags) Flags {
	return registers.NewFlags(f.Z(), false, false, true)
}

// ComplementCarry inverts the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N, H - Reset.
//	C - Complemented.
func ComplementCarry(f Flags) Flags {
	return registers.NewFlags(f.Z(), false, false, !f.C())
}

func carryBit(carry bool) uint8 {
	if carry {
		return 1
	}
	return 0
}
