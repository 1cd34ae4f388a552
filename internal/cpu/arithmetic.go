package cpu

import (
	"fmt"

	"github.com/thelolagemann/go-lr35902/internal/alu"
	"github.com/thelolagemann/go-lr35902/internal/types/registers"
)

// aluRegister applies the accumulator operation y to the register or
// memory operand z.
//
//	ADD A, r   ADC A, r   SUB r   SBC A, r
//	AND r      XOR r      OR r    CP r
func aluRegister(y, z uint8) Instruction {
	op, src := alu.Ops[y], registers.Index(z)
	return Instruction{
		name: fmt.Sprintf("%s %s", alu.OpNames[y], src),
		fn: func(c *CPU) {
			c.A, c.F = op(c.A, c.get8(src), c.F)
		},
	}
}

// aluImmediate applies the accumulator operation y to an 8-bit
// immediate value.
func aluImmediate(y, _ uint8) Instruction {
	op := alu.Ops[y]
	return Instruction{
		name: fmt.Sprintf("%s d8", alu.OpNames[y]),
		fn: func(c *CPU) {
			c.A, c.F = op(c.A, c.readOperand(), c.F)
		},
	}
}

// increment8 increments the register or memory operand y.
//
//	INC r
//	INC (HL)
func increment8(y, _ uint8) Instruction {
	r := registers.Index(y)
	return Instruction{
		name: fmt.Sprintf("INC %s", r),
		fn: func(c *CPU) {
			var v uint8
			v, c.F = alu.Increment(c.get8(r), c.F)
			c.set8(r, v)
		},
	}
}

// decrement8 decrements the register or memory operand y.
//
//	DEC r
//	DEC (HL)
func decrement8(y, _ uint8) Instruction {
	r := registers.Index(y)
	return Instruction{
		name: fmt.Sprintf("DEC %s", r),
		fn: func(c *CPU) {
			var v uint8
			v, c.F = alu.Decrement(c.get8(r), c.F)
			c.set8(r, v)
		},
	}
}

// incDec16 increments (q = 0) or decrements (q = 1) register pair p.
// No flags are affected.
//
//	INC rr
//	DEC rr
func incDec16(y, _ uint8) Instruction {
	p, q := y>>1, y&1
	if q == 0 {
		return Instruction{
			name: fmt.Sprintf("INC %s", rpNames[p]),
			fn: func(c *CPU) {
				c.setRP(p, c.rp(p)+1)
				c.tick()
			},
		}
	}
	return Instruction{
		name: fmt.Sprintf("DEC %s", rpNames[p]),
		fn: func(c *CPU) {
			c.setRP(p, c.rp(p)-1)
			c.tick()
		},
	}
}

// addHL adds register pair p to HL.
//
//	ADD HL, rr
func addHL(p uint8) Instruction {
	return Instruction{
		name: fmt.Sprintf("ADD HL, %s", rpNames[p]),
		fn: func(c *CPU) {
			var sum uint16
			sum, c.F = alu.Add16(c.HL(), c.rp(p), c.F)
			c.SetHL(sum)
			c.tick()
		},
	}
}

// ADD SP, r8
var addSPOffset = Instruction{"ADD SP, r8", func(c *CPU) {
	c.SP, c.F = alu.AddSigned(c.SP, c.readOperand())
	c.tick()
	c.tick()
}}

// accumulatorMisc decodes the rotates on A and the flag operations.
// The accumulator rotates differ from their 0xCB counterparts in that
// Z is always reset.
//
//	RLCA RRCA RLA RRA DAA CPL SCF CCF
func accumulatorMisc(y, _ uint8) Instruction {
	switch y {
	case 0, 1, 2, 3:
		rotate := alu.Shifts[y]
		return Instruction{
			name: alu.ShiftNames[y] + "A",
			fn: func(c *CPU) {
				var f registers.Flags
				c.A, f = rotate(c.A, c.F)
				c.F = f.With(registers.FlagZero, false)
			},
		}
	case 4:
		return Instruction{"DAA", func(c *CPU) {
			c.A, c.F = alu.DecimalAdjust(c.A, c.F)
		}}
	case 5:
		return Instruction{"CPL", func(c *CPU) {
			c.A, c.F = alu.Complement(c.A, c.F)
		}}
	case 6:
		return Instruction{"SCF", func(c *CPU) {
			c.F = alu.SetCarry(c.F)
		}}
	default:
		return Instruction{"CCF", func(c *CPU) {
			c.F = alu.ComplementCarry(c.F)
		}}
	}
}
