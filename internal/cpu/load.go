package cpu

import (
	"fmt"

	"github.com/thelolagemann/go-lr35902/internal/alu"
	"github.com/thelolagemann/go-lr35902/internal/types/registers"
)

// load8 loads the register or memory operand z into y.
//
//	LD r, r'
//	LD r, (HL)
//	LD (HL), r
//
// The encoding of LD (HL), (HL) is HALT.
func load8(y, z uint8) Instruction {
	if y == 6 && z == 6 {
		return halt
	}

	dst, src := registers.Index(y), registers.Index(z)
	return Instruction{
		name: fmt.Sprintf("LD %s, %s", dst, src),
		fn: func(c *CPU) {
			c.set8(dst, c.get8(src))
		},
	}
}

// loadImmediate8 loads an 8-bit immediate value into r.
//
//	LD r, d8
func loadImmediate8(y, _ uint8) Instruction {
	dst := registers.Index(y)
	return Instruction{
		name: fmt.Sprintf("LD %s, d8", dst),
		fn: func(c *CPU) {
			c.set8(dst, c.readOperand())
		},
	}
}

// loadAdd16 loads a 16-bit immediate value into rr (q = 0), or adds rr
// to HL (q = 1).
//
//	LD rr, d16
//	ADD HL, rr
func loadAdd16(y, _ uint8) Instruction {
	p, q := y>>1, y&1
	if q == 1 {
		return addHL(p)
	}

	return Instruction{
		name: fmt.Sprintf("LD %s, d16", rpNames[p]),
		fn: func(c *CPU) {
			c.setRP(p, c.readOperand16())
		},
	}
}

// loadIndirect moves A to or from the address held in BC, DE or HL,
// with HL post incremented or decremented.
//
//	LD (BC), A    LD A, (BC)
//	LD (DE), A    LD A, (DE)
//	LD (HL+), A   LD A, (HL+)
//	LD (HL-), A   LD A, (HL-)
func loadIndirect(y, _ uint8) Instruction {
	p, q := y>>1, y&1

	operand := [4]string{"(BC)", "(DE)", "(HL+)", "(HL-)"}[p]
	address := func(c *CPU) uint16 {
		switch p {
		case 0:
			return c.BC()
		case 1:
			return c.DE()
		case 2:
			hl := c.HL()
			c.SetHL(hl + 1)
			return hl
		default:
			hl := c.HL()
			c.SetHL(hl - 1)
			return hl
		}
	}

	if q == 0 {
		return Instruction{
			name: fmt.Sprintf("LD %s, A", operand),
			fn: func(c *CPU) {
				c.writeByte(address(c), c.A)
			},
		}
	}
	return Instruction{
		name: fmt.Sprintf("LD A, %s", operand),
		fn: func(c *CPU) {
			c.A = c.readByte(address(c))
		},
	}
}

var (
	// LDH (a8), A
	loadHighA = Instruction{"LDH (a8), A", func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.A)
	}}
	// LDH A, (a8)
	loadAHigh = Instruction{"LDH A, (a8)", func(c *CPU) {
		c.A = c.readByte(0xFF00 + uint16(c.readOperand()))
	}}
	// LD (C), A
	loadCA = Instruction{"LD (C), A", func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.C), c.A)
	}}
	// LD A, (C)
	loadAC = Instruction{"LD A, (C)", func(c *CPU) {
		c.A = c.readByte(0xFF00 + uint16(c.C))
	}}
	// LD (a16), A
	loadMemoryA = Instruction{"LD (a16), A", func(c *CPU) {
		c.writeByte(c.readOperand16(), c.A)
	}}
	// LD A, (a16)
	loadAMemory = Instruction{"LD A, (a16)", func(c *CPU) {
		c.A = c.readByte(c.readOperand16())
	}}
	// LD (a16), SP
	loadMemorySP = Instruction{"LD (a16), SP", func(c *CPU) {
		address := c.readOperand16()
		c.mem.Write16(address, c.SP)
		c.tick()
		c.tick()
	}}
	// LD SP, HL
	loadSPHL = Instruction{"LD SP, HL", func(c *CPU) {
		c.SP = c.HL()
		c.tick()
	}}
	// LD HL, SP+r8
	loadHLSPOffset = Instruction{"LD HL, SP+r8", func(c *CPU) {
		var result uint16
		result, c.F = alu.AddSigned(c.SP, c.readOperand())
		c.SetHL(result)
		c.tick()
	}}
)
