package cpu

import (
	"github.com/thelolagemann/go-lr35902/internal/types/registers"
)

// builder produces the instruction for the y and z fields of an opcode
// within one cell of the decode grid.
type builder func(y, z uint8) Instruction

// grid is the first level of the decoder, indexed by the x field
// (bits 7-6) and then the z field (bits 2-0) of the opcode. Each cell
// resolves the y field (bits 5-3) itself.
var grid = [4][8]builder{
	// 0x00 - 0x3F
	{
		misc,            // NOP, LD (a16), SP, STOP, JR
		loadAdd16,       // LD rr, d16 / ADD HL, rr
		loadIndirect,    // LD (rr), A / LD A, (rr)
		incDec16,        // INC rr / DEC rr
		increment8,      // INC r
		decrement8,      // DEC r
		loadImmediate8,  // LD r, d8
		accumulatorMisc, // RLCA, RRCA, RLA, RRA, DAA, CPL, SCF, CCF
	},
	// 0x40 - 0x7F
	{load8, load8, load8, load8, load8, load8, load8, load8},
	// 0x80 - 0xBF
	{aluRegister, aluRegister, aluRegister, aluRegister, aluRegister, aluRegister, aluRegister, aluRegister},
	// 0xC0 - 0xFF
	{
		returnHigh,   // RET cc, LDH (a8), A, ADD SP, r8, LDH A, (a8), LD HL, SP+r8
		popMisc,      // POP rr, RET, RETI, JP HL, LD SP, HL
		jumpHigh,     // JP cc, a16, LD (C), A, LD (a16), A, LD A, (C), LD A, (a16)
		jumpMisc,     // JP a16, PREFIX CB, DI, EI
		callCond,     // CALL cc, a16
		pushCall,     // PUSH rr, CALL a16
		aluImmediate, // ALU A, d8
		restart,      // RST
	},
}

// decode returns the instruction for a base opcode.
func decode(opcode uint8) Instruction {
	x, y, z := opcode>>6, opcode>>3&7, opcode&7
	return grid[x][z](y, z)
}

// the 16-bit operands, indexed by the p field (bits 5-4). Index 3
// selects SP in the load and arithmetic grid (rp) and AF in the stack
// grid (rp2).
var (
	rpNames  = [4]string{"BC", "DE", "HL", "SP"}
	rp2Names = [4]string{"BC", "DE", "HL", "AF"}
)

// rp returns the value of register pair p from the load/arithmetic table.
func (c *CPU) rp(p uint8) uint16 {
	if p == 3 {
		return c.SP
	}
	return c.Pair(registers.Pair(p))
}

// setRP sets register pair p from the load/arithmetic table.
func (c *CPU) setRP(p uint8, value uint16) {
	if p == 3 {
		c.SP = value
		return
	}
	c.SetPair(registers.Pair(p), value)
}

// rp2 returns the register pair p from the stack table.
func rp2(p uint8) registers.Pair {
	return [4]registers.Pair{registers.BC, registers.DE, registers.HL, registers.AF}[p]
}

var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

// condition reports whether the branch condition cc holds.
func (c *CPU) condition(cc uint8) bool {
	switch cc & 3 {
	case 0:
		return !c.F.Z()
	case 1:
		return c.F.Z()
	case 2:
		return !c.F.C()
	default:
		return c.F.C()
	}
}
