package cpu

import (
	"fmt"
)

// Instruction represents a single instruction of the
// CPU.
type Instruction struct {
	name string     // name of the instruction
	fn   func(*CPU) // fn called when executing the instruction
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

func (i Instruction) String() string {
	return i.name
}

var (
	// InstructionSet holds the 256 base instructions, indexed by opcode.
	InstructionSet [256]Instruction
	// InstructionSetCB holds the 256 instructions following the 0xCB
	// prefix, indexed by the second opcode byte.
	InstructionSetCB [256]Instruction
)

func init() {
	for i := 0; i < 256; i++ {
		InstructionSet[i] = decode(uint8(i))
		InstructionSetCB[i] = decodeCB(uint8(i))
	}

	// every opcode must be covered by exactly one rule of the grids, a
	// gap here is a defect in the decoder itself
	for i := 0; i < 256; i++ {
		if InstructionSet[i].fn == nil {
			panic(fmt.Sprintf("undecoded opcode 0x%02X", i))
		}
		if InstructionSetCB[i].fn == nil {
			panic(fmt.Sprintf("undecoded opcode 0xCB 0x%02X", i))
		}
	}
}

// illegalOpcode creates an instruction for one of the 11 opcodes with
// no defined behaviour. Executing one hangs the CPU.
func illegalOpcode(opcode uint8) Instruction {
	return Instruction{
		name: fmt.Sprintf("illegal opcode 0x%02X", opcode),
		fn: func(c *CPU) {
			c.logger.Errorf("illegal opcode 0x%02X at 0x%04X, locking up", opcode, c.PC-1)
			c.mode = ModeLocked
		},
	}
}
