package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// timings holds the machine cycles of each base opcode, executed with
// every flag cleared, so NZ and NC branches are taken and Z and C
// branches are not. 0xCB is followed by 0x00 (RLC B).
var timings = [256]uint8{
	//  x0 x1 x2 x3 x4 x5 x6 x7 x8 x9 xA xB xC xD xE xF
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1, // 0x
	1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1, // 1x
	3, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1, // 2x
	3, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1, // 3x
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 4x
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 5x
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 6x
	2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1, // 7x
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 8x
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 9x
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // Ax
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // Bx
	5, 3, 4, 4, 6, 4, 2, 4, 2, 4, 3, 2, 3, 6, 2, 4, // Cx
	5, 3, 4, 1, 6, 4, 2, 4, 2, 4, 3, 1, 3, 1, 2, 4, // Dx
	3, 3, 2, 1, 1, 4, 2, 4, 4, 1, 4, 1, 1, 1, 2, 4, // Ex
	3, 3, 2, 1, 1, 4, 2, 4, 3, 2, 4, 1, 1, 1, 2, 4, // Fx
}

func TestInstructionSet_Complete(t *testing.T) {
	var illegal []uint8
	for i := 0; i < 256; i++ {
		require.NotNil(t, InstructionSet[i].fn, "opcode 0x%02X", i)
		require.NotNil(t, InstructionSetCB[i].fn, "opcode 0xCB 0x%02X", i)
		assert.NotEmpty(t, InstructionSet[i].Name())
		assert.NotEmpty(t, InstructionSetCB[i].Name())

		if InstructionSet[i].Name() == fmt.Sprintf("illegal opcode 0x%02X", i) {
			illegal = append(illegal, uint8(i))
		}
	}

	assert.Equal(t, []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}, illegal)
}

func TestInstructionSet_Names(t *testing.T) {
	for opcode, name := range map[uint8]string{
		0x00: "NOP",
		0x01: "LD BC, d16",
		0x08: "LD (a16), SP",
		0x22: "LD (HL+), A",
		0x3A: "LD A, (HL-)",
		0x31: "LD SP, d16",
		0x39: "ADD HL, SP",
		0x3C: "INC A",
		0x34: "INC (HL)",
		0x40: "LD B, B",
		0x76: "HALT",
		0x7E: "LD A, (HL)",
		0x86: "ADD A, (HL)",
		0x96: "SUB (HL)",
		0xBF: "CP A",
		0xC2: "JP NZ, a16",
		0xC7: "RST 00H",
		0xCB: "PREFIX CB",
		0xD8: "RET C",
		0xD9: "RETI",
		0xE8: "ADD SP, r8",
		0xF1: "POP AF",
		0xF5: "PUSH AF",
		0xFE: "CP d8",
		0xFF: "RST 38H",
	} {
		assert.Equal(t, name, InstructionSet[opcode].Name(), "opcode 0x%02X", opcode)
	}

	for opcode, name := range map[uint8]string{
		0x00: "RLC B",
		0x1F: "RR A",
		0x36: "SWAP (HL)",
		0x7E: "BIT 7, (HL)",
		0x87: "RES 0, A",
		0xFE: "SET 7, (HL)",
	} {
		assert.Equal(t, name, InstructionSetCB[opcode].Name(), "opcode 0xCB 0x%02X", opcode)
	}
}

func TestInstruction_Timings(t *testing.T) {
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		t.Run(fmt.Sprintf("0x%02X %s", opcode, InstructionSet[opcode]), func(t *testing.T) {
			c, _ := newTestCPU(opcode, 0x00, 0x00)
			c.SetHL(0xD000)
			assert.Equal(t, timings[opcode], c.Step())
		})
	}
}

func TestInstructionCB_Timings(t *testing.T) {
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		expected := uint8(2)
		if opcode&7 == 6 {
			expected = 4
			if opcode>>6 == 1 {
				expected = 3
			}
		}

		c, _ := newTestCPU(0xCB, opcode)
		c.SetHL(0xD000)
		assert.Equal(t, expected, c.Step(), "opcode 0xCB 0x%02X %s", opcode, InstructionSetCB[opcode])
		assert.Equal(t, uint16(0xC002), c.PC)
	}
}

func TestInstruction_ConditionalTimings(t *testing.T) {
	type branch struct {
		opcode         uint8
		taken, skipped uint8
	}
	branches := []branch{
		{0x20, 3, 2}, {0x28, 3, 2}, {0x30, 3, 2}, {0x38, 3, 2}, // JR
		{0xC2, 4, 3}, {0xCA, 4, 3}, {0xD2, 4, 3}, {0xDA, 4, 3}, // JP
		{0xC4, 6, 3}, {0xCC, 6, 3}, {0xD4, 6, 3}, {0xDC, 6, 3}, // CALL
		{0xC0, 5, 2}, {0xC8, 5, 2}, {0xD0, 5, 2}, {0xD8, 5, 2}, // RET
	}

	for _, b := range branches {
		t.Run(InstructionSet[b.opcode].Name(), func(t *testing.T) {
			cc := b.opcode >> 3 & 3

			for _, taken := range []bool{true, false} {
				c, _ := newTestCPU(b.opcode, 0x00, 0xD0)
				for _, f := range []uint8{0x00, 0x10, 0x80, 0x90} {
					c.SetAF(uint16(f))
					if c.condition(cc) == taken {
						break
					}
				}
				require.Equal(t, taken, c.condition(cc))

				if taken {
					assert.Equal(t, b.taken, c.Step())
				} else {
					assert.Equal(t, b.skipped, c.Step())
				}
			}
		})
	}
}
