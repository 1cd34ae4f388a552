package cpu

import (
	"fmt"

	"github.com/thelolagemann/go-lr35902/internal/alu"
	"github.com/thelolagemann/go-lr35902/internal/types/registers"
)

// decodeCB returns the instruction for the byte following the 0xCB
// prefix. The x field selects the operation, y the shift or bit index,
// and z the operand.
//
//	x = 0   RLC RRC RL RR SLA SRA SWAP SRL
//	x = 1   BIT y, r
//	x = 2   RES y, r
//	x = 3   SET y, r
func decodeCB(opcode uint8) Instruction {
	x, y, z := opcode>>6, opcode>>3&7, opcode&7
	r := registers.Index(z)

	switch x {
	case 0:
		shift := alu.Shifts[y]
		return Instruction{
			name: fmt.Sprintf("%s %s", alu.ShiftNames[y], r),
			fn: func(c *CPU) {
				var v uint8
				v, c.F = shift(c.get8(r), c.F)
				c.set8(r, v)
			},
		}
	case 1:
		return Instruction{
			name: fmt.Sprintf("BIT %d, %s", y, r),
			fn: func(c *CPU) {
				c.F = alu.TestBit(y, c.get8(r), c.F)
			},
		}
	case 2:
		return Instruction{
			name: fmt.Sprintf("RES %d, %s", y, r),
			fn: func(c *CPU) {
				c.set8(r, alu.ResetBit(y, c.get8(r)))
			},
		}
	default:
		return Instruction{
			name: fmt.Sprintf("SET %d, %s", y, r),
			fn: func(c *CPU) {
				c.set8(r, alu.SetBit(y, c.get8(r)))
			},
		}
	}
}
