package cpu

import (
	"fmt"
)

// push pushes a 16 bit value onto the stack, high byte first.
func (c *CPU) push(value uint16) {
	c.tick()
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// pop pops a 16 bit value off the stack.
func (c *CPU) pop() uint16 {
	value := c.mem.Read16(c.SP)
	c.tick()
	c.tick()
	c.SP += 2
	return value
}

// jumpRelative adds the signed offset e to PC.
func (c *CPU) jumpRelative(e uint8) {
	c.PC = uint16(int16(c.PC) + int16(int8(e)))
	c.tick()
}

// jumpAbsolute sets PC to address.
func (c *CPU) jumpAbsolute(address uint16) {
	c.PC = address
	c.tick()
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
func (c *CPU) call(address uint16) {
	c.push(c.PC)
	c.PC = address
}

// ret pops the return address off the stack into PC.
func (c *CPU) ret() {
	c.PC = c.pop()
	c.tick()
}

// misc decodes the first column of the table.
//
//	NOP
//	LD (a16), SP
//	STOP
//	JR r8
//	JR cc, r8
func misc(y, _ uint8) Instruction {
	switch y {
	case 0:
		return nop
	case 1:
		return loadMemorySP
	case 2:
		return stop
	case 3:
		return Instruction{"JR r8", func(c *CPU) {
			c.jumpRelative(c.readOperand())
		}}
	}

	cc := y - 4
	return Instruction{
		name: fmt.Sprintf("JR %s, r8", conditionNames[cc]),
		fn: func(c *CPU) {
			e := c.readOperand()
			if c.condition(cc) {
				c.jumpRelative(e)
			}
		},
	}
}

// returnHigh decodes RET cc and the high page loads.
//
//	RET cc
//	LDH (a8), A
//	ADD SP, r8
//	LDH A, (a8)
//	LD HL, SP+r8
func returnHigh(y, _ uint8) Instruction {
	switch y {
	case 4:
		return loadHighA
	case 5:
		return addSPOffset
	case 6:
		return loadAHigh
	case 7:
		return loadHLSPOffset
	}

	return Instruction{
		name: fmt.Sprintf("RET %s", conditionNames[y]),
		fn: func(c *CPU) {
			c.tick()
			if c.condition(y) {
				c.ret()
			}
		},
	}
}

// popMisc decodes POP rr (q = 0) and the unconditional returns.
//
//	POP rr
//	RET
//	RETI
//	JP HL
//	LD SP, HL
func popMisc(y, _ uint8) Instruction {
	p, q := y>>1, y&1
	if q == 0 {
		pair := rp2(p)
		return Instruction{
			name: fmt.Sprintf("POP %s", rp2Names[p]),
			fn: func(c *CPU) {
				c.SetPair(pair, c.pop())
			},
		}
	}

	switch p {
	case 0:
		return Instruction{"RET", (*CPU).ret}
	case 1:
		return Instruction{"RETI", func(c *CPU) {
			c.ret()
			c.ime = true
		}}
	case 2:
		return Instruction{"JP HL", func(c *CPU) {
			c.PC = c.HL()
		}}
	default:
		return loadSPHL
	}
}

// jumpHigh decodes JP cc and the remaining accumulator loads.
//
//	JP cc, a16
//	LD (C), A
//	LD (a16), A
//	LD A, (C)
//	LD A, (a16)
func jumpHigh(y, _ uint8) Instruction {
	switch y {
	case 4:
		return loadCA
	case 5:
		return loadMemoryA
	case 6:
		return loadAC
	case 7:
		return loadAMemory
	}

	return Instruction{
		name: fmt.Sprintf("JP %s, a16", conditionNames[y]),
		fn: func(c *CPU) {
			address := c.readOperand16()
			if c.condition(y) {
				c.jumpAbsolute(address)
			}
		},
	}
}

// jumpMisc decodes JP a16, the 0xCB prefix and the interrupt latch.
//
//	JP a16
//	PREFIX CB
//	DI
//	EI
func jumpMisc(y, z uint8) Instruction {
	switch y {
	case 0:
		return Instruction{"JP a16", func(c *CPU) {
			c.jumpAbsolute(c.readOperand16())
		}}
	case 1:
		return prefixCB
	case 6:
		return disableInterrupts
	case 7:
		return enableInterrupts
	}
	return illegalOpcode(0xC0 | y<<3 | z)
}

// callCond decodes CALL cc, a16. The upper half of the column is
// illegal.
func callCond(y, z uint8) Instruction {
	if y > 3 {
		return illegalOpcode(0xC0 | y<<3 | z)
	}

	return Instruction{
		name: fmt.Sprintf("CALL %s, a16", conditionNames[y]),
		fn: func(c *CPU) {
			address := c.readOperand16()
			if c.condition(y) {
				c.call(address)
			}
		},
	}
}

// pushCall decodes PUSH rr (q = 0) and CALL a16.
//
//	PUSH rr
//	CALL a16
func pushCall(y, z uint8) Instruction {
	p, q := y>>1, y&1
	if q == 0 {
		pair := rp2(p)
		return Instruction{
			name: fmt.Sprintf("PUSH %s", rp2Names[p]),
			fn: func(c *CPU) {
				c.push(c.Pair(pair))
			},
		}
	}
	if p == 0 {
		return Instruction{"CALL a16", func(c *CPU) {
			c.call(c.readOperand16())
		}}
	}
	return illegalOpcode(0xC0 | y<<3 | z)
}

// restart calls the fixed address y*8.
//
//	RST n
func restart(y, _ uint8) Instruction {
	address := uint16(y) * 8
	return Instruction{
		name: fmt.Sprintf("RST %02XH", address),
		fn: func(c *CPU) {
			c.call(address)
		},
	}
}
