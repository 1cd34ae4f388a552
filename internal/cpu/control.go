package cpu

var (
	// NOP
	nop = Instruction{"NOP", func(c *CPU) {}}

	// HALT suspends execution until Resume is called.
	halt = Instruction{"HALT", func(c *CPU) {
		c.mode = ModeHalt
	}}

	// STOP is followed by a padding byte, which is skipped.
	stop = Instruction{"STOP", func(c *CPU) {
		c.PC++
		c.mode = ModeStop
		c.logger.Debugf("STOP at 0x%04X", c.PC-2)
	}}

	// DI clears the IME immediately. Following EI, it executes after the
	// IME has been set, so the IME ends up cleared.
	disableInterrupts = Instruction{"DI", func(c *CPU) {
		c.ime = false
	}}

	// EI sets the IME after the following instruction.
	enableInterrupts = Instruction{"EI", func(c *CPU) {
		c.mode = ModeEnableIME
	}}

	// PREFIX CB fetches the second opcode byte and executes it from the
	// extended table.
	prefixCB = Instruction{"PREFIX CB", func(c *CPU) {
		opcode := c.readOperand()
		if c.profiler != nil {
			c.profiler.Record(opcode, true)
		}
		InstructionSetCB[opcode].fn(c)
	}}
)
