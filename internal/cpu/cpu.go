package cpu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/go-lr35902/internal/mmu"
	"github.com/thelolagemann/go-lr35902/internal/types"
	"github.com/thelolagemann/go-lr35902/internal/types/registers"
	"github.com/thelolagemann/go-lr35902/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU, in T-cycles per second.
	// Step reports machine cycles, each of which is 4 T-cycles.
	ClockSpeed = 4194304
	// StateSize is the number of bytes Save appends to a State.
	StateSize = 14
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is entered by HALT, and left when Resume is called.
	ModeHalt
	// ModeStop is entered by STOP, and left when Resume is called.
	ModeStop
	// ModeEnableIME is entered by EI. The IME is set before the next
	// instruction executes, so that it takes effect after it.
	ModeEnableIME
	// ModeLocked is entered by executing an illegal opcode. The CPU
	// hangs until it is reset.
	ModeLocked
)

// CPU represents the LR35902 core. It is responsible for fetching,
// decoding and executing instructions against a Memory.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	registers.Registers

	mem      mmu.Memory
	logger   log.Logger
	profiler Profiler

	ime         bool
	mode        mode
	currentTick uint8

	opts []Opt
}

// Profiler is notified of every opcode the CPU executes. Opcodes
// following the 0xCB prefix are reported with cb set, after the prefix
// itself.
type Profiler interface {
	Record(opcode uint8, cb bool)
}

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// WithLogger sets the logger used to report STOP and lock ups.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.logger = l
	}
}

// WithProfiler reports every executed opcode to p.
func WithProfiler(p Profiler) Opt {
	return func(c *CPU) {
		c.profiler = p
	}
}

// WithPostBootState sets the registers to the values the DMG boot ROM
// leaves behind, so that a program can be run without one.
func WithPostBootState() Opt {
	return func(c *CPU) {
		c.SetAF(0x01B0)
		c.SetBC(0x0013)
		c.SetDE(0x00D8)
		c.SetHL(0x014D)
		c.SP = 0xFFFE
		c.PC = 0x0100
	}
}

// WithProgramCounter sets the address of the first instruction.
func WithProgramCounter(pc uint16) Opt {
	return func(c *CPU) {
		c.PC = pc
	}
}

// WithStackPointer sets the initial stack pointer.
func WithStackPointer(sp uint16) Opt {
	return func(c *CPU) {
		c.SP = sp
	}
}

// New creates a new CPU executing against mem. Every register is
// cleared, and the IME is set.
func New(mem mmu.Memory, opts ...Opt) *CPU {
	c := &CPU{
		mem:  mem,
		opts: opts,
	}
	c.Reset()
	return c
}

var _ types.Resettable = (*CPU)(nil)

// Reset returns the CPU to its power-on state and reapplies the options
// it was created with. It is the only way to leave ModeLocked.
func (c *CPU) Reset() {
	*c = CPU{
		mem:    c.mem,
		logger: log.NewNullLogger(),
		ime:    true,
		opts:   c.opts,
	}
	for _, opt := range c.opts {
		opt(c)
	}
}

// Memory returns the memory the CPU executes against.
func (c *CPU) Memory() mmu.Memory {
	return c.mem
}

// IME returns the state of the interrupt master enable latch.
func (c *CPU) IME() bool {
	return c.ime
}

// Mode returns the current CPU mode.
func (c *CPU) Mode() mode {
	return c.mode
}

// Halted returns true if the CPU is waiting in HALT or STOP.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalt || c.mode == ModeStop
}

// Resume wakes the CPU from HALT or STOP. It is the hook for an
// interrupt controller to call once an interrupt is pending; it has no
// effect in any other mode.
func (c *CPU) Resume() {
	if c.Halted() {
		c.mode = ModeNormal
	}
}

// Step executes a single instruction and returns the number of
// machine cycles it took. While halted, stopped or locked, no
// instruction is fetched and a single cycle elapses.
func (c *CPU) Step() uint8 {
	// reset tick counter
	c.currentTick = 0

	switch c.mode {
	case ModeNormal:
		c.runInstruction(c.readInstruction())
	case ModeEnableIME:
		c.ime = true
		c.mode = ModeNormal

		c.runInstruction(c.readInstruction())
	case ModeHalt, ModeStop, ModeLocked:
		c.tick()
	}

	return c.currentTick
}

func (c *CPU) runInstruction(opcode uint8) {
	if c.profiler != nil {
		c.profiler.Record(opcode, false)
	}
	InstructionSet[opcode].fn(c)
}

// tick advances the CPU by one machine cycle.
func (c *CPU) tick() {
	c.currentTick++
}

// readInstruction reads the next opcode from memory.
func (c *CPU) readInstruction() uint8 {
	c.tick()
	value := c.mem.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand from memory. The same as
// readInstruction, kept apart for readability of the instructions.
func (c *CPU) readOperand() uint8 {
	c.tick()
	value := c.mem.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little endian 16-bit operand.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	c.tick()
	return c.mem.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.tick()
	c.mem.Write(addr, val)
}

// get8 returns the operand selected by n, reading memory at HL for
// registers.IndirectHL.
func (c *CPU) get8(n registers.Name) uint8 {
	if n == registers.IndirectHL {
		return c.readByte(c.HL())
	}
	return c.Get(n)
}

// set8 stores value in the operand selected by n.
func (c *CPU) set8(n registers.Name, value uint8) {
	if n == registers.IndirectHL {
		c.writeByte(c.HL(), value)
		return
	}
	c.Set(n, value)
}

var _ types.Stater = (*CPU)(nil)

// ErrInvalidState is returned by Restore for a truncated or corrupt
// snapshot.
var ErrInvalidState = errors.New("invalid CPU state")

// Restore loads the CPU from s like Load, but validates the snapshot
// first. The CPU is left untouched when an error is returned.
func (c *CPU) Restore(s *types.State) error {
	if n := s.Remaining(); n < StateSize {
		return fmt.Errorf("%w: %d bytes, need %d", ErrInvalidState, n, StateSize)
	}

	restored := *c
	restored.Load(s)
	if restored.mode > ModeLocked {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidState, restored.mode)
	}
	*c = restored
	return nil
}

func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.SetF(s.Read8())
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.mode = s.Read8()
	c.ime = s.ReadBool()
}

func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(uint8(c.F))
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.Write8(c.mode)
	s.WriteBool(c.ime)
}
