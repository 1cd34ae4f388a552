package registers

import "fmt"

// Register represents an 8-bit CPU register. The CPU has 8 registers:
// A, B, C, D, E, H, L and F. The F register is special in that it is
// used to hold the flags, and only the upper 4 bits are used. The
// lower 4 bits are always 0, so F is modelled by the Flags type rather
// than a plain Register.
type Register = uint8

// Name identifies one of the operands selectable by the 3-bit register
// field of an opcode. The values follow the hardware encoding, so a
// Name can be built directly from the field with Index.
type Name uint8

const (
	B Name = iota
	C
	D
	E
	H
	L
	// IndirectHL is not a register, it denotes the byte in memory at the
	// address held by HL. Callers must special case it.
	IndirectHL
	A
)

var names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (n Name) String() string {
	if n > A {
		return fmt.Sprintf("Name(%d)", uint8(n))
	}
	return names[n]
}

// Index decodes the 3-bit register field used throughout the opcode
// space. Only the lower 3 bits of i are significant; anything above
// them is an invariant violation.
func Index(i uint8) Name {
	if i > 7 {
		panic(fmt.Sprintf("invalid register index: %d", i))
	}
	return Name(i)
}

// Pair identifies a 16-bit register pair.
type Pair uint8

const (
	BC Pair = iota
	DE
	HL
	AF
)

func (p Pair) String() string {
	switch p {
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case AF:
		return "AF"
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// Registers holds the CPU register file. The zero value is the
// power-on state, with every register cleared.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register
	F Flags
}

// Get returns the value of the named 8-bit register.
func (r *Registers) Get(n Name) Register {
	switch n {
	case B:
		return r.B
	case C:
		return r.C
	case D:
		return r.D
	case E:
		return r.E
	case H:
		return r.H
	case L:
		return r.L
	case A:
		return r.A
	}
	panic(fmt.Sprintf("invalid register index: %d", n))
}

// Set sets the value of the named 8-bit register.
func (r *Registers) Set(n Name, value Register) {
	switch n {
	case B:
		r.B = value
	case C:
		r.C = value
	case D:
		r.D = value
	case E:
		r.E = value
	case H:
		r.H = value
	case L:
		r.L = value
	case A:
		r.A = value
	default:
		panic(fmt.Sprintf("invalid register index: %d", n))
	}
}

// Pair returns the value of the register pair as an uint16, with the
// high register in the upper byte.
func (r *Registers) Pair(p Pair) uint16 {
	switch p {
	case BC:
		return r.BC()
	case DE:
		return r.DE()
	case HL:
		return r.HL()
	case AF:
		return r.AF()
	}
	panic(fmt.Sprintf("invalid register pair: %d", p))
}

// SetPair splits value across the two registers of the pair.
func (r *Registers) SetPair(p Pair, value uint16) {
	switch p {
	case BC:
		r.SetBC(value)
	case DE:
		r.SetDE(value)
	case HL:
		r.SetHL(value)
	case AF:
		r.SetAF(value)
	default:
		panic(fmt.Sprintf("invalid register pair: %d", p))
	}
}

func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F) }
func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// SetAF sets A and F. The lower nibble of F can't be written and
// always reads back as 0.
func (r *Registers) SetAF(value uint16) {
	r.A = uint8(value >> 8)
	r.F = Flags(value) & flagMask
}

func (r *Registers) SetBC(value uint16) { r.B, r.C = uint8(value>>8), uint8(value) }
func (r *Registers) SetDE(value uint16) { r.D, r.E = uint8(value>>8), uint8(value) }
func (r *Registers) SetHL(value uint16) { r.H, r.L = uint8(value>>8), uint8(value) }

// GetF returns the F register as a whole byte.
func (r *Registers) GetF() Register {
	return Register(r.F)
}

// SetF sets the F register as a whole byte. The lower nibble can't be
// written and always reads back as 0.
func (r *Registers) SetF(value Register) {
	r.F = Flags(value) & flagMask
}

// Flag returns true if the given flag is set.
func (r *Registers) Flag(f Flags) bool {
	return r.F.Has(f)
}

// SetFlag sets or clears the given flag.
func (r *Registers) SetFlag(f Flags, set bool) {
	r.F = r.F.With(f, set)
}
