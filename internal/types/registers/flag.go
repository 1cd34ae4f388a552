package registers

import (
	"strings"

	"github.com/thelolagemann/go-lr35902/internal/types"
)

// Flags is the content of the F register. Each flag occupies a fixed
// bit in the upper nibble, and the lower nibble is always 0.
type Flags uint8

const (
	FlagCarry     Flags = types.Bit4
	FlagHalfCarry Flags = types.Bit5
	FlagSubtract  Flags = types.Bit6
	FlagZero      Flags = types.Bit7

	flagMask = FlagZero | FlagSubtract | FlagHalfCarry | FlagCarry
)

// NewFlags builds a complete flag set from the four flag values.
func NewFlags(z, n, h, c bool) Flags {
	var f Flags
	if z {
		f |= FlagZero
	}
	if n {
		f |= FlagSubtract
	}
	if h {
		f |= FlagHalfCarry
	}
	if c {
		f |= FlagCarry
	}
	return f
}

// Has returns true if every flag in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// With returns f with the flags in mask set or cleared.
func (f Flags) With(mask Flags, set bool) Flags {
	if set {
		return (f | mask) & flagMask
	}
	return f &^ mask & flagMask
}

// Z, N, H and C are shorthands for testing a single flag.
func (f Flags) Z() bool { return f&FlagZero != 0 }
func (f Flags) N() bool { return f&FlagSubtract != 0 }
func (f Flags) H() bool { return f&FlagHalfCarry != 0 }
func (f Flags) C() bool { return f&FlagCarry != 0 }

// String renders the flags the way most debuggers do, e.g. "Z-H-".
func (f Flags) String() string {
	var b strings.Builder
	for _, flag := range []struct {
		mask Flags
		name byte
	}{{FlagZero, 'Z'}, {FlagSubtract, 'N'}, {FlagHalfCarry, 'H'}, {FlagCarry, 'C'}} {
		if f.Has(flag.mask) {
			b.WriteByte(flag.name)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
