package types

const (
	Bit0 = 1 << iota // 0b0000_0001
	Bit1             // 0b0000_0010
	Bit2             // 0b0000_0100
	Bit3             // 0b0000_1000
	Bit4             // 0b0001_0000
	Bit5             // 0b0010_0000
	Bit6             // 0b0100_0000
	Bit7             // 0b1000_0000
)

// Bit returns the mask for bit index i of a byte, as encoded by the
// 3-bit field of the BIT, RES and SET instructions.
func Bit(i uint8) uint8 {
	return 1 << (i & 7)
}
