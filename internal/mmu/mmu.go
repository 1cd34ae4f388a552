// Package mmu provides the memory the CPU executes against. The CPU only
// sees the Memory interface; MMU is a flat 64kB implementation of it,
// which treats the lower half of the address space as read-only ROM.
package mmu

import (
	"github.com/thelolagemann/go-lr35902/internal/types"
	"github.com/thelolagemann/go-lr35902/pkg/log"
)

const (
	// ROMEnd is the first address past the read-only region.
	ROMEnd = 0x8000
	// StateSize is the number of bytes Save appends to a State.
	StateSize = 0x10000
)

// Memory is the interface the CPU uses to access the address space.
// Word accesses are little endian and built from the byte accessors.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Read16(address uint16) uint16
	Write16(address uint16, value uint16)
}

// MMU is a byte addressable 64kB address space. Writes to the ROM
// region (0x0000 - 0x7FFF) are ignored, everything else is RAM.
type MMU struct {
	// 64kB address space
	raw [0x10000]uint8

	Log log.Logger
}

// Opt is a function that modifies an MMU instance.
type Opt func(m *MMU)

// WithLogger sets the logger used to report ignored writes.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// WithROM loads rom at 0x0000.
func WithROM(rom []byte) Opt {
	return func(m *MMU) {
		m.LoadAt(0x0000, rom)
	}
}

// New returns a new MMU, with every byte cleared.
func New(opts ...Opt) *MMU {
	m := &MMU{
		Log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoadAt copies data into memory starting at address, bypassing the ROM
// write protection. Data running past 0xFFFF is truncated. It returns
// the number of bytes copied.
func (m *MMU) LoadAt(address uint16, data []byte) int {
	return copy(m.raw[address:], data)
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write writes value to the given address, unless the address
// lies within ROM.
func (m *MMU) Write(address uint16, value uint8) {
	if address < ROMEnd {
		m.Log.Debugf("ignored write of 0x%02X to ROM address 0x%04X", value, address)
		return
	}
	m.raw[address] = value
}

// Read16 returns the little endian word at address. The high byte is
// read from address+1, wrapping at the top of memory.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 writes value as a little endian word at address.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

var _ types.Stater = (*MMU)(nil)

func (m *MMU) Load(s *types.State) {
	s.ReadData(m.raw[:])
}

func (m *MMU) Save(s *types.State) {
	s.WriteData(m.raw[:])
}
