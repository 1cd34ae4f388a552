package mmu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/go-lr35902/internal/types"
	"github.com/thelolagemann/go-lr35902/pkg/log"
)

func TestMMU_ROMIsReadOnly(t *testing.T) {
	var buf bytes.Buffer
	m := New(WithROM([]byte{0x3C, 0x00}), WithLogger(log.NewWriter(&buf)))

	m.Write(0x0000, 0xFF)
	m.Write(0x7FFF, 0xFF)
	assert.Equal(t, uint8(0x3C), m.Read(0x0000))
	assert.Equal(t, uint8(0x00), m.Read(0x7FFF))
	assert.Contains(t, buf.String(), "0x7FFF")

	m.Write(0x8000, 0x42)
	m.Write(0xFFFF, 0x24)
	assert.Equal(t, uint8(0x42), m.Read(0x8000))
	assert.Equal(t, uint8(0x24), m.Read(0xFFFF))
}

func TestMMU_Words(t *testing.T) {
	m := New()
	m.Write16(0xC000, 0xBEEF)
	assert.Equal(t, uint8(0xEF), m.Read(0xC000), "low byte first")
	assert.Equal(t, uint8(0xBE), m.Read(0xC001))
	assert.Equal(t, uint16(0xBEEF), m.Read16(0xC000))

	// straddling the ROM boundary only writes the high byte
	m.Write16(0x7FFF, 0x1234)
	assert.Equal(t, uint16(0x1200), m.Read16(0x7FFF))

	// the high byte wraps around to 0x0000
	m.LoadAt(0x0000, []byte{0xAB})
	m.Write(0xFFFF, 0xCD)
	assert.Equal(t, uint16(0xABCD), m.Read16(0xFFFF))
}

func TestMMU_LoadAt(t *testing.T) {
	m := New()
	n := m.LoadAt(0xFFFE, []byte{1, 2, 3, 4})
	assert.Equal(t, 2, n, "data past 0xFFFF is truncated")
	assert.Equal(t, uint8(2), m.Read(0xFFFF))
}

func TestMMU_State(t *testing.T) {
	m := New(WithROM([]byte{0xDE, 0xAD}))
	m.Write(0xC123, 0x99)

	s := types.NewState()
	m.Save(s)
	require.Equal(t, 0x10000, len(s.Bytes()))

	restored := New()
	restored.Load(s)
	assert.Equal(t, m.raw, restored.raw)
}

var _ Memory = (*MMU)(nil)
