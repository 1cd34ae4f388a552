package types

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
)

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}

// State represents a snapshot of the machine. Components append their
// fields in a fixed order when saving, and consume them in the same
// order when loading.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// ResetPosition rewinds the read position, allowing the state to be
// read from the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

func (s *State) Read8() uint8 {
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read16() uint16 {
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) ReadBool() bool {
	value := s.raw[s.readPosition] != 0
	s.readPosition++
	return value
}

func (s *State) ReadData(p []byte) {
	copy(p, s.raw[s.readPosition:])
	s.readPosition += len(p)
}

// Remaining returns the number of bytes left to read.
func (s *State) Remaining() int {
	return len(s.raw) - s.readPosition
}

func (s *State) Bytes() []byte {
	return s.raw
}

// Hash returns a digest of the state, which can be used to compare
// two runs without storing their snapshots.
func (s *State) Hash() uint64 {
	return xxhash.Sum64(s.raw)
}

// SaveToFile writes the state to filename. Files with a .br extension
// are brotli compressed.
func (s *State) SaveToFile(filename string) error {
	data := s.raw
	if filepath.Ext(filename) == ".br" {
		var buf bytes.Buffer
		w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
		if _, err := w.Write(s.raw); err != nil {
			return fmt.Errorf("compressing state: %w", err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("compressing state: %w", err)
		}
		data = buf.Bytes()
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadStateFile reads a state written by SaveToFile.
func LoadStateFile(filename string) (*State, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	if filepath.Ext(filename) == ".br" {
		data, err = io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("decompressing state %s: %w", filename, err)
		}
	}

	return StateFromBytes(data), nil
}
