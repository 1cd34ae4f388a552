// Package profile counts the opcodes executed by the CPU, and renders
// the most frequent of them as a bar chart.
package profile

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/thelolagemann/go-lr35902/internal/cpu"
)

// ErrNoOpcodes is returned when plotting a histogram with nothing to show.
var ErrNoOpcodes = errors.New("no opcodes recorded")

// Entry is the execution count of a single opcode.
type Entry struct {
	Opcode uint8
	CB     bool
	Name   string
	Count  uint64
}

func (e Entry) String() string {
	if e.CB {
		return fmt.Sprintf("0xCB 0x%02X %s", e.Opcode, e.Name)
	}
	return fmt.Sprintf("0x%02X %s", e.Opcode, e.Name)
}

// Histogram counts executed opcodes. The zero value is ready to use.
type Histogram struct {
	base, cb [256]uint64
}

var _ cpu.Profiler = (*Histogram)(nil)

// Record counts one execution of opcode.
func (h *Histogram) Record(opcode uint8, cb bool) {
	if cb {
		h.cb[opcode]++
	} else {
		h.base[opcode]++
	}
}

// Count returns the number of times opcode was executed.
func (h *Histogram) Count(opcode uint8, cb bool) uint64 {
	if cb {
		return h.cb[opcode]
	}
	return h.base[opcode]
}

// Total returns the number of opcodes recorded, counting the 0xCB
// prefix and the opcode following it separately.
func (h *Histogram) Total() uint64 {
	var total uint64
	for i := 0; i < 256; i++ {
		total += h.base[i] + h.cb[i]
	}
	return total
}

// Top returns the n most executed opcodes, most frequent first. Ties
// are broken by opcode, with the base table before the extended one.
// Opcodes that were never executed are not returned, nor is anything
// for n < 1.
func (h *Histogram) Top(n int) []Entry {
	if n < 1 {
		return nil
	}

	var entries []Entry
	for i := 0; i < 256; i++ {
		if h.base[i] > 0 {
			entries = append(entries, Entry{uint8(i), false, cpu.InstructionSet[i].Name(), h.base[i]})
		}
	}
	for i := 0; i < 256; i++ {
		if h.cb[i] > 0 {
			entries = append(entries, Entry{uint8(i), true, cpu.InstructionSetCB[i].Name(), h.cb[i]})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// PlotTo renders the n most executed opcodes as a PNG bar chart to w.
func (h *Histogram) PlotTo(w io.Writer, n int) error {
	top := h.Top(n)
	if len(top) == 0 {
		return ErrNoOpcodes
	}

	values := make(plotter.Values, len(top))
	names := make([]string, len(top))
	for i, e := range top {
		values[i] = float64(e.Count)
		names[i] = e.Name
	}

	p := plot.New()
	p.Title.Text = "Opcode Frequency"
	p.Y.Label.Text = "Executions"

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 1.2
	p.X.Tick.Label.XAlign = draw.XRight

	img := image.NewRGBA(image.Rect(0, 0, 32*len(top)+160, 480))
	c := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(c))

	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// Plot renders the n most executed opcodes as a PNG bar chart to the
// given file.
func (h *Histogram) Plot(filename string, n int) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := h.PlotTo(f, n); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
