package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/thelolagemann/go-lr35902/internal/cpu"
	"github.com/thelolagemann/go-lr35902/internal/mmu"
	"github.com/thelolagemann/go-lr35902/internal/profile"
	"github.com/thelolagemann/go-lr35902/internal/types"
	"github.com/thelolagemann/go-lr35902/pkg/log"
	"github.com/thelolagemann/go-lr35902/pkg/utils"
)

// config holds the parsed command line.
type config struct {
	program   string
	load      uint
	pc, sp    uint
	pcSet     bool
	spSet     bool
	bootState bool
	steps     int
	restore   string
	state     string
	profile   string
	top       int
	digest    bool
	quiet     bool
}

// result summarises a run.
type result struct {
	cpu    *cpu.CPU
	mmu    *mmu.MMU
	steps  int
	cycles uint64
	hist   *profile.Histogram
}

func main() {
	var cfg config
	flag.StringVar(&cfg.program, "program", "", "The program to load (raw, .gz, .br, .zip or .7z)")
	flag.UintVar(&cfg.load, "load", 0, "The address to load the program at")
	flag.UintVar(&cfg.pc, "pc", 0, "The initial program counter (default: the load address)")
	flag.UintVar(&cfg.sp, "sp", 0xFFFE, "The initial stack pointer")
	flag.BoolVar(&cfg.bootState, "boot-state", false, "Start from the registers left by the DMG boot ROM")
	flag.IntVar(&cfg.steps, "steps", 1000000, "The maximum number of instructions to execute")
	flag.StringVar(&cfg.restore, "restore", "", "The state file to resume from")
	flag.StringVar(&cfg.state, "state", "", "The file to write the final state to (.br to compress)")
	flag.StringVar(&cfg.profile, "profile", "", "The file to write an opcode histogram PNG to")
	flag.IntVar(&cfg.top, "top", 20, "The number of opcodes to include in the histogram")
	flag.BoolVar(&cfg.digest, "digest", false, "Print the digest of the final state")
	flag.BoolVar(&cfg.quiet, "quiet", false, "Only log errors")
	flag.Parse()

	level := logrus.DebugLevel
	if cfg.quiet {
		level = logrus.ErrorLevel
	}
	logger := log.NewWithLevel(level)

	if cfg.program == "" || cfg.top < 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.pcSet, cfg.spSet = isSet("pc"), isSet("sp")
	if !cfg.pcSet {
		cfg.pc = cfg.load
	}

	res, err := run(cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}

	c := res.cpu
	logger.Infof("executed %d instructions in %d cycles", res.steps, res.cycles)
	logger.Infof("AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X flags=%s", c.AF(), c.BC(), c.DE(), c.HL(), c.SP, c.PC, c.F)
	if c.Mode() == cpu.ModeLocked {
		logger.Errorf("CPU locked up at 0x%04X", c.PC-1)
	}

	s := snapshot(res)
	if cfg.digest {
		fmt.Printf("%016x\n", s.Hash())
	}
	if cfg.state != "" {
		if err := s.SaveToFile(cfg.state); err != nil {
			logger.Fatal(err)
		}
		logger.Infof("saved state to %s", cfg.state)
	}
	if cfg.profile != "" {
		for _, e := range res.hist.Top(cfg.top) {
			logger.Debugf("%-24s %d", e, e.Count)
		}
		if err := res.hist.Plot(cfg.profile, cfg.top); err != nil {
			logger.Fatal(err)
		}
		logger.Infof("saved profile to %s", cfg.profile)
	}
}

// run loads the program and steps the CPU until the step budget is
// exhausted or the CPU locks up. A halted or stopped CPU has nothing to
// wake it, so the run ends there as well.
func run(cfg config, logger log.Logger) (*result, error) {
	if cfg.load > 0xFFFF || cfg.pc > 0xFFFF || cfg.sp > 0xFFFF {
		return nil, fmt.Errorf("addresses must be within 0x0000-0xFFFF")
	}

	program, err := utils.LoadFile(cfg.program)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	m := mmu.New(mmu.WithLogger(logger))
	if n := m.LoadAt(uint16(cfg.load), program); n < len(program) {
		logger.Errorf("program truncated to %d of %d bytes", n, len(program))
	}

	res := &result{mmu: m, hist: &profile.Histogram{}}
	opts := []cpu.Opt{
		cpu.WithLogger(logger),
		cpu.WithProfiler(res.hist),
	}
	// explicit registers take precedence over the post-boot ones
	if cfg.bootState {
		opts = append(opts, cpu.WithPostBootState())
	}
	if !cfg.bootState || cfg.spSet {
		opts = append(opts, cpu.WithStackPointer(uint16(cfg.sp)))
	}
	if !cfg.bootState || cfg.pcSet {
		opts = append(opts, cpu.WithProgramCounter(uint16(cfg.pc)))
	}
	res.cpu = cpu.New(m, opts...)

	if cfg.restore != "" {
		s, err := types.LoadStateFile(cfg.restore)
		if err != nil {
			return nil, fmt.Errorf("restoring state: %w", err)
		}
		if n := s.Remaining(); n != cpu.StateSize+mmu.StateSize {
			return nil, fmt.Errorf("restoring state: %s is %d bytes, expected %d", cfg.restore, n, cpu.StateSize+mmu.StateSize)
		}
		if err := res.cpu.Restore(s); err != nil {
			return nil, fmt.Errorf("restoring state: %w", err)
		}
		m.Load(s)
		logger.Infof("restored state from %s", cfg.restore)
	}

	for res.steps < cfg.steps {
		if res.cpu.Mode() == cpu.ModeLocked || res.cpu.Halted() {
			break
		}
		res.cycles += uint64(res.cpu.Step())
		res.steps++
	}
	return res, nil
}

// snapshot saves the CPU and memory into a single state.
func snapshot(res *result) *types.State {
	s := types.NewState()
	res.cpu.Save(s)
	res.mmu.Save(s)
	return s
}

func isSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
