// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io/fs"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

const (
	INT_TIMER_PERIOD = io.TIMER_PERIOD // Default timer interrupt period.
)

var _emulator_defines = map[string]string{
	"INT_TIMER": fmt.Sprintf("%d", cpu.INT_TIMER),
	"ROM_SIZE":  fmt.Sprintf("%d", io.ROM_SIZE),
}

// Emulator state. CPU + ROM + console + timer.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Rom   io.Rom       // Program image.
	Tape  io.Tape      // Console output.
	Timer io.WallTimer // Periodic interrupt source.

	Trace *Watch // If set, log a trace line whenever true.
	Break *Watch // If set, stop with ErrBreak whenever true.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	emu.Cpu.Console = &emu.Tape
	emu.Cpu.Timer = &emu.Timer

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Open loads the program image name from a file system.
func (emu *Emulator) Open(filesys fs.FS, name string) (err error) {
	return emu.Rom.Open(filesys, name)
}

// Reset copies the program image into memory and resets the CPU.
func (emu *Emulator) Reset() (err error) {
	err = emu.Cpu.Memory.Load(emu.Rom.Data)
	if err != nil {
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Tape.Rewind()

	return
}

// LineNo returns the image source line of the next instruction.
func (emu *Emulator) LineNo() int {
	return emu.Rom.Line(emu.Cpu.Pc)
}

// Tick performs a single tick of the emulator.
// done is set once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		}
	}()

	if !emu.Cpu.Running {
		done = true
		return
	}

	if emu.Break != nil {
		var hit bool
		hit, err = emu.Break.Eval(emu.Cpu)
		if err != nil {
			return
		}
		if hit {
			err = ErrBreak
			return
		}
	}

	trace := emu.Verbose
	if !trace && emu.Trace != nil {
		trace, err = emu.Trace.Eval(emu.Cpu)
		if err != nil {
			return
		}
	}
	if trace {
		log.Print(emu.Cpu.Trace())
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = !emu.Cpu.Running
	return
}

// Run ticks the emulator until the CPU halts or fails.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
