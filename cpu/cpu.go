package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/ls8/io"
)

// Console is the character output device.
type Console io.Console

// Timer is a polled interrupt source.
type Timer io.Timer

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("0x%x", MEMORY_SIZE),
	"STACK_START": fmt.Sprintf("0x%x", STACK_START),
	"VECTOR_BASE": fmt.Sprintf("0x%x", VECTOR_BASE),
	"FL_EQ":       fmt.Sprintf("0x%x", FL_EQ),
	"FL_GT":       fmt.Sprintf("0x%x", FL_GT),
	"FL_LT":       fmt.Sprintf("0x%x", FL_LT),
	"REG_IM":      fmt.Sprintf("%d", REG_IM),
	"REG_IS":      fmt.Sprintf("%d", REG_IS),
	"REG_SP":      fmt.Sprintf("%d", REG_SP),
}

// Cpu is the simulation context for the LS-8.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Strict  bool // Set to make unrecognized opcodes fatal.

	Memory   Memory    // RAM.
	Register Registers // Register bank.
	Pc       int       // Address of the next instruction to fetch.
	Fl       byte      // Flags, set by CMP.
	Ie       bool      // Interrupts enabled.
	Running  bool      // Cleared by HLT or a fatal error.

	Console Console // Output for PRN and PRA. Output is dropped if nil.
	Timer   Timer   // Periodic interrupt source, if any.

	Ticks   int // Instructions executed.
	Invalid int // Unrecognized instructions skipped.

	ip int // Address of the executing instruction.
}

// NewCpu creates a new CPU, ready to run from address zero.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers and flags.
// - Sets the stack pointer to STACK_START.
// - Enables interrupts and restarts the timer.
// - Zeros statistics counters.
//
// Memory is left untouched so a loaded image survives a reset.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Register[REG_SP] = STACK_START
	cpu.Pc = 0
	cpu.ip = 0
	cpu.Fl = 0
	cpu.Ie = true
	cpu.Running = true
	cpu.Ticks = 0
	cpu.Invalid = 0

	if cpu.Timer != nil {
		cpu.Timer.Rewind()
	}
}

// Trace returns a single line summary of the machine state.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	pc := byte(cpu.Pc)
	ie := 0
	if cpu.Ie {
		ie = 1
	}

	fmt.Fprintf(&sb, "TRACE: %02X | %02X %02X %02X %02X %02X |",
		cpu.Pc, cpu.Fl, ie,
		cpu.Memory.Read(pc), cpu.Memory.Read(pc+1), cpu.Memory.Read(pc+2))
	for _, value := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", value)
	}

	return sb.String()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc",
		"fl",
		"ie",
		"r0", "r1", "r2", "r3", "r4", "im", "is", "sp",
		"stack",
	}
	for n, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "fl":
			strval = fmt.Sprintf("%03b", cpu.Fl)
		case "ie":
			strval = "false"
			if cpu.Ie {
				strval = "true"
			}
		case "stack":
			val, ok := cpu.Peek()
			if ok {
				strval = fmt.Sprintf("%02X", val)
			} else {
				strval = "--"
			}
		default:
			strval = fmt.Sprintf("%02X", cpu.Register[n-3])
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// FetchCode fetches the instruction at the PC, with the operands it uses.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Pc < 0 || cpu.Pc >= MEMORY_SIZE {
		err = ErrPcRange
		return
	}

	op := Opcode(cpu.Memory.Read(byte(cpu.Pc)))
	if cpu.Pc+op.Length() > MEMORY_SIZE {
		err = ErrPcRange
		return
	}

	code = Code{Op: op, Operands: make([]byte, op.Operands())}
	for n := range code.Operands {
		code.Operands[n] = cpu.Memory.Read(byte(cpu.Pc + 1 + n))
	}

	return
}

// Tick executes a single CPU instruction cycle.
// Any error halts the machine.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running {
		err = ErrHalted
		return
	}

	defer func() {
		if err != nil {
			cpu.Running = false
		}
	}()

	if cpu.Ie {
		err = cpu.checkInterrupts()
		if err != nil {
			return
		}
	}

	cpu.pollTimer()

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)

	return
}

// Execute executes a single decoded instruction located at the PC.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, code)
	}

	cpu.ip = cpu.Pc
	if !code.Op.SetsPc() {
		cpu.Pc += code.Op.Length()
	}

	if code.Op.IsAlu() {
		err = cpu.alu(code)
	} else {
		err = cpu.dispatch(code)
	}

	cpu.Ticks++

	return
}
