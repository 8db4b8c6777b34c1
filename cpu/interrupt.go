package cpu

import (
	"log"
)

// Interrupt lines.
const (
	INT_TIMER = 0 // Periodic timer.
)

// pollTimer raises INT_TIMER once per timer period.
func (cpu *Cpu) pollTimer() {
	if cpu.Timer == nil {
		return
	}

	if cpu.Timer.Poll() {
		cpu.Register[REG_IS] |= 1 << INT_TIMER
	}
}

// checkInterrupts takes every pending, unmasked interrupt, lowest first.
// Each one saves a frame, so a later frame returns into the handler.
func (cpu *Cpu) checkInterrupts() (err error) {
	pending := cpu.Register[REG_IM] & cpu.Register[REG_IS]

	for n := range 8 {
		if (pending>>n)&1 == 0 {
			continue
		}

		err = cpu.Interrupt(n)
		if err != nil {
			return
		}
	}

	return
}

// Interrupt saves the machine state to the stack and enters the
// handler at Memory[VECTOR_BASE]. Interrupts are disabled until IRET.
//
// The PC, the flags, then r0 through r6 are pushed, in that order.
func (cpu *Cpu) Interrupt(n int) (err error) {
	if cpu.Pc < 0 || cpu.Pc >= MEMORY_SIZE {
		err = ErrPcRange
		return
	}

	cpu.Ie = false
	cpu.Register[REG_IS] = 0

	err = cpu.Push(byte(cpu.Pc))
	if err != nil {
		return
	}

	err = cpu.Push(cpu.Fl)
	if err != nil {
		return
	}

	for reg := range REG_SP {
		err = cpu.Push(cpu.Register[reg])
		if err != nil {
			return
		}
	}

	cpu.Pc = int(cpu.Memory.Read(VECTOR_BASE))

	if cpu.Verbose {
		log.Printf("cpu: interrupt %d to 0x%02x", n, cpu.Pc)
	}

	return
}
