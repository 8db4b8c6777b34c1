package cpu

// Push decrements the stack pointer, then stores value at the new top of stack.
func (cpu *Cpu) Push(value byte) (err error) {
	sp := cpu.Register[REG_SP]
	if sp == 0 {
		err = ErrStackFull
		return
	}

	sp--
	cpu.Register[REG_SP] = sp
	cpu.Memory.Write(sp, value)

	return
}

// Pop reads the top of stack, then increments the stack pointer.
func (cpu *Cpu) Pop() (value byte, err error) {
	sp := cpu.Register[REG_SP]
	if sp == MEMORY_SIZE-1 {
		err = ErrStackEmpty
		return
	}

	value = cpu.Memory.Read(sp)
	cpu.Register[REG_SP] = sp + 1

	return
}

// Peek returns the top of stack without changing the stack pointer.
// ok is false if nothing has been pushed below STACK_START.
func (cpu *Cpu) Peek() (value byte, ok bool) {
	sp := cpu.Register[REG_SP]
	if sp >= STACK_START {
		return
	}

	return cpu.Memory.Read(sp), true
}
