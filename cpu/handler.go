package cpu

import (
	"errors"
	"log"
)

// handler executes a non-ALU instruction.
type handler func(cpu *Cpu, code Code) error

var handlers = map[Opcode]handler{
	OP_HLT:  (*Cpu).doHlt,
	OP_LDI:  (*Cpu).doLdi,
	OP_LD:   (*Cpu).doLd,
	OP_ST:   (*Cpu).doSt,
	OP_PUSH: (*Cpu).doPush,
	OP_POP:  (*Cpu).doPop,
	OP_PRN:  (*Cpu).doPrn,
	OP_PRA:  (*Cpu).doPra,
	OP_CALL: (*Cpu).doCall,
	OP_RET:  (*Cpu).doRet,
	OP_INT:  (*Cpu).doInt,
	OP_IRET: (*Cpu).doIret,
	OP_JMP:  (*Cpu).doJmp,
	OP_JEQ:  (*Cpu).doJeq,
	OP_JNE:  (*Cpu).doJne,
}

// dispatch routes an instruction to the handler table.
func (cpu *Cpu) dispatch(code Code) (err error) {
	fn, ok := handlers[code.Op]
	if !ok {
		return cpu.invalid(code)
	}

	err = fn(cpu, code)
	if err != nil {
		err = errors.Join(ErrOpcodeHandler, err)
	}

	return
}

// invalid reports an unrecognized instruction.
func (cpu *Cpu) invalid(code Code) (err error) {
	cpu.Invalid++

	log.Print(f("invalid instruction 0b%08b at 0x%02x", byte(code.Op), cpu.ip))

	// Step over it, even if it claims to set the PC.
	if code.Op.SetsPc() {
		cpu.Pc = cpu.ip + code.Op.Length()
	}

	if cpu.Strict {
		err = ErrOpcodeInvalid
	}

	return
}

// nextPc returns the address following the current instruction.
func (cpu *Cpu) nextPc(code Code) (pc int, err error) {
	pc = cpu.ip + code.Op.Length()
	if pc >= MEMORY_SIZE {
		err = ErrPcRange
	}
	return
}

func (cpu *Cpu) doHlt(code Code) (err error) {
	cpu.Running = false
	return
}

func (cpu *Cpu) doLdi(code Code) (err error) {
	return cpu.Register.Set(code.A(), code.B())
}

func (cpu *Cpu) doLd(code Code) (err error) {
	address, err := cpu.Register.Get(code.B())
	if err != nil {
		return
	}

	return cpu.Register.Set(code.A(), cpu.Memory.Read(address))
}

func (cpu *Cpu) doSt(code Code) (err error) {
	address, err := cpu.Register.Get(code.A())
	if err != nil {
		return
	}

	value, err := cpu.Register.Get(code.B())
	if err != nil {
		return
	}

	cpu.Memory.Write(address, value)
	return
}

func (cpu *Cpu) doPush(code Code) (err error) {
	value, err := cpu.Register.Get(code.A())
	if err != nil {
		return
	}

	return cpu.Push(value)
}

func (cpu *Cpu) doPop(code Code) (err error) {
	// Validate before touching the stack pointer.
	if _, err = cpu.Register.index(code.A()); err != nil {
		return
	}

	value, err := cpu.Pop()
	if err != nil {
		return
	}

	return cpu.Register.Set(code.A(), value)
}

func (cpu *Cpu) doPrn(code Code) (err error) {
	value, err := cpu.Register.Get(code.A())
	if err != nil {
		return
	}

	if cpu.Console == nil {
		return
	}

	return cpu.Console.PrintNumber(value)
}

func (cpu *Cpu) doPra(code Code) (err error) {
	value, err := cpu.Register.Get(code.A())
	if err != nil {
		return
	}

	if cpu.Console == nil {
		return
	}

	return cpu.Console.PrintChar(value)
}

func (cpu *Cpu) doCall(code Code) (err error) {
	target, err := cpu.Register.Get(code.A())
	if err != nil {
		return
	}

	ret, err := cpu.nextPc(code)
	if err != nil {
		return
	}

	err = cpu.Push(byte(ret))
	if err != nil {
		return
	}

	cpu.Pc = int(target)
	return
}

func (cpu *Cpu) doRet(code Code) (err error) {
	pc, err := cpu.Pop()
	if err != nil {
		return
	}

	cpu.Pc = int(pc)
	return
}

func (cpu *Cpu) doInt(code Code) (err error) {
	value, err := cpu.Register.Get(code.A())
	if err != nil {
		return
	}

	cpu.Register[REG_IS] |= 1 << (value & 7)

	cpu.Pc = cpu.ip + code.Op.Length()
	return
}

func (cpu *Cpu) doIret(code Code) (err error) {
	for n := REG_IS; n >= 0; n-- {
		cpu.Register[n], err = cpu.Pop()
		if err != nil {
			return
		}
	}

	cpu.Fl, err = cpu.Pop()
	if err != nil {
		return
	}

	pc, err := cpu.Pop()
	if err != nil {
		return
	}

	cpu.Pc = int(pc)
	cpu.Ie = true

	if cpu.Verbose {
		log.Printf("cpu: iret to 0x%02x", cpu.Pc)
	}

	return
}

func (cpu *Cpu) doJmp(code Code) (err error) {
	return cpu.jumpIf(code, true)
}

func (cpu *Cpu) doJeq(code Code) (err error) {
	return cpu.jumpIf(code, (cpu.Fl&FL_EQ) != 0)
}

func (cpu *Cpu) doJne(code Code) (err error) {
	return cpu.jumpIf(code, (cpu.Fl&FL_EQ) == 0)
}

// jumpIf sets the PC to the register operand if cond holds, otherwise
// steps over the instruction.
func (cpu *Cpu) jumpIf(code Code, cond bool) (err error) {
	target, err := cpu.Register.Get(code.A())
	if err != nil {
		return
	}

	if cond {
		cpu.Pc = int(target)
	} else {
		cpu.Pc = cpu.ip + code.Op.Length()
	}

	return
}
