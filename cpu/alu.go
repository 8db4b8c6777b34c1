package cpu

import (
	"errors"
)

// aluOps are the opcodes implemented by Alu.
var aluOps = map[Opcode]bool{
	OP_ADD: true,
	OP_SUB: true,
	OP_MUL: true,
	OP_DIV: true,
	OP_MOD: true,
	OP_INC: true,
	OP_DEC: true,
	OP_CMP: true,
	OP_AND: true,
	OP_NOT: true,
	OP_OR:  true,
	OP_XOR: true,
	OP_SHL: true,
	OP_SHR: true,
}

// Alu computes an ALU operation on two register values.
// For OP_CMP only the returned flags are meaningful; every other
// operation leaves the flags at zero and returns the value to be
// written back into the first register.
func Alu(op Opcode, a, b byte) (output byte, flags byte, err error) {
	switch op {
	case OP_ADD:
		output = a + b
	case OP_SUB:
		output = a - b
	case OP_MUL:
		output = a * b
	case OP_DIV:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		output = a / b
	case OP_MOD:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		output = a % b
	case OP_INC:
		output = a + 1
	case OP_DEC:
		output = a - 1
	case OP_CMP:
		switch {
		case a == b:
			flags = FL_EQ
		case a < b:
			flags = FL_LT
		default:
			flags = FL_GT
		}
	case OP_AND:
		output = a & b
	case OP_NOT:
		output = ^a
	case OP_OR:
		output = a | b
	case OP_XOR:
		output = a ^ b
	case OP_SHL:
		output = a << b
	case OP_SHR:
		output = a >> b
	default:
		err = ErrOpcodeInvalid
	}

	return
}

// alu executes an ALU instruction against the register file.
func (cpu *Cpu) alu(code Code) (err error) {
	// Unknown opcodes are reported before their operands are decoded.
	if !aluOps[code.Op] {
		return cpu.invalid(code)
	}

	ra, err := cpu.Register.index(code.A())
	if err != nil {
		err = errors.Join(ErrOpcodeAlu, err)
		return
	}

	// Single operand instructions (INC, DEC, NOT) have no second register.
	var b byte
	if code.Op.Operands() > 1 {
		b, err = cpu.Register.Get(code.B())
		if err != nil {
			err = errors.Join(ErrOpcodeAlu, err)
			return
		}
	}

	output, flags, err := Alu(code.Op, cpu.Register[ra], b)
	switch {
	case errors.Is(err, ErrDivideByZero):
		cpu.Running = false
		err = errors.Join(ErrOpcodeAlu, err)
		return
	case err != nil:
		err = errors.Join(ErrOpcodeAlu, err)
		return
	}

	if code.Op == OP_CMP {
		cpu.Fl = flags
	} else {
		cpu.Register[ra] = output
	}

	return
}
