package cpu

import (
	"fmt"
)

// Opcode is an LS-8 instruction byte.
//
// Bit layout: AABCDDDD
//   - AA:   operand count (instruction length is AA+1 bytes)
//   - B:    ALU operation
//   - C:    instruction sets the PC itself
//   - DDDD: instruction identifier
type Opcode byte

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0b00000001) // HLT
	OP_LDI  = Opcode(0b10000010) // LDI
	OP_LD   = Opcode(0b10000011) // LD
	OP_ST   = Opcode(0b10000100) // ST
	OP_PUSH = Opcode(0b01000101) // PUSH
	OP_POP  = Opcode(0b01000110) // POP
	OP_PRN  = Opcode(0b01000111) // PRN
	OP_PRA  = Opcode(0b01001000) // PRA

	OP_ADD = Opcode(0b10100000) // ADD
	OP_SUB = Opcode(0b10100001) // SUB
	OP_MUL = Opcode(0b10100010) // MUL
	OP_DIV = Opcode(0b10100011) // DIV
	OP_MOD = Opcode(0b10100100) // MOD
	OP_INC = Opcode(0b01100101) // INC
	OP_DEC = Opcode(0b01100110) // DEC
	OP_CMP = Opcode(0b10100111) // CMP
	OP_AND = Opcode(0b10101000) // AND
	OP_NOT = Opcode(0b01101001) // NOT
	OP_OR  = Opcode(0b10101010) // OR
	OP_XOR = Opcode(0b10101011) // XOR
	OP_SHL = Opcode(0b10101100) // SHL
	OP_SHR = Opcode(0b10101101) // SHR

	OP_CALL = Opcode(0b01010000) // CALL
	OP_RET  = Opcode(0b00010001) // RET
	OP_INT  = Opcode(0b01010010) // INT
	OP_IRET = Opcode(0b00010011) // IRET
	OP_JMP  = Opcode(0b01010100) // JMP
	OP_JEQ  = Opcode(0b01010101) // JEQ
	OP_JNE  = Opcode(0b01010110) // JNE
)

const (
	opLengthShift = 6
	opAluBit      = 1 << 5
	opSetsPcBit   = 1 << 4
)

// Length returns the total instruction length in bytes, including the opcode.
func (op Opcode) Length() int {
	return int(op>>opLengthShift) + 1
}

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return op.Length() - 1
}

// IsAlu is true if the opcode is routed to the ALU.
func (op Opcode) IsAlu() bool {
	return (op & opAluBit) != 0
}

// SetsPc is true if the instruction is responsible for the PC itself.
func (op Opcode) SetsPc() bool {
	return (op & opSetsPcBit) != 0
}

// Code is a fetched instruction: the opcode and the operands it uses.
type Code struct {
	Op       Opcode
	Operands []byte
}

// A returns the first operand, or zero if there is none.
func (code Code) A() byte {
	if len(code.Operands) > 0 {
		return code.Operands[0]
	}
	return 0
}

// B returns the second operand, or zero if there is none.
func (code Code) B() byte {
	if len(code.Operands) > 1 {
		return code.Operands[1]
	}
	return 0
}

// Bytes returns the machine code of the instruction.
func (code Code) Bytes() []byte {
	return append([]byte{byte(code.Op)}, code.Operands...)
}

// MakeCode creates an instruction, truncating the operands to the
// count the opcode encodes.
func MakeCode(op Opcode, operands ...byte) Code {
	need := op.Operands()
	code := Code{Op: op, Operands: make([]byte, need)}
	copy(code.Operands, operands)
	return code
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	// LDI is the only instruction with a literal operand.
	if code.Op == OP_LDI {
		return fmt.Sprintf("%v r%d,0x%02x", code.Op, code.A(), code.B())
	}

	switch code.Op.Operands() {
	case 0:
		return code.Op.String()
	case 1:
		return fmt.Sprintf("%v r%d", code.Op, code.A())
	default:
		return fmt.Sprintf("%v r%d,r%d", code.Op, code.A(), code.B())
	}
}
