package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op     Opcode
		a, b   byte
		output byte
	}){
		{OP_ADD, 3, 4, 7},
		{OP_ADD, 0xff, 2, 1},
		{OP_SUB, 3, 4, 0xff},
		{OP_MUL, 8, 9, 72},
		{OP_MUL, 0x10, 0x10, 0},
		{OP_DIV, 10, 3, 3},
		{OP_MOD, 10, 3, 1},
		{OP_INC, 0xff, 9, 0},
		{OP_DEC, 0, 9, 0xff},
		{OP_AND, 0b1100, 0b1010, 0b1000},
		{OP_OR, 0b1100, 0b1010, 0b1110},
		{OP_XOR, 0b1100, 0b1010, 0b0110},
		{OP_NOT, 0b1100_0011, 9, 0b0011_1100},
		{OP_SHL, 0b0000_0011, 2, 0b0000_1100},
		{OP_SHL, 0b1000_0001, 1, 0b0000_0010},
		{OP_SHR, 0b1100_0000, 3, 0b0001_1000},
		{OP_SHR, 0xff, 8, 0},
	}

	for _, entry := range table {
		output, flags, err := Alu(entry.op, entry.a, entry.b)
		assert.NoError(err, entry.op.String())
		assert.Equal(entry.output, output, entry.op.String())
		assert.Equal(byte(0), flags, entry.op.String())
	}
}

func TestAlu_Cmp(t *testing.T) {
	assert := assert.New(t)

	_, flags, err := Alu(OP_CMP, 5, 5)
	assert.NoError(err)
	assert.Equal(FL_EQ, flags)

	_, flags, _ = Alu(OP_CMP, 4, 5)
	assert.Equal(FL_LT, flags)

	_, flags, _ = Alu(OP_CMP, 6, 5)
	assert.Equal(FL_GT, flags)
}

func TestAlu_DivideByZero(t *testing.T) {
	assert := assert.New(t)

	_, _, err := Alu(OP_DIV, 10, 0)
	assert.ErrorIs(err, ErrDivideByZero)

	_, _, err = Alu(OP_MOD, 10, 0)
	assert.ErrorIs(err, ErrDivideByZero)
}

func TestAlu_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, _, err := Alu(OP_LDI, 1, 2)
	assert.ErrorIs(err, ErrOpcodeInvalid)
}

// Shifts store their result, like the other bitwise operations.
func TestCpu_ShiftWritesBack(t *testing.T) {
	assert := assert.New(t)

	cp := NewCpu()
	cp.Register[0] = 0b0000_0101
	cp.Register[1] = 2

	assert.NoError(cp.Execute(MakeCode(OP_SHL, 0, 1)))
	assert.Equal(byte(0b0001_0100), cp.Register[0])

	assert.NoError(cp.Execute(MakeCode(OP_SHR, 0, 1)))
	assert.Equal(byte(0b0000_0101), cp.Register[0])
	assert.Equal(byte(2), cp.Register[1])
}

func TestCpu_AluSingleOperand(t *testing.T) {
	assert := assert.New(t)

	// The byte after INC is the next instruction, not a second operand.
	cp := NewCpu()
	copy(cp.Memory[:], []byte{byte(OP_INC), 2, byte(OP_DEC), 3, byte(OP_HLT)})
	cp.Register[2] = 9
	cp.Register[3] = 9

	for cp.Running {
		assert.NoError(cp.Tick())
	}

	assert.Equal(byte(10), cp.Register[2])
	assert.Equal(byte(8), cp.Register[3])
	assert.Equal(5, cp.Pc)
}

func TestCpu_CmpLeavesRegisters(t *testing.T) {
	assert := assert.New(t)

	cp := NewCpu()
	cp.Register[0] = 7
	cp.Register[1] = 9

	assert.NoError(cp.Execute(MakeCode(OP_CMP, 0, 1)))
	assert.Equal(FL_LT, cp.Fl)
	assert.Equal(byte(7), cp.Register[0])
	assert.Equal(byte(9), cp.Register[1])

	// Other operations never touch the flags.
	assert.NoError(cp.Execute(MakeCode(OP_ADD, 0, 1)))
	assert.Equal(FL_LT, cp.Fl)
}

func TestCpu_DivideByZeroHalts(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []Opcode{OP_DIV, OP_MOD} {
		cp := NewCpu()
		code := MakeCode(op, 0, 1)
		copy(cp.Memory[:], code.Bytes())
		cp.Register[0] = 10

		err := cp.Tick()
		assert.ErrorIs(err, ErrDivideByZero, op.String())
		assert.ErrorIs(err, ErrOpcodeAlu, op.String())
		assert.False(cp.Running, op.String())
		assert.Equal(byte(10), cp.Register[0], op.String())

		assert.ErrorIs(cp.Tick(), ErrHalted)
	}
}
