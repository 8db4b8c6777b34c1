package cpu

// Reserved register indexes.
const (
	REG_IM = 5 // Interrupt mask.
	REG_IS = 6 // Interrupt status.
	REG_SP = 7 // Stack pointer.

	REGISTER_COUNT = 8
)

// Flag bits, set by CMP.
const (
	FL_EQ = byte(1 << 0) // Equal.
	FL_GT = byte(1 << 1) // Greater.
	FL_LT = byte(1 << 2) // Less.
)

// Registers is the general-purpose register file.
type Registers [REGISTER_COUNT]byte

// index validates an operand as a register index.
func (reg *Registers) index(operand byte) (index int, err error) {
	if int(operand) >= len(reg) {
		err = ErrRegisterInvalid
		return
	}

	index = int(operand)
	return
}

// Get returns the value of the register named by the operand.
func (reg *Registers) Get(operand byte) (value byte, err error) {
	index, err := reg.index(operand)
	if err != nil {
		return
	}

	value = reg[index]
	return
}

// Set assigns the register named by the operand.
func (reg *Registers) Set(operand byte, value byte) (err error) {
	index, err := reg.index(operand)
	if err != nil {
		return
	}

	reg[index] = value
	return
}
