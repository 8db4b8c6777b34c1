package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted          = errors.New(f("halted"))
	ErrDivideByZero    = errors.New(f("divide by zero"))
	ErrStackFull       = errors.New(f("stack full"))
	ErrStackEmpty      = errors.New(f("stack empty"))
	ErrPcRange         = errors.New(f("pc out of range"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrImageSize       = errors.New(f("image larger than memory"))

	// Instruction decode errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrOpcodeAlu     = errors.New(f("alu"))
	ErrOpcodeHandler = errors.New(f("handler"))
)

// ErrOpcode reports the instruction that failed.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x %v", byte(eo.Op), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
