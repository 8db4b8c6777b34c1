// Package cpu implements the LS-8 microprocessor.
//
// The CPU consists of 256 bytes of memory, eight 8-bit registers (r0-r7),
// a program counter (PC), a flags register (FL) and an ALU. Register r7 is
// the stack pointer, r6 the interrupt status and r5 the interrupt mask.
//
// Each instruction byte encodes its own length, whether it is an ALU
// operation, and whether it sets the PC itself, so decode is a matter of
// bit tests rather than a table walk.
package cpu
