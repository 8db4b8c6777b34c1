// Package io provides the peripheral devices of the LS-8 emulator.
// It includes the program ROM image loader (Rom), the console output
// device (Tape), and the polled periodic interrupt source (WallTimer).
package io

// Console defines the interface for the CPU's character output device.
type Console interface {
	// PrintNumber writes value in decimal, followed by a newline.
	PrintNumber(value byte) error
	// PrintChar writes value as a character, with no newline.
	PrintChar(value byte) error
}

// Timer defines the interface for a polled interrupt source.
type Timer interface {
	// Rewind restarts the current period.
	Rewind()
	// Poll returns true once each time a period has elapsed.
	Poll() bool
}
