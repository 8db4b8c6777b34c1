package io

import (
	"io"
	"strconv"
	"unicode/utf8"
)

// Tape is the console output device.
// Output is written through to an io.Writer, flushing after every
// write if the writer supports it.
type Tape struct {
	Output io.Writer

	lastOutput byte
}

var _ Console = (*Tape)(nil)

type flusher interface {
	Flush() error
}

// Rewind forgets any prior output.
func (tc *Tape) Rewind() {
	tc.lastOutput = 0
}

// AtLineStart is true if nothing, or a complete line, has been written.
func (tc *Tape) AtLineStart() bool {
	return tc.lastOutput == 0 || tc.lastOutput == '\n'
}

// PrintNumber writes value in decimal, followed by a newline.
func (tc *Tape) PrintNumber(value byte) (err error) {
	buf := strconv.AppendUint(nil, uint64(value), 10)
	buf = append(buf, '\n')

	return tc.write(buf)
}

// PrintChar writes value as the character with that code point.
func (tc *Tape) PrintChar(value byte) (err error) {
	return tc.write(utf8.AppendRune(nil, rune(value)))
}

func (tc *Tape) write(buf []byte) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = tc.Output.Write(buf)
	if err != nil {
		return
	}

	tc.lastOutput = buf[len(buf)-1]

	if fl, ok := tc.Output.(flusher); ok {
		err = fl.Flush()
	}

	return
}
