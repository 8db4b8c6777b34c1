package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Rom errors
	ErrRomFull  = errors.New(f("rom full"))
	ErrRomEmpty = errors.New(f("rom empty"))
)

// ErrParseBinary is a line that is not an 8-bit binary literal.
type ErrParseBinary string

func (err ErrParseBinary) Error() string {
	return f("'%v' is not an 8-bit binary number", string(err))
}

// ErrSyntax locates an error in a program image.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
