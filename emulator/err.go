package emulator

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrBreak       = errors.New(f("break"))
	ErrWatchResult = errors.New(f("watch has no result"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc     int
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d pc 0x%02x %v", err.LineNo, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrWatchExpression is a watch expression that could not be evaluated.
type ErrWatchExpression struct {
	Expr string
	Err  error
}

func (err *ErrWatchExpression) Error() string {
	return f("watch '%v' %v", err.Expr, err.Err)
}

func (err *ErrWatchExpression) Unwrap() error {
	return err.Err
}
