package emulator

import (
	"fmt"
	"iter"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ls8/cpu"
)

// Watch is a predicate over the CPU state, written as a starlark
// expression. The expression sees:
//   - pc, fl, ie, ticks
//   - r0 to r7, and sp as an alias of r7
//   - mem, the memory contents as a sequence of ints
//   - every integer define of the emulator
//
// For example: "pc == 0x10 and r0 > 3"
type Watch struct {
	Expr string

	defines starlark.StringDict
}

// NewWatch compiles a watch expression, checking that it evaluates.
func NewWatch(expr string, defines iter.Seq2[string, string]) (watch *Watch, err error) {
	watch = &Watch{
		Expr:    expr,
		defines: starlark.StringDict{},
	}

	for key, str := range defines {
		value, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer defines.
			continue
		}
		watch.defines[key] = starlark.MakeInt64(value)
	}

	_, err = watch.Eval(cpu.NewCpu())
	if err != nil {
		watch = nil
	}

	return
}

// Eval returns the truth of the expression for the given CPU state.
func (watch *Watch) Eval(cp *cpu.Cpu) (ok bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrWatchExpression{Expr: watch.Expr, Err: err}
		}
	}()

	pred := starlark.StringDict{}
	for key, value := range watch.defines {
		pred[key] = value
	}

	pred["pc"] = starlark.MakeInt(cp.Pc)
	pred["fl"] = starlark.MakeInt(int(cp.Fl))
	pred["ie"] = starlark.Bool(cp.Ie)
	pred["ticks"] = starlark.MakeInt(cp.Ticks)
	for n, value := range cp.Register {
		pred[fmt.Sprintf("r%d", n)] = starlark.MakeInt(int(value))
	}
	pred["sp"] = starlark.MakeInt(int(cp.Register[cpu.REG_SP]))
	pred["mem"] = memoryView{&cp.Memory}

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=(" + watch.Expr + ")\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "watch", prog, pred)
	if err != nil {
		return
	}

	rc, found := dict["rc"]
	if !found {
		err = ErrWatchResult
		return
	}

	ok = bool(rc.Truth())
	return
}

// memoryView is a read only starlark sequence over the CPU memory.
type memoryView struct {
	mem *cpu.Memory
}

var _ starlark.Indexable = memoryView{}

func (mv memoryView) String() string        { return fmt.Sprintf("mem[%d]", len(mv.mem)) }
func (mv memoryView) Type() string          { return "mem" }
func (mv memoryView) Freeze()               {}
func (mv memoryView) Truth() starlark.Bool  { return starlark.True }
func (mv memoryView) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: mem") }
func (mv memoryView) Len() int              { return len(mv.mem) }

func (mv memoryView) Index(i int) starlark.Value {
	return starlark.MakeInt(int(mv.mem[i]))
}
