package lisp

import (
	"fmt"
	"io"
	"os"
)

// Reader parses lisp values from source text.
type Reader interface {
	Read(name string, src string) ([]*LVal, error)
}

// Runtime holds the configuration of an evaluation session.  Symbols are
// resolved in the process-wide namespace; a Runtime has no bindings of its
// own.
type Runtime struct {
	Stdout io.Writer
	Stderr io.Writer
	Reader Reader
	Trace  bool
}

// NewRuntime returns a Runtime configured by the given Configs.  Output is
// written to os.Stdout and os.Stderr unless otherwise configured.
func NewRuntime(config ...Config) *Runtime {
	rt := &Runtime{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	for _, fn := range config {
		fn(rt)
	}
	return rt
}

func (rt *Runtime) stdout() io.Writer {
	if rt.Stdout == nil {
		return io.Discard
	}
	return rt.Stdout
}

func (rt *Runtime) stderr() io.Writer {
	if rt.Stderr == nil {
		return io.Discard
	}
	return rt.Stderr
}

// LoadString reads all values in src using rt.Reader and evaluates them in
// order.  The result of the last value is returned; Nil if src contains no
// values.
func (rt *Runtime) LoadString(name string, src string) (*LVal, error) {
	if rt.Reader == nil {
		return nil, fmt.Errorf("no reader configured")
	}
	exprs, err := rt.Reader.Read(name, src)
	if err != nil {
		return nil, Wrapf(err, "error parsing %s", name)
	}
	ret := Nil()
	for _, expr := range exprs {
		ret, err = rt.Eval(expr)
		if err != nil {
			return nil, Wrapf(err, "error evaluating %s", name)
		}
	}
	return ret, nil
}

// Eval evaluates v.  Only forms are applied; symbols resolve to namespace
// builtins and every other value evaluates to itself.
func (rt *Runtime) Eval(v *LVal) (*LVal, error) {
	if rt.Trace {
		fmt.Fprintf(rt.stderr(), "eval: %v\n", v)
	}
	ret, err := rt.eval(v)
	if rt.Trace && err == nil {
		fmt.Fprintf(rt.stderr(), "  => %v\n", ret)
	}
	return ret, err
}

func (rt *Runtime) eval(v *LVal) (*LVal, error) {
	if v == nil {
		return Nil(), nil
	}
	switch v.Type {
	case LNil, LNumber, LString, LKeyword:
		return v, nil
	case LSymbol:
		return rt.Lookup(v)
	case LForm:
		ret, err := rt.evalForm(v)
		if err != nil {
			return nil, Wrapf(err, "error evaluating %v", v)
		}
		return ret, nil
	case LList, LVector, LMap, LSet, LFun:
		return v, nil
	default:
		panic(fmt.Sprintf("unknown value type: %s (%d)", v.Type, v.Type))
	}
}

// Lookup resolves the symbol sym in the namespace.
func (rt *Runtime) Lookup(sym *LVal) (*LVal, error) {
	if sym.Type != LSymbol {
		return nil, Errorf(ErrUnsupportedOperation, "cannot look up %s", sym.Type)
	}
	b, ok := Lookup(sym.Str)
	if !ok {
		err := Errorf(ErrUnboundSymbol, "%s", sym.Str)
		err.Source = sym.Source
		return nil, err
	}
	return Fun(b), nil
}

func (rt *Runtime) evalForm(form *LVal) (*LVal, error) {
	if len(form.Cells) == 0 {
		return Nil(), nil
	}
	fun, err := rt.Eval(form.Cells[0])
	if err != nil {
		return nil, err
	}
	if fun.Type != LFun {
		err := Errorf(ErrNotCallable, "%v is a %s", fun, fun.Type)
		err.Source = form.Cells[0].Source
		return nil, err
	}
	args := make([]*LVal, len(form.Cells)-1)
	for i, expr := range form.Cells[1:] {
		args[i], err = rt.Eval(expr)
		if err != nil {
			return nil, err
		}
	}
	return rt.Call(fun, args)
}

// Call invokes the builtin fun with args, which have already been evaluated.
func (rt *Runtime) Call(fun *LVal, args []*LVal) (*LVal, error) {
	if fun.Type != LFun {
		return nil, Errorf(ErrNotCallable, "%v is a %s", fun, fun.Type)
	}
	return fun.Fun.Call(rt, args)
}
