package lisp

import (
	"fmt"

	"github.com/bmatsuo/risp/parser/token"
)

// ErrorKind classifies an Error.  An ErrorKind is itself an error so it can be
// given to errors.Is to test the kind of any error chain.
type ErrorKind uint

// Possible ErrorKind values
const (
	ErrUnknown ErrorKind = iota
	ErrTokenizeMalformedLiteral
	ErrParseUnexpectedClose
	ErrParseUnexpectedEnd
	ErrParseInvalidAtom
	ErrParseInvalidKey
	ErrParseMissingValue
	ErrParseTooDeep
	ErrArity
	ErrUnboundSymbol
	ErrNotCallable
	ErrUnsupportedOperation
)

var errorKindStrings = []string{
	ErrUnknown:                  "error",
	ErrTokenizeMalformedLiteral: "malformed-literal",
	ErrParseUnexpectedClose:     "unexpected-close",
	ErrParseUnexpectedEnd:       "unexpected-end",
	ErrParseInvalidAtom:         "invalid-atom",
	ErrParseInvalidKey:          "invalid-key",
	ErrParseMissingValue:        "missing-value",
	ErrParseTooDeep:             "too-deep",
	ErrArity:                    "arity-error",
	ErrUnboundSymbol:            "unbound-symbol",
	ErrNotCallable:              "not-callable",
	ErrUnsupportedOperation:     "unsupported-operation",
}

func (k ErrorKind) String() string {
	if int(k) >= len(errorKindStrings) {
		return errorKindStrings[ErrUnknown]
	}
	return errorKindStrings[k]
}

// Error implements the error interface.
func (k ErrorKind) Error() string {
	return k.String()
}

// Error is the error type produced by the reader, the evaluator and builtins.
type Error struct {
	Kind   ErrorKind
	Msg    string
	Source *token.Location
}

// Errorf returns an Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, v ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, v...),
	}
}

func (e *Error) Error() string {
	if e.Source != nil {
		return fmt.Sprintf("%s: %s: %s", e.Source, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is allows errors.Is to match an Error against its ErrorKind.
func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

// ContextError annotates an underlying error with a message describing what
// was being done when it occurred.
type ContextError struct {
	Msg string
	Err error
}

// Wrapf annotates err with a formatted message.  Wrapf returns nil if err is
// nil.
func Wrapf(err error, format string, v ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ContextError{
		Msg: fmt.Sprintf(format, v...),
		Err: err,
	}
}

func (e *ContextError) Error() string {
	return e.Msg + ": " + e.Err.Error()
}

func (e *ContextError) Unwrap() error {
	return e.Err
}

// ErrorChain returns the messages of err and the errors it annotates,
// outermost first.
func ErrorChain(err error) []string {
	var chain []string
	for err != nil {
		ctx, ok := err.(*ContextError)
		if !ok {
			chain = append(chain, err.Error())
			break
		}
		chain = append(chain, ctx.Msg)
		err = ctx.Err
	}
	return chain
}
