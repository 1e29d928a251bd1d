package risptest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bmatsuo/risp/lisp"
	"github.com/bmatsuo/risp/parser/rdparser"
	"github.com/stretchr/testify/assert"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a lisp.Runtime.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the printed result, or "error: KIND" when evaluation fails
	Output string // text written to stdout while evaluating Expr
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// Result returns the printed form of v or, if err is not nil, a string
// identifying the kind of err.
func Result(v *lisp.LVal, err error) string {
	if err == nil {
		return v.String()
	}
	var lerr *lisp.Error
	if errors.As(err, &lerr) {
		return "error: " + lerr.Kind.String()
	}
	return "error: " + err.Error()
}

// RunTestSuite runs each TestSequence in tests on an isolated lisp.Runtime.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var stdout bytes.Buffer
		rt := lisp.NewRuntime(
			lisp.WithReader(rdparser.NewReader()),
			lisp.WithStdout(&stdout),
			lisp.WithStderr(&stdout),
		)
		for j, expr := range test.TestSequence {
			stdout.Reset()
			result := Result(rt.LoadString("test", expr.Expr))
			assert.Equal(t, expr.Result, result, "test %d %q: expr %d: %s", i, test.Name, j, expr.Expr)
			assert.Equal(t, expr.Output, stdout.String(), "test %d %q: expr %d: %s", i, test.Name, j, expr.Expr)
		}
	}
}
