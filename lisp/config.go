package lisp

import "io"

// Config is a function that configures a Runtime.
type Config func(rt *Runtime)

// WithReader returns a Config that makes the runtime use r to parse source
// text.  There is no default Reader for a runtime.
func WithReader(r Reader) Config {
	return func(rt *Runtime) {
		rt.Reader = r
	}
}

// WithStdout returns a Config that makes builtins write output to w instead
// of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(rt *Runtime) {
		rt.Stdout = w
	}
}

// WithStderr returns a Config that makes the runtime write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(rt *Runtime) {
		rt.Stderr = w
	}
}

// WithTrace returns a Config that makes the runtime write each evaluated
// expression and its result to its stderr.
func WithTrace(trace bool) Config {
	return func(rt *Runtime) {
		rt.Trace = trace
	}
}
