package repl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bmatsuo/risp/lisp"
	"github.com/bmatsuo/risp/parser/rdparser"
)

// ErrInterrupted is returned by a LineReader when the user interrupts input
// (e.g. with ctrl-c).  An interrupt terminates the session.
var ErrInterrupted = errors.New("interrupted")

// LineReader reads lines of user input.  ReadLine returns io.EOF at the end of
// input, ErrInterrupted if the user interrupted the prompt, and any other
// error if input cannot be read at all.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// Policy determines how a session handles an error in a single iteration.
type Policy int

const (
	// Fatal ends the session on the first parse or evaluation error.
	Fatal Policy = iota
	// KeepGoing prints parse and evaluation errors and reads the next
	// line.  Interrupts and read errors still end the session.
	KeepGoing
)

// Session is a read-eval-print loop.
type Session struct {
	Runtime *lisp.Runtime
	Lines   LineReader
	Prompt  string
	Policy  Policy
	Stdout  io.Writer
	Stderr  io.Writer
}

// Option configures a Session.
type Option func(s *Session)

// WithPolicy sets the error policy of a session.
func WithPolicy(p Policy) Option {
	return func(s *Session) {
		s.Policy = p
	}
}

// WithPrompt sets the prompt name of a session.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.Prompt = prompt
	}
}

// WithOutput makes a session write its results and notices to stdout and
// handled errors to stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(s *Session) {
		s.Stdout = stdout
		s.Stderr = stderr
	}
}

// NewSession returns a session evaluating lines from lines in rt.  If rt has
// no reader a default rdparser reader is used.
func NewSession(rt *lisp.Runtime, lines LineReader, opts ...Option) *Session {
	if rt.Reader == nil {
		rt.Reader = rdparser.NewReader()
	}
	s := &Session{
		Runtime: rt,
		Lines:   lines,
		Prompt:  "risp",
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
	for _, fn := range opts {
		fn(s)
	}
	return s
}

// Run reads and evaluates lines until the end of input, which returns nil.
// An interrupt or read error terminates the session with an error, as does a
// parse or evaluation error under the Fatal policy.
func (s *Session) Run() error {
	fmt.Fprintln(s.Stdout, "** risp **")
	for {
		line, err := s.Lines.ReadLine(s.Prompt + " >> ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.Stdout, "Exiting...")
			return nil
		}
		if errors.Is(err, ErrInterrupted) {
			fmt.Fprintln(s.Stdout, "CTRL-C")
		}
		if err != nil {
			return lisp.Wrapf(err, "error reading user input")
		}
		err = s.Eval(line)
		if err == nil {
			continue
		}
		if s.Policy != KeepGoing {
			return err
		}
		WriteErrorChain(s.Stderr, err)
	}
}

// Eval parses line and evaluates each value in it, printing the results.
func (s *Session) Eval(line string) error {
	exprs, err := s.Runtime.Reader.Read("repl", line)
	if err != nil {
		return lisp.Wrapf(err, "error parsing tokens into s-expressions")
	}
	for _, expr := range exprs {
		v, err := s.Runtime.Eval(expr)
		if err != nil {
			return lisp.Wrapf(err, "error evaluating ast")
		}
		fmt.Fprintln(s.Stdout, v)
	}
	return nil
}

// WriteErrorChain writes err to w, one line for each error in its chain.
func WriteErrorChain(w io.Writer, err error) {
	for i, msg := range lisp.ErrorChain(err) {
		if i == 0 {
			fmt.Fprintf(w, "error: %s\n", msg)
		} else {
			fmt.Fprintf(w, "caused by: %s\n", msg)
		}
	}
}
