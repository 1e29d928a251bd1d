package repl

import (
	"io"

	"github.com/chzyer/readline"
)

type readlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader returns a LineReader that edits lines with readline.  When
// history is not empty input is appended to that file as it is read.
func NewReadlineReader(history string) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     history,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, err
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	switch {
	case err == readline.ErrInterrupt:
		return "", ErrInterrupted
	case err == io.EOF:
		return "", io.EOF
	case err != nil:
		return "", err
	}
	return line, nil
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}
