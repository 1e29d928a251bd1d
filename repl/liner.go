package repl

import (
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

type linerReader struct {
	state   *liner.State
	history string
}

// NewLinerReader returns a LineReader that edits lines with liner.  When
// history is not empty, previous input is loaded from that file and new
// input is saved to it on Close.
func NewLinerReader(history string) LineReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	if history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &linerReader{
		state:   state,
		history: history,
	}
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	switch {
	case err == liner.ErrPromptAborted:
		return "", ErrInterrupted
	case err == io.EOF:
		return "", io.EOF
	case err != nil:
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

func (r *linerReader) Close() error {
	var herr error
	if r.history != "" {
		f, err := os.Create(r.history)
		if err == nil {
			_, herr = r.state.WriteHistory(f)
			if err := f.Close(); herr == nil {
				herr = err
			}
		} else {
			herr = err
		}
	}
	err := r.state.Close()
	if err != nil {
		return err
	}
	return herr
}
