package token

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from source text.  Scanning is
// forward only; a Scanner cannot be rewound.
type Scanner struct {
	file string
	src  string

	start     int // start of the current token
	startLine int
	startCol  int

	pos  int // index of the rune following c
	line int // line of the rune at pos
	col  int // column of the rune at pos
	c    rune
}

// NewScanner initializes and returns a new Scanner over src.  The file name is
// only used to annotate token locations.
func NewScanner(file string, src string) *Scanner {
	s := &Scanner{
		file: file,
		src:  src,
		line: 1,
		col:  1,
	}
	s.Ignore()
	return s
}

// EmitToken returns a token containing the text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.pos
	s.startLine = s.line
	s.startCol = s.col
}

// Text returns a string containing text scanned since the last call to either
// EmitToken or Ignore.
func (s *Scanner) Text() string {
	return s.src[s.start:s.pos]
}

// Rune returns the current unicode rune that is being scanned.  The rune
// returned by Rune is the last rune in a token returned by EmitToken.
func (s *Scanner) Rune() rune {
	return s.c
}

// Peek returns the next rune to be scanned, if there are any.  If an invalid
// utf-8 sequence or the end of input prevents futher runes from being scanned
// Peek returns a false second value and the next call to ScanRune will return
// an error that reflects the cause.
func (s *Scanner) Peek() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	c, n := utf8.DecodeRuneInString(s.src[s.pos:])
	if c == utf8.RuneError && n == 1 {
		return utf8.RuneError, false
	}
	return c, true
}

// ScanRune attempts to scan a utf-8 rune from the input for inclusion in the
// current token.  ScanRune returns io.EOF when the input is exhausted.
func (s *Scanner) ScanRune() error {
	if s.pos >= len(s.src) {
		return io.EOF
	}
	c, n := utf8.DecodeRuneInString(s.src[s.pos:])
	if c == utf8.RuneError && n == 1 {
		return &InvalidUTF8Error{
			File: s.file,
			Pos:  s.pos,
			Byte: s.src[s.pos],
		}
	}
	s.c = c
	s.pos += n
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return nil
}

// LocStart returns a Location referencing the beginning of the current token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.start,
		Line: s.startLine,
		Col:  s.startCol,
	}
}

// Loc returns a Location referencing the current scanner position.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}

// InvalidUTF8Error is returned by ScanRune when the source is not valid utf-8.
type InvalidUTF8Error struct {
	File string
	Pos  int
	Byte byte
}

func (err *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("%s: invalid utf-8 sequence starting with byte %q at offset %d", err.File, err.Byte, err.Pos)
}
