package token

import "fmt"

type Token struct {
	Type   Type
	Text   string
	Source *Location
}

func (tok *Token) String() string {
	if tok.Type == EOF {
		return tok.Type.String()
	}
	return fmt.Sprintf("%s %q", tok.Type, tok.Text)
}

type Type uint

// Type constants used for the risp lexer/parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	// ATOM is any token which is not a delimiter or a well formed string.
	// The parser classifies its text into a keyword, number or symbol.
	ATOM
	STRING

	// Delimiters
	PAREN_L   // (
	PAREN_R   // )
	FN_L      // #(
	LIST_L    // '(
	BRACKET_L // [
	BRACKET_R // ]
	BRACE_L   // {
	SET_L     // #{
	BRACE_R   // }

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:   "invalid",
		ERROR:     "error",
		EOF:       "EOF",
		ATOM:      "atom",
		STRING:    "string",
		PAREN_L:   "(",
		PAREN_R:   ")",
		FN_L:      "#(",
		LIST_L:    "'(",
		BRACKET_L: "[",
		BRACKET_R: "]",
		BRACE_L:   "{",
		SET_L:     "#{",
		BRACE_R:   "}",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// IsOpen returns true if typ begins a sequence.
func (typ Type) IsOpen() bool {
	switch typ {
	case PAREN_L, FN_L, LIST_L, BRACKET_L, BRACE_L, SET_L:
		return true
	}
	return false
}

// IsClose returns true if typ terminates a sequence.
func (typ Type) IsClose() bool {
	switch typ {
	case PAREN_R, BRACKET_R, BRACE_R:
		return true
	}
	return false
}

type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc == nil:
		return "<unknown>"
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
