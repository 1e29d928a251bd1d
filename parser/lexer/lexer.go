package lexer

import (
	"io"
	"strings"
	"unicode"

	"github.com/bmatsuo/risp/parser/token"
)

// atomTerminators are the runes (other than whitespace) which end a generic
// atom.  Opening delimiters are only significant at the start of a token.
const atomTerminators = "\")]}"

// Lexer produces a finite, forward-only stream of tokens from a
// token.Scanner.  Once NextToken has returned an EOF token every subsequent
// call returns EOF as well.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune
	done    bool
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// Tokenize scans all tokens in src.  The terminating EOF token is not
// included in the returned slice.
func Tokenize(name string, src string) []*token.Token {
	lex := New(token.NewScanner(name, src))
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func (lex *Lexer) NextToken() *token.Token {
	if lex.done {
		return lex.emit(token.EOF, "")
	}
	err := lex.skipWhitespace()
	if err != nil {
		return lex.emitError(err)
	}
	err = lex.readChar()
	if err != nil {
		return lex.emitError(err)
	}
	switch lex.ch {
	case '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case '[':
		return lex.scanner.EmitToken(token.BRACKET_L)
	case ']':
		return lex.scanner.EmitToken(token.BRACKET_R)
	case '{':
		return lex.scanner.EmitToken(token.BRACE_L)
	case '}':
		return lex.scanner.EmitToken(token.BRACE_R)
	case '#':
		switch lex.peekRune() {
		case '(':
			return lex.pairToken(token.FN_L)
		case '{':
			return lex.pairToken(token.SET_L)
		}
		return lex.readAtom()
	case '\'':
		if lex.peekRune() == '(' {
			return lex.pairToken(token.LIST_L)
		}
		return lex.readAtom()
	case '"':
		return lex.readString()
	default:
		return lex.readAtom()
	}
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

// emitError terminates the token stream.  The end of input is not an error,
// it produces the EOF token.
func (lex *Lexer) emitError(err error) *token.Token {
	lex.done = true
	if err == io.EOF {
		return lex.emit(token.EOF, "")
	}
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) pairToken(typ token.Type) *token.Token {
	err := lex.readChar()
	if err != nil {
		return lex.emitError(err)
	}
	return lex.scanner.EmitToken(typ)
}

// readString scans a string literal.  A literal which is not closed before a
// closing delimiter or the end of input is emitted as an ATOM so that the
// parser can reject it.
func (lex *Lexer) readString() *token.Token {
	for {
		c, ok := lex.scanner.Peek()
		if !ok {
			return lex.scanner.EmitToken(token.ATOM)
		}
		switch c {
		case '"':
			err := lex.readChar()
			if err != nil {
				return lex.emitError(err)
			}
			return lex.scanner.EmitToken(token.STRING)
		case ')', ']', '}':
			return lex.scanner.EmitToken(token.ATOM)
		}
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err)
		}
	}
}

func (lex *Lexer) readAtom() *token.Token {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !isAtom(c) {
			return lex.scanner.EmitToken(token.ATOM)
		}
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err)
		}
	}
}

func (lex *Lexer) skipWhitespace() error {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !unicode.IsSpace(c) {
			break
		}
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	err := lex.scanner.ScanRune()
	if err != nil {
		return err
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isAtom(c rune) bool {
	return !unicode.IsSpace(c) && !strings.ContainsRune(atomTerminators, c)
}
