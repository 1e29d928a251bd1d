package rdparser

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/bmatsuo/risp/lisp"
	"github.com/bmatsuo/risp/parser/lexer"
	"github.com/bmatsuo/risp/parser/token"
)

// DefaultMaxDepth is the default limit on the nesting of sequences.
const DefaultMaxDepth = 1000

// maxDecimalExponent bounds the exponent of a float literal which is converted
// to an exact rational.  Literals with larger exponents are converted through
// float64.
const maxDecimalExponent = 400

var decimalFloat = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE]([+-]?[0-9]+))?$`)

type reader struct {
	opts []Option
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader(opts ...Option) lisp.Reader {
	return &reader{opts: opts}
}

// Read implements lisp.Reader.
func (r *reader) Read(name string, src string) ([]*lisp.LVal, error) {
	s := token.NewScanner(name, src)
	p := New(s, r.opts...)
	return p.ParseProgram()
}

// Option configures a Parser.
type Option func(p *Parser)

// MaxDepth returns an Option that limits the nesting of sequences to n
// levels.  Deeper input fails with lisp.ErrParseTooDeep.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// Parser is a lisp parser.
type Parser struct {
	lex      *lexer.Lexer
	curr     *token.Token
	peek     *token.Token
	maxDepth int
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner, opts ...Option) *Parser {
	p := &Parser{
		lex:      lexer.New(scanner),
		maxDepth: DefaultMaxDepth,
	}
	for _, fn := range opts {
		fn(p)
	}
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
	return p
}

// ParseProgram parses all remaining values in the token stream.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for !p.IsEOF() {
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses one value from the token stream.
func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	return p.parseExpression(0)
}

func (p *Parser) parseExpression(depth int) (*lisp.LVal, error) {
	tok := p.ReadToken()
	switch tok.Type {
	case token.PAREN_L:
		return p.parseSequence(lisp.Form(), depth+1)
	case token.LIST_L:
		return p.parseSequence(lisp.List(), depth+1)
	case token.BRACKET_L:
		return p.parseSequence(lisp.Vector(), depth+1)
	case token.BRACE_L:
		return p.parseSequence(lisp.Map(), depth+1)
	case token.SET_L:
		return p.parseSequence(lisp.Set(), depth+1)
	case token.FN_L:
		return nil, p.errorf(lisp.ErrParseInvalidAtom, "function literals are not supported: %s", tok.Text)
	case token.PAREN_R, token.BRACKET_R, token.BRACE_R:
		return nil, p.errorf(lisp.ErrParseUnexpectedClose, "unexpected %s", tok.Text)
	case token.STRING, token.ATOM:
		return p.parseAtom(tok)
	case token.ERROR:
		return nil, p.errorf(lisp.ErrTokenizeMalformedLiteral, "%s", tok.Text)
	case token.EOF:
		return nil, p.errorf(lisp.ErrParseUnexpectedEnd, "unexpected end of input")
	default:
		return nil, p.errorf(lisp.ErrParseInvalidAtom, "unexpected %s", tok.Type)
	}
}

// parseSequence parses values into seq until the delimiter closing the
// current token is read.  The token stream must not end before the sequence
// is closed.
func (p *Parser) parseSequence(seq *lisp.LVal, depth int) (*lisp.LVal, error) {
	open := p.Token()
	seq.Source = open.Source
	if depth > p.maxDepth {
		return nil, p.errorf(lisp.ErrParseTooDeep, "nesting exceeds %d levels", p.maxDepth)
	}
	closer := closerFor(open.Type)
	var key *lisp.LVal // a map key awaiting its value
	for {
		switch p.PeekType() {
		case token.EOF:
			p.ReadToken()
			return nil, p.errorf(lisp.ErrParseUnexpectedEnd,
				"unexpected end of input, expected %s to close %s at %s", closer, open.Text, open.Source)
		case token.PAREN_R, token.BRACKET_R, token.BRACE_R:
			tok := p.ReadToken()
			if tok.Type != closer {
				return nil, p.errorf(lisp.ErrParseUnexpectedClose,
					"unexpected %s, expected %s to close %s at %s", tok.Text, closer, open.Text, open.Source)
			}
			if key != nil {
				return nil, p.errorf(lisp.ErrParseMissingValue, "map key %v has no value", key)
			}
			return seq, nil
		}
		x, err := p.parseExpression(depth)
		if err != nil {
			return nil, err
		}
		switch seq.Type {
		case lisp.LMap:
			if key == nil {
				if !x.IsAtom() {
					return nil, p.errorf(lisp.ErrParseInvalidKey, "map key is a %s: %v", x.Type, x)
				}
				key = x
				continue
			}
			err = seq.MapPut(key, x)
			key = nil
		case lisp.LSet:
			if !x.IsAtom() {
				return nil, p.errorf(lisp.ErrParseInvalidKey, "set element is a %s: %v", x.Type, x)
			}
			err = seq.SetAdd(x)
		default:
			err = seq.Append(x)
		}
		if err != nil {
			return nil, err
		}
	}
}

func closerFor(typ token.Type) token.Type {
	switch typ {
	case token.BRACKET_L:
		return token.BRACKET_R
	case token.BRACE_L, token.SET_L:
		return token.BRACE_R
	default:
		return token.PAREN_R
	}
}

func (p *Parser) parseAtom(tok *token.Token) (*lisp.LVal, error) {
	v, err := ParseAtom(tok.Text)
	if err != nil {
		err.Source = tok.Source
		return nil, err
	}
	v.Source = tok.Source
	return v, nil
}

// ParseAtom classifies the text of a single token.  Strings are recognized
// first, then keywords, integers and decimal floats.  Any other text is a
// symbol.
func ParseAtom(text string) (*lisp.LVal, *lisp.Error) {
	if text == "" {
		return nil, lisp.Errorf(lisp.ErrParseInvalidAtom, "empty token")
	}
	if strings.HasPrefix(text, `"`) {
		if len(text) < 2 || !strings.HasSuffix(text, `"`) || strings.Contains(text[1:len(text)-1], `"`) {
			return nil, lisp.Errorf(lisp.ErrTokenizeMalformedLiteral, "unterminated string literal: %s", text)
		}
		return lisp.String(text[1 : len(text)-1]), nil
	}
	if strings.HasPrefix(text, ":") {
		return lisp.Keyword(text), nil
	}
	if x, ok := new(big.Int).SetString(text, 10); ok {
		return lisp.Number(new(big.Rat).SetInt(x)), nil
	}
	if x, ok := parseDecimal(text); ok {
		return lisp.Number(x), nil
	}
	return lisp.Symbol(text), nil
}

func parseDecimal(text string) (*big.Rat, bool) {
	m := decimalFloat.FindStringSubmatch(text)
	if m == nil || !strings.ContainsAny(text, "0123456789") {
		return nil, false
	}
	if m[1] != "" {
		exp, err := strconv.Atoi(m[1])
		if err != nil || exp > maxDecimalExponent || exp < -maxDecimalExponent {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, false
			}
			x := new(big.Rat)
			if x.SetFloat64(f) == nil {
				return nil, false
			}
			return x, true
		}
	}
	return new(big.Rat).SetString(text)
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

// IsEOF returns true if the token stream has been exhausted.
func (p *Parser) IsEOF() bool {
	return p.peek.Type == token.EOF
}

func (p *Parser) errorf(kind lisp.ErrorKind, format string, v ...interface{}) *lisp.Error {
	err := lisp.Errorf(kind, format, v...)
	err.Source = p.Token().Source
	return err
}
