// Package parser provides the risp reader.
//
// 	expr    := form | list | vector | map | set | atom
// 	form    := '(' expr* ')'
// 	list    := "'(" expr* ')'
// 	vector  := '[' expr* ']'
// 	map     := '{' (atom expr)* '}'
// 	set     := '#{' atom* '}'
// 	atom    := string | keyword | integer | decimal | symbol
// 	string  := '"' /[^")\]}]*/ '"'
// 	keyword := ':' /[^\s")\]}]*/
// 	symbol  := /[^\s")\]}]+/
//
// The token "#(" is reserved for function literals and is rejected by the
// parser.
package parser

import (
	"github.com/bmatsuo/risp/lisp"
	"github.com/bmatsuo/risp/parser/rdparser"
	"github.com/bmatsuo/risp/parser/token"
)

// NewReader returns a lisp.Reader which parses source using a recursive
// descent parser.  Sequences may be nested at most maxDepth levels.  A
// non-positive maxDepth uses rdparser.DefaultMaxDepth.
func NewReader(maxDepth int) lisp.Reader {
	if maxDepth <= 0 {
		return rdparser.NewReader()
	}
	return rdparser.NewReader(rdparser.MaxDepth(maxDepth))
}

// ParseLVal parses all values in text.
func ParseLVal(name string, text string) ([]*lisp.LVal, error) {
	p := rdparser.New(token.NewScanner(name, text))
	return p.ParseProgram()
}
