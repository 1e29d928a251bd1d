package rdparser

import (
	"errors"
	"strings"
	"testing"

	"github.com/bmatsuo/risp/lisp"
	"github.com/bmatsuo/risp/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string, opts ...Option) ([]*lisp.LVal, error) {
	t.Helper()
	return New(token.NewScanner("test", src), opts...).ParseProgram()
}

func parseOne(t *testing.T, src string) *lisp.LVal {
	t.Helper()
	exprs, err := parse(t, src)
	require.NoError(t, err, "source: %q", src)
	require.Len(t, exprs, 1, "source: %q", src)
	return exprs[0]
}

func assertLVal(t *testing.T, expect, v *lisp.LVal, context ...string) {
	t.Helper()
	assert.True(t, lisp.Equal(expect, v), "%s: expected %v (got %v)", strings.Join(context, " "), expect, v)
}

func TestParseAtom(t *testing.T) {
	tests := []struct {
		text   string
		expect *lisp.LVal
	}{
		{"42", lisp.Int(42)},
		{"-17", lisp.Int(-17)},
		{"+5", lisp.Int(5)},
		{"0", lisp.Int(0)},
		{"3.5", lisp.Ratio(7, 2)},
		{"0.1", lisp.Ratio(1, 10)},
		{"-0.25", lisp.Ratio(-1, 4)},
		{".5", lisp.Ratio(1, 2)},
		{"1e3", lisp.Int(1000)},
		{"2.5e-1", lisp.Ratio(1, 4)},
		{":foo", lisp.Keyword(":foo")},
		{":", lisp.Keyword(":")},
		{`"hi"`, lisp.String("hi")},
		{`""`, lisp.String("")},
		{`"a b"`, lisp.String("a b")},
		{"bar", lisp.Symbol("bar")},
		{"-", lisp.Symbol("-")},
		{"+", lisp.Symbol("+")},
		{".", lisp.Symbol(".")},
		{"1/2", lisp.Symbol("1/2")},
		{"inf", lisp.Symbol("inf")},
		{"1x", lisp.Symbol("1x")},
		{"'foo", lisp.Symbol("'foo")},
	}
	for _, test := range tests {
		v, err := ParseAtom(test.text)
		if !assert.Nil(t, err, "text: %q", test.text) {
			continue
		}
		assertLVal(t, test.expect, v, test.text)
	}
}

func TestParseAtom_bigInt(t *testing.T) {
	v, err := ParseAtom("123456789012345678901234567890")
	require.Nil(t, err)
	assert.Equal(t, lisp.LNumber, v.Type)
	assert.Equal(t, "123456789012345678901234567890", v.String())
}

func TestParseAtom_malformedString(t *testing.T) {
	for _, text := range []string{`"`, `"abc`, `"a"b"`, `abc"`} {
		v, err := ParseAtom(text)
		if text == `abc"` {
			// a quote which does not begin the token is part of a symbol
			require.Nil(t, err)
			assertLVal(t, lisp.Symbol(text), v)
			continue
		}
		require.NotNil(t, err, "text: %q", text)
		assert.True(t, errors.Is(err, lisp.ErrTokenizeMalformedLiteral), "text: %q", text)
	}
}

func TestParseForm(t *testing.T) {
	v := parseOne(t, "(println 1 2)")
	assertLVal(t, lisp.Form(lisp.Symbol("println"), lisp.Int(1), lisp.Int(2)), v)
	require.Len(t, v.Cells, 3)
	assert.Equal(t, lisp.LSymbol, v.Cells[0].Type)
	assert.Equal(t, "println", v.Cells[0].Str)
}

func TestParseSequences(t *testing.T) {
	tests := []struct {
		src    string
		expect *lisp.LVal
	}{
		{"()", lisp.Form()},
		{"'()", lisp.List()},
		{"[]", lisp.Vector()},
		{"{}", lisp.Map()},
		{"#{}", lisp.Set()},
		{"(conj '(1 2) 3)", lisp.Form(lisp.Symbol("conj"), lisp.List(lisp.Int(1), lisp.Int(2)), lisp.Int(3))},
		{"[1 [2 3] '(x)]", lisp.Vector(lisp.Int(1), lisp.Vector(lisp.Int(2), lisp.Int(3)), lisp.List(lisp.Symbol("x")))},
		{"#{1 :a \"s\" 1}", lisp.Set(lisp.Int(1), lisp.Keyword(":a"), lisp.String("s"))},
		{"'((foo) [bar])", lisp.List(lisp.Form(lisp.Symbol("foo")), lisp.Vector(lisp.Symbol("bar")))},
	}
	for _, test := range tests {
		v := parseOne(t, test.src)
		assertLVal(t, test.expect, v, test.src)
	}
}

func TestParseMap(t *testing.T) {
	v := parseOne(t, `{:a 1 "b" [2] :a 3}`)
	require.Equal(t, lisp.LMap, v.Type)
	assert.Equal(t, 2, v.Len())
	ent, ok, err := v.Table.Get(lisp.Keyword(":a"))
	require.NoError(t, err)
	require.True(t, ok)
	assertLVal(t, lisp.Int(3), ent.Val)
	ent, ok, err = v.Table.Get(lisp.String("b"))
	require.NoError(t, err)
	require.True(t, ok)
	assertLVal(t, lisp.Vector(lisp.Int(2)), ent.Val)
	assert.Equal(t, `{:a 3 "b" [2]}`, v.String())
}

func TestParseProgram(t *testing.T) {
	exprs, err := parse(t, `1 :a "s" (f)`)
	require.NoError(t, err)
	require.Len(t, exprs, 4)
	assertLVal(t, lisp.Int(1), exprs[0])
	assertLVal(t, lisp.Keyword(":a"), exprs[1])
	assertLVal(t, lisp.String("s"), exprs[2])
	assertLVal(t, lisp.Form(lisp.Symbol("f")), exprs[3])

	exprs, err = parse(t, "  \n ")
	require.NoError(t, err)
	assert.Len(t, exprs, 0)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind lisp.ErrorKind
	}{
		{"(1 2", lisp.ErrParseUnexpectedEnd},
		{"'(1 (2", lisp.ErrParseUnexpectedEnd},
		{"[1", lisp.ErrParseUnexpectedEnd},
		{"#{1", lisp.ErrParseUnexpectedEnd},
		{"{:a 1", lisp.ErrParseUnexpectedEnd},
		{")", lisp.ErrParseUnexpectedClose},
		{"1 2 ]", lisp.ErrParseUnexpectedClose},
		{"(1 2]", lisp.ErrParseUnexpectedClose},
		{"[1 2)", lisp.ErrParseUnexpectedClose},
		{"'(1 }", lisp.ErrParseUnexpectedClose},
		{"#{1 2]", lisp.ErrParseUnexpectedClose},
		{"#(inc 1)", lisp.ErrParseInvalidAtom},
		{`(println "oops)`, lisp.ErrTokenizeMalformedLiteral},
		{`"oops`, lisp.ErrTokenizeMalformedLiteral},
		{"(a \xff)", lisp.ErrTokenizeMalformedLiteral},
		{"{:a}", lisp.ErrParseMissingValue},
		{"{[1] 2}", lisp.ErrParseInvalidKey},
		{"{'(1) 2}", lisp.ErrParseInvalidKey},
		{"#{(a)}", lisp.ErrParseInvalidKey},
		{"#{{}}", lisp.ErrParseInvalidKey},
	}
	for _, test := range tests {
		exprs, err := parse(t, test.src)
		assert.Nil(t, exprs, "source: %q", test.src)
		if assert.Error(t, err, "source: %q", test.src) {
			assert.True(t, errors.Is(err, test.kind), "source: %q: expected %v (got %v)", test.src, test.kind, err)
		}
	}
}

func TestParseUnexpectedEnd_message(t *testing.T) {
	_, err := parse(t, "(1 2")
	require.Error(t, err)
	assert.Equal(t, "test:1:5: unexpected-end: unexpected end of input, expected ) to close ( at test:1:1", err.Error())
}

func TestParseMaxDepth(t *testing.T) {
	_, err := parse(t, "(((1)))", MaxDepth(3))
	assert.NoError(t, err)
	_, err = parse(t, "((((1))))", MaxDepth(3))
	assert.True(t, errors.Is(err, lisp.ErrParseTooDeep), "unexpected error: %v", err)
	_, err = parse(t, "[{:a #{1}}]", MaxDepth(2))
	assert.True(t, errors.Is(err, lisp.ErrParseTooDeep), "unexpected error: %v", err)

	deep := strings.Repeat("(", 100000) + strings.Repeat(")", 100000)
	_, err = parse(t, deep)
	assert.True(t, errors.Is(err, lisp.ErrParseTooDeep), "unexpected error: %v", err)
}

func TestParseSource(t *testing.T) {
	v := parseOne(t, "(foo\n  bar)")
	require.Len(t, v.Cells, 2)
	assert.Equal(t, &token.Location{File: "test", Pos: 0, Line: 1, Col: 1}, v.Source)
	assert.Equal(t, &token.Location{File: "test", Pos: 7, Line: 2, Col: 3}, v.Cells[1].Source)
}

func TestReader(t *testing.T) {
	r := NewReader(MaxDepth(1))
	exprs, err := r.Read("test", "(a) [b]")
	require.NoError(t, err)
	assert.Len(t, exprs, 2)
	_, err = r.Read("test", "((a))")
	assert.True(t, errors.Is(err, lisp.ErrParseTooDeep), "unexpected error: %v", err)
}
