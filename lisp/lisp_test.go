package lisp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLTypeString(t *testing.T) {
	assert.Equal(t, "keyword", LKeyword.String())
	assert.Equal(t, "set", LSet.String())
	assert.Equal(t, "INVALID", LType(1000).String())
	for _, typ := range []LType{LNil, LNumber, LSymbol, LString, LKeyword} {
		assert.True(t, typ.IsAtom(), "type: %v", typ)
		assert.False(t, typ.IsSequence(), "type: %v", typ)
	}
	for _, typ := range []LType{LForm, LList, LVector, LMap, LSet} {
		assert.False(t, typ.IsAtom(), "type: %v", typ)
		assert.True(t, typ.IsSequence(), "type: %v", typ)
	}
	assert.False(t, LFun.IsAtom())
	assert.False(t, LFun.IsSequence())
}

func TestNumber(t *testing.T) {
	v := Ratio(14, 4)
	assert.Equal(t, "7/2", v.String())
	assert.False(t, v.IsInt())
	assert.True(t, Equal(v, Ratio(7, 2)))
	assert.True(t, Equal(Ratio(4, 2), Int(2)))
	assert.True(t, Ratio(4, 2).IsInt())
	assert.Equal(t, "2", Ratio(4, 2).String())
	assert.Equal(t, "-3", Int(-3).String())
	assert.Equal(t, "-1/3", Ratio(1, -3).String())

	x := big.NewRat(1, 2)
	v = Number(x)
	x.SetInt64(5)
	assert.Equal(t, "1/2", v.String())
}

func TestString(t *testing.T) {
	tests := []struct {
		v      *LVal
		expect string
	}{
		{Nil(), "nil"},
		{nil, "nil"},
		{Symbol("foo"), "foo"},
		{Keyword("foo"), ":foo"},
		{Keyword(":foo"), ":foo"},
		{String("a \"b\""), `"a \"b\""`},
		{Form(Symbol("f"), Int(1)), "(f 1)"},
		{Form(), "()"},
		{List(Int(1), String("a")), `'(1 "a")`},
		{List(), "'()"},
		{Vector(Int(1), Vector()), "[1 []]"},
		{Set(Int(2), Int(1), Int(2)), "#{2 1}"},
		{Set(), "#{}"},
		{Map(), "{}"},
		{Fun(&Builtin{Name: "conj"}), "<builtin conj>"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expect, test.v.String())
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Nil(), nil))
	assert.True(t, Equal(Symbol("a"), Symbol("a")))
	assert.False(t, Equal(Symbol("a"), String("a")))
	assert.False(t, Equal(Keyword("a"), Symbol(":a")))
	assert.False(t, Equal(List(Int(1)), Vector(Int(1))))
	assert.False(t, Equal(List(Int(1)), List(Int(1), Int(2))))
	assert.True(t, Equal(List(Int(1), List(String("x"))), List(Int(1), List(String("x")))))
	assert.True(t, Equal(Set(Int(1), Int(2)), Set(Int(2), Int(1))))
	assert.False(t, Equal(Set(Int(1)), Set(Int(1), Int(2))))

	m1 := Map()
	require.NoError(t, m1.MapPut(Keyword("a"), Int(1)))
	require.NoError(t, m1.MapPut(Keyword("b"), List()))
	m2 := Map()
	require.NoError(t, m2.MapPut(Keyword("b"), List()))
	require.NoError(t, m2.MapPut(Keyword("a"), Int(1)))
	assert.True(t, Equal(m1, m2))
	require.NoError(t, m2.MapPut(Keyword("a"), Int(2)))
	assert.False(t, Equal(m1, m2))
}

func TestTable(t *testing.T) {
	m := Map()
	require.NoError(t, m.MapPut(Int(2), String("two")))
	require.NoError(t, m.MapPut(Symbol("a"), String("sym")))
	require.NoError(t, m.MapPut(String("a"), String("str")))
	require.NoError(t, m.MapPut(Ratio(4, 2), String("TWO")))
	require.NoError(t, m.MapPut(Nil(), Int(0)))
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, `{2 "TWO" a "sym" "a" "str" nil 0}`, m.String())

	ent, ok, err := m.Table.Get(Int(2))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "TWO", ent.Val.Str)

	_, ok, err = m.Table.Get(Keyword("a"))
	require.NoError(t, err)
	assert.False(t, ok)

	err = m.MapPut(List(), Int(1))
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	_, _, err = m.Table.Get(Vector())
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestSet(t *testing.T) {
	s := Set()
	require.NoError(t, s.SetAdd(Keyword("a")))
	require.NoError(t, s.SetAdd(Keyword("a")))
	require.NoError(t, s.Append(Int(1)))
	assert.Equal(t, 2, s.Len())
	assert.ErrorIs(t, s.SetAdd(Form()), ErrUnsupportedOperation)
	assert.Panics(t, func() { Set(List()) })
}

func TestAppend(t *testing.T) {
	for _, v := range []*LVal{Form(), List(), Vector()} {
		require.NoError(t, v.Append(Int(1)))
		assert.Equal(t, 1, v.Len())
	}
	assert.ErrorIs(t, Map().Append(Int(1)), ErrUnsupportedOperation)
	assert.ErrorIs(t, Int(1).Append(Int(1)), ErrUnsupportedOperation)
	assert.ErrorIs(t, List().MapPut(Int(1), Int(1)), ErrUnsupportedOperation)
	assert.ErrorIs(t, List().SetAdd(Int(1)), ErrUnsupportedOperation)
	assert.Equal(t, 0, Int(1).Len())
}
