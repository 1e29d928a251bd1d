package lisp

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/bmatsuo/risp/parser/token"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	// Atoms
	LNil
	LNumber
	LSymbol
	LString
	LKeyword
	// Sequences
	LForm
	LList
	LVector
	LMap
	LSet
	// LFun is a namespace builtin.  It is only produced by evaluating a
	// symbol and never by the reader.
	LFun
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LNil:     "nil",
	LNumber:  "number",
	LSymbol:  "symbol",
	LString:  "string",
	LKeyword: "keyword",
	LForm:    "form",
	LList:    "list",
	LVector:  "vector",
	LMap:     "map",
	LSet:     "set",
	LFun:     "function",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// IsAtom returns true if values of type t are leaf data.  Only atoms may be
// used as map keys or set elements.
func (t LType) IsAtom() bool {
	switch t {
	case LNil, LNumber, LSymbol, LString, LKeyword:
		return true
	}
	return false
}

// IsSequence returns true if values of type t contain other values.
func (t LType) IsSequence() bool {
	switch t {
	case LForm, LList, LVector, LMap, LSet:
		return true
	}
	return false
}

// LVal is a lisp value.  The Type field selects which of the remaining fields
// hold data.
type LVal struct {
	Type LType

	// Num holds an LNumber in lowest terms.
	Num *big.Rat
	// Str holds the text of an LSymbol, LString or LKeyword.  Keywords
	// include their leading colon.
	Str string
	// Cells holds the elements of an LForm, LList or LVector.
	Cells []*LVal
	// Table holds the entries of an LMap or the elements of an LSet.
	Table *Table
	// Fun holds the builtin of an LFun.
	Fun *Builtin

	Source *token.Location
}

// Nil returns an LVal representing the absence of a value.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// Number returns an LVal representing the rational x.  The returned value
// does not share memory with x.
func Number(x *big.Rat) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  new(big.Rat).Set(x),
	}
}

// Int returns an LVal representing the integer x.
func Int(x int64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  new(big.Rat).SetInt64(x),
	}
}

// Ratio returns an LVal representing a/b.  Ratio panics if b is zero.
func Ratio(a, b int64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  big.NewRat(a, b),
	}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// Keyword returns an LVal representing a keyword.  A leading colon is added to
// s if it does not already have one.
func Keyword(s string) *LVal {
	if !strings.HasPrefix(s, ":") {
		s = ":" + s
	}
	return &LVal{
		Type: LKeyword,
		Str:  s,
	}
}

// Form returns an LVal representing a call expression.
func Form(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LForm,
		Cells: cells,
	}
}

// List returns an LVal representing a quoted list.
func List(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LList,
		Cells: cells,
	}
}

// Vector returns an LVal representing a vector.
func Vector(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LVector,
		Cells: cells,
	}
}

// Map returns an empty map.
func Map() *LVal {
	return &LVal{
		Type:  LMap,
		Table: newTable(),
	}
}

// Set returns a set containing the given atoms.  Set panics if any element is
// not an atom, so callers handling untrusted data should use SetAdd.
func Set(elems ...*LVal) *LVal {
	v := &LVal{
		Type:  LSet,
		Table: newTable(),
	}
	for _, x := range elems {
		err := v.SetAdd(x)
		if err != nil {
			panic(err)
		}
	}
	return v
}

// Fun returns an LVal wrapping a builtin.
func Fun(b *Builtin) *LVal {
	return &LVal{
		Type: LFun,
		Fun:  b,
	}
}

// IsNil returns true if v represents nil.
func (v *LVal) IsNil() bool {
	return v == nil || v.Type == LNil
}

// IsAtom returns true if v is leaf data.
func (v *LVal) IsAtom() bool {
	return v.Type.IsAtom()
}

// IsSequence returns true if v is a container.
func (v *LVal) IsSequence() bool {
	return v.Type.IsSequence()
}

// Len returns the number of elements in a sequence, or zero for other values.
func (v *LVal) Len() int {
	switch v.Type {
	case LForm, LList, LVector:
		return len(v.Cells)
	case LMap, LSet:
		return v.Table.Len()
	default:
		return 0
	}
}

// Append adds x to the end of v during construction.  Append is defined for
// forms, lists, vectors and sets.  Maps require key/value pairs and must be
// constructed using MapPut.
func (v *LVal) Append(x *LVal) error {
	switch v.Type {
	case LForm, LList, LVector:
		v.Cells = append(v.Cells, x)
		return nil
	case LSet:
		return v.SetAdd(x)
	default:
		return Errorf(ErrUnsupportedOperation, "cannot append to %s", v.Type)
	}
}

// MapPut binds key to val in the map v, replacing any previous binding.
func (v *LVal) MapPut(key, val *LVal) error {
	if v.Type != LMap {
		return Errorf(ErrUnsupportedOperation, "cannot put an entry in %s", v.Type)
	}
	return v.Table.Put(key, val)
}

// SetAdd inserts x into the set v.  Adding an element already present has no
// effect.
func (v *LVal) SetAdd(x *LVal) error {
	if v.Type != LSet {
		return Errorf(ErrUnsupportedOperation, "cannot add a set element to %s", v.Type)
	}
	return v.Table.Put(x, nil)
}

// IsInt returns true if v is a number with denominator one.
func (v *LVal) IsInt() bool {
	return v.Type == LNumber && v.Num.IsInt()
}

func (v *LVal) String() string {
	if v == nil {
		return "nil"
	}
	switch v.Type {
	case LNil:
		return "nil"
	case LNumber:
		if v.Num.IsInt() {
			return v.Num.Num().String()
		}
		return v.Num.String()
	case LSymbol, LKeyword:
		return v.Str
	case LString:
		return strconv.Quote(v.Str)
	case LForm:
		return cellsString(v.Cells, "(", ")")
	case LList:
		return cellsString(v.Cells, "'(", ")")
	case LVector:
		return cellsString(v.Cells, "[", "]")
	case LMap:
		return v.Table.mapString()
	case LSet:
		return v.Table.setString()
	case LFun:
		return fmt.Sprintf("<builtin %s>", v.Fun.Name)
	default:
		panic(fmt.Sprintf("unknown value type: %s (%d)", v.Type, v.Type))
	}
}

func cellsString(cells []*LVal, left string, right string) string {
	var buf strings.Builder
	buf.WriteString(left)
	for i, c := range cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}

// Equal returns true if a and b are structurally equal.  Map and set equality
// does not depend on insertion order.  Builtins are equal only to themselves.
func Equal(a, b *LVal) bool {
	if a.IsNil() || b.IsNil() {
		return a.IsNil() && b.IsNil()
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LNumber:
		return a.Num.Cmp(b.Num) == 0
	case LSymbol, LString, LKeyword:
		return a.Str == b.Str
	case LForm, LList, LVector:
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Equal(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	case LMap, LSet:
		return a.Table.equal(b.Table)
	case LFun:
		return a.Fun == b.Fun
	default:
		panic(fmt.Sprintf("unknown value type: %s (%d)", a.Type, a.Type))
	}
}
