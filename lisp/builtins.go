package lisp

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

// VarArgSymbol marks the remaining formal argument of a builtin as variadic.
const VarArgSymbol = "&rest"

// LBuiltin is the go implementation of a builtin function.  The argument
// count has been checked against the builtin's formals before it is called.
type LBuiltin func(rt *Runtime, args []*LVal) (*LVal, error)

// Builtin is a function bound in the namespace.
type Builtin struct {
	Name    string
	Formals []string
	Fn      LBuiltin
}

// Formals returns a formal argument list for a builtin.
func Formals(argSymbols ...string) []string {
	return argSymbols
}

func (b *Builtin) String() string {
	return "(" + strings.Join(append([]string{b.Name}, b.Formals...), " ") + ")"
}

// Call checks the number of args against the formals of b and invokes it.
func (b *Builtin) Call(rt *Runtime, args []*LVal) (*LVal, error) {
	err := b.checkArity(args)
	if err != nil {
		return nil, err
	}
	return b.Fn(rt, args)
}

func (b *Builtin) checkArity(args []*LVal) error {
	for i, sym := range b.Formals {
		if sym == VarArgSymbol {
			if len(args) < i {
				return Errorf(ErrArity, "%s: expected at least %d args, found %d", b.Name, i, len(args))
			}
			return nil
		}
	}
	if len(args) != len(b.Formals) {
		return Errorf(ErrArity, "%s: expected %d args, found %d", b.Name, len(b.Formals), len(args))
	}
	return nil
}

var langBuiltins = []*Builtin{
	{"println", Formals(VarArgSymbol, "args"), builtinPrintln},
	{"conj", Formals("seq", "value"), builtinConj},
	{"list", Formals(VarArgSymbol, "args"), builtinList},
	{"count", Formals("seq"), builtinCount},
	{"first", Formals("seq"), builtinFirst},
	{"get", Formals("coll", "key"), builtinGet},
}

// The namespace is built at most once and is never modified afterwards, so
// it may be read without synchronization.
var namespace = sync.OnceValue(func() map[string]*Builtin {
	ns := make(map[string]*Builtin, len(langBuiltins))
	for _, b := range langBuiltins {
		ns[b.Name] = b
	}
	return ns
})

// Lookup returns the builtin bound to name in the namespace.
func Lookup(name string) (*Builtin, bool) {
	b, ok := namespace()[name]
	return b, ok
}

// Names returns the sorted names bound in the namespace.
func Names() []string {
	ns := namespace()
	names := make([]string, 0, len(ns))
	for name := range ns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func builtinPrintln(rt *Runtime, args []*LVal) (*LVal, error) {
	strs := make([]string, len(args))
	for i := range args {
		strs[i] = args[i].String()
	}
	_, err := rt.stdout().Write([]byte(strings.Join(strs, " ") + "\n"))
	if err != nil {
		return nil, Wrapf(err, "println")
	}
	return Nil(), nil
}

func builtinConj(rt *Runtime, args []*LVal) (*LVal, error) {
	seq, v := args[0], args[1]
	if seq.Type != LList {
		return nil, Errorf(ErrUnsupportedOperation, "conj: cannot append to %s", seq.Type)
	}
	seq.Cells = append(seq.Cells, v)
	return seq, nil
}

func builtinList(rt *Runtime, args []*LVal) (*LVal, error) {
	cells := make([]*LVal, len(args))
	copy(cells, args)
	return List(cells...), nil
}

func builtinCount(rt *Runtime, args []*LVal) (*LVal, error) {
	v := args[0]
	switch {
	case v.Type == LNil:
		return Int(0), nil
	case v.Type == LString:
		return Int(int64(utf8.RuneCountInString(v.Str))), nil
	case v.IsSequence():
		return Int(int64(v.Len())), nil
	default:
		return nil, Errorf(ErrUnsupportedOperation, "count: not a sequence: %s", v.Type)
	}
}

func builtinFirst(rt *Runtime, args []*LVal) (*LVal, error) {
	v := args[0]
	switch v.Type {
	case LNil:
		return Nil(), nil
	case LForm, LList, LVector:
		if len(v.Cells) == 0 {
			return Nil(), nil
		}
		return v.Cells[0], nil
	default:
		return nil, Errorf(ErrUnsupportedOperation, "first: not an ordered sequence: %s", v.Type)
	}
}

func builtinGet(rt *Runtime, args []*LVal) (*LVal, error) {
	coll, key := args[0], args[1]
	switch coll.Type {
	case LNil:
		return Nil(), nil
	case LMap, LSet:
		ent, ok, err := coll.Table.Get(key)
		if err != nil {
			return nil, Wrapf(err, "get")
		}
		if !ok {
			return Nil(), nil
		}
		if coll.Type == LSet {
			return ent.Key, nil
		}
		return ent.Val, nil
	default:
		return nil, Errorf(ErrUnsupportedOperation, "get: not a map or set: %s", coll.Type)
	}
}
