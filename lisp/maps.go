package lisp

import "strings"

// Table stores the entries of an LMap or the elements of an LSet.  Keys must
// be atoms and are compared by value, numbers in lowest terms.  A Table
// remembers insertion order so that values print deterministically, but
// equality between tables ignores order.
type Table struct {
	index   map[string]int
	entries []Entry
}

// Entry is a single key in a Table.  Set tables have a nil Val.
type Entry struct {
	Key *LVal
	Val *LVal
}

func newTable() *Table {
	return &Table{
		index: make(map[string]int),
	}
}

// Len returns the number of keys in t.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns the entries of t in insertion order.  The returned slice
// must not be modified.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return t.entries
}

// Get returns the entry for key.  An error is returned if key cannot be used
// as a table key.
func (t *Table) Get(key *LVal) (Entry, bool, error) {
	k, err := tableKey(key)
	if err != nil {
		return Entry{}, false, err
	}
	i, ok := t.index[k]
	if !ok {
		return Entry{}, false, nil
	}
	return t.entries[i], true, nil
}

// Put binds key to val.  An existing binding for key has its value replaced
// but keeps its original position.
func (t *Table) Put(key *LVal, val *LVal) error {
	k, err := tableKey(key)
	if err != nil {
		return err
	}
	if i, ok := t.index[k]; ok {
		t.entries[i].Val = val
		return nil
	}
	t.index[k] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: key, Val: val})
	return nil
}

func (t *Table) equal(other *Table) bool {
	if t.Len() != other.Len() {
		return false
	}
	for _, ent := range t.Entries() {
		ent2, ok, err := other.Get(ent.Key)
		if err != nil || !ok {
			return false
		}
		if ent.Val == nil || ent2.Val == nil {
			if ent.Val != ent2.Val {
				return false
			}
			continue
		}
		if !Equal(ent.Val, ent2.Val) {
			return false
		}
	}
	return true
}

func (t *Table) mapString() string {
	var buf strings.Builder
	buf.WriteString("{")
	for i, ent := range t.Entries() {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(ent.Key.String())
		buf.WriteString(" ")
		buf.WriteString(ent.Val.String())
	}
	buf.WriteString("}")
	return buf.String()
}

func (t *Table) setString() string {
	var buf strings.Builder
	buf.WriteString("#{")
	for i, ent := range t.Entries() {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(ent.Key.String())
	}
	buf.WriteString("}")
	return buf.String()
}

// tableKey returns a string which uniquely identifies the atom v.  The type
// prefix keeps the symbol foo distinct from the string "foo".
func tableKey(v *LVal) (string, error) {
	if v == nil {
		return "nil", nil
	}
	switch v.Type {
	case LNil:
		return "nil", nil
	case LNumber:
		return "n" + v.Num.RatString(), nil
	case LSymbol:
		return "y" + v.Str, nil
	case LString:
		return "s" + v.Str, nil
	case LKeyword:
		return "k" + v.Str, nil
	default:
		return "", Errorf(ErrUnsupportedOperation, "unhashable type: %s", v.Type)
	}
}
