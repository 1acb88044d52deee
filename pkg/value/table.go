package value

import (
	"math"

	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/yamlbridge/errors"
)

// Key is the comparable form of a hashable Value.
type Key struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// KeyOf returns the key for v. It reports false for values a table cannot be indexed by:
// absence, Nil, NaN, arrays and tables.
func KeyOf(v Value) (Key, bool) {
	switch tv := v.(type) {
	case Bool:
		return Key{kind: KindBool, b: bool(tv)}, true
	case Int:
		return Key{kind: KindInt, i: int64(tv)}, true
	case Float:
		if math.IsNaN(float64(tv)) {
			return Key{}, false
		}
		return Key{kind: KindFloat, f: float64(tv)}, true
	case String:
		return Key{kind: KindString, s: string(tv)}, true
	}
	return Key{}, false
}

// Kind returns the kind of the value the key was built from.
func (k Key) Kind() Kind {
	return k.kind
}

// Value returns the value the key was built from.
func (k Key) Value() Value {
	switch k.kind {
	case KindBool:
		return Bool(k.b)
	case KindInt:
		return Int(k.i)
	case KindFloat:
		return Float(k.f)
	case KindString:
		return String(k.s)
	}
	return nil
}

type tableEntry struct {
	key Key
	val Value
}

// Table is an insertion-ordered mapping. Setting an existing key replaces its value
// in place, keeping the position of the first insertion.
type Table struct {
	entries []tableEntry
	index   map[Key]int
}

// NewTable returns an empty table with room for n entries.
func NewTable(n int) *Table {
	return &Table{
		entries: make([]tableEntry, 0, n),
		index:   make(map[Key]int, n),
	}
}

func (*Table) Kind() Kind { return KindTable }
func (*Table) isValue()   {}

// Set stores v under k. Storing absence (nil) removes k.
func (t *Table) Set(k, v Value) error {
	key, ok := KeyOf(k)
	if !ok {
		return errors.Wrapf(errUtils.ErrUnsupportedKey, "%s key", KindOf(k))
	}
	t.SetKey(key, v)
	return nil
}

// SetKey is Set for a key that has already been validated.
func (t *Table) SetKey(key Key, v Value) {
	if v == nil {
		t.deleteKey(key)
		return
	}
	if i, ok := t.index[key]; ok {
		t.entries[i].val = v
		return
	}
	if t.index == nil {
		t.index = make(map[Key]int)
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, tableEntry{key: key, val: v})
}

// Get returns the value stored under k.
func (t *Table) Get(k Value) (Value, bool) {
	key, ok := KeyOf(k)
	if !ok {
		return nil, false
	}
	return t.getKey(key)
}

// GetString is Get for a string key.
func (t *Table) GetString(k string) (Value, bool) {
	return t.getKey(Key{kind: KindString, s: k})
}

func (t *Table) getKey(key Key) (Value, bool) {
	i, ok := t.index[key]
	if !ok {
		return nil, false
	}
	return t.entries[i].val, true
}

func (t *Table) deleteKey(key Key) {
	i, ok := t.index[key]
	if !ok {
		return
	}
	delete(t.index, key)
	t.entries = append(t.entries[:i], t.entries[i+1:]...)
	for j := i; j < len(t.entries); j++ {
		t.index[t.entries[j].key] = j
	}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []Value {
	keys := make([]Value, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.key.Value()
	}
	return keys
}

// Range calls fn for each entry in insertion order until fn returns false.
func (t *Table) Range(fn func(k, v Value) bool) {
	for _, e := range t.entries {
		if !fn(e.key.Value(), e.val) {
			return
		}
	}
}
