package value

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindTable
)

var kindNames = [...]string{
	KindAbsent: "absent",
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindArray:  "array",
	KindTable:  "table",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is a node of the dynamic value tree.
type Value interface {
	Kind() Kind
	isValue()
}

type null struct {
	name string
}

func (*null) Kind() Kind { return KindNull }
func (*null) isValue()   {}

// Nil is the process-wide YAML null sentinel. It is never recreated, so identity
// comparison (v == Nil) is the intended test.
var Nil Value = &null{name: "null"}

type (
	Bool   bool
	Int    int64
	Float  float64
	String string
)

func (Bool) Kind() Kind   { return KindBool }
func (Int) Kind() Kind    { return KindInt }
func (Float) Kind() Kind  { return KindFloat }
func (String) Kind() Kind { return KindString }

func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}

// KindOf returns the kind of v, KindAbsent for nil.
func KindOf(v Value) Kind {
	if v == nil {
		return KindAbsent
	}
	return v.Kind()
}

// IsNull reports whether v is the Nil sentinel.
func IsNull(v Value) bool {
	return v == Nil
}

// Equal reports whether a and b are structurally equal. NaN equals NaN so that
// converting the same scalar twice always compares equal. Table comparison ignores order.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case *null:
		return true
	case Bool, Int, String:
		return a == b
	case Float:
		bf := b.(Float)
		if math.IsNaN(float64(av)) && math.IsNaN(float64(bf)) {
			return true
		}
		return av == bf
	case *Array:
		bv := b.(*Array)
		if av.Len() != bv.Len() {
			return false
		}
		for i := range av.items {
			if !Equal(av.items[i], bv.items[i]) {
				return false
			}
		}
		return true
	case *Table:
		bv := b.(*Table)
		if av.Len() != bv.Len() {
			return false
		}
		for _, e := range av.entries {
			other, ok := bv.getKey(e.key)
			if !ok || !Equal(e.val, other) {
				return false
			}
		}
		return true
	}
	return false
}

// Format renders v in a compact flow style, e.g. {a: 1, b: [true, null]}.
func Format(v Value) string {
	var sb strings.Builder
	format(&sb, v)
	return sb.String()
}

func format(sb *strings.Builder, v Value) {
	switch tv := v.(type) {
	case nil:
		sb.WriteString("<absent>")
	case *null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(tv)))
	case Int:
		sb.WriteString(strconv.FormatInt(int64(tv), 10))
	case Float:
		sb.WriteString(FormatFloat(float64(tv)))
	case String:
		sb.WriteString(strconv.Quote(string(tv)))
	case *Array:
		sb.WriteByte('[')
		for i, item := range tv.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, item)
		}
		sb.WriteByte(']')
	case *Table:
		sb.WriteByte('{')
		for i, e := range tv.entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			if s, ok := e.key.Value().(String); ok && isBareKey(string(s)) {
				sb.WriteString(string(s))
			} else {
				format(sb, e.key.Value())
			}
			sb.WriteString(": ")
			format(sb, e.val)
		}
		sb.WriteByte('}')
	}
}

// FormatFloat renders f the way YAML spells special floats.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}

func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}
