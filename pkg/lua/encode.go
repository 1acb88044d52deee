package lua

import (
	"math"
	"strconv"
	"strings"

	"github.com/cloudposse/yamlbridge/pkg/value"
)

// NILExpr is how the null sentinel is written in a table constructor.
const NILExpr = ModuleName + ".NIL"

var keywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true, "end": true,
	"false": true, "for": true, "function": true, "if": true, "in": true, "local": true,
	"nil": true, "not": true, "or": true, "repeat": true, "return": true, "then": true,
	"true": true, "until": true, "while": true, "goto": true,
}

// Encode renders v as a Lua expression, a table constructor for collections.
// A positive indent puts every element on its own line.
func Encode(v value.Value, indent int) string {
	e := encoder{indent: indent}
	e.value(v, 0)
	return e.sb.String()
}

type encoder struct {
	sb     strings.Builder
	indent int
}

func (e *encoder) value(v value.Value, depth int) {
	switch tv := v.(type) {
	case nil:
		e.sb.WriteString("nil")
	case value.Bool:
		e.sb.WriteString(strconv.FormatBool(bool(tv)))
	case value.Int:
		e.sb.WriteString(strconv.FormatInt(int64(tv), 10))
	case value.Float:
		e.sb.WriteString(number(float64(tv)))
	case value.String:
		e.sb.WriteString(quote(string(tv)))
	case *value.Array:
		e.sb.WriteByte('{')
		for i, item := range tv.Items() {
			e.sep(i, depth+1)
			e.value(item, depth+1)
		}
		e.close(tv.Len(), depth)
	case *value.Table:
		e.sb.WriteByte('{')
		i := 0
		tv.Range(func(k, item value.Value) bool {
			e.sep(i, depth+1)
			e.key(k)
			e.sb.WriteString(" = ")
			e.value(item, depth+1)
			i++
			return true
		})
		e.close(tv.Len(), depth)
	default:
		e.sb.WriteString(NILExpr)
	}
}

func (e *encoder) key(k value.Value) {
	if s, ok := k.(value.String); ok && isName(string(s)) {
		e.sb.WriteString(string(s))
		return
	}
	e.sb.WriteByte('[')
	e.value(k, 0)
	e.sb.WriteByte(']')
}

func (e *encoder) sep(i, depth int) {
	if i > 0 {
		e.sb.WriteByte(',')
		if e.indent <= 0 {
			e.sb.WriteByte(' ')
		}
	}
	if e.indent > 0 {
		e.sb.WriteByte('\n')
		e.sb.WriteString(strings.Repeat(" ", e.indent*depth))
	}
}

func (e *encoder) close(n, depth int) {
	if n > 0 && e.indent > 0 {
		e.sb.WriteByte('\n')
		e.sb.WriteString(strings.Repeat(" ", e.indent*depth))
	}
	e.sb.WriteByte('}')
}

func number(f float64) string {
	switch {
	case math.IsNaN(f):
		return "(0/0)"
	case math.IsInf(f, 1):
		return "math.huge"
	case math.IsInf(f, -1):
		return "-math.huge"
	}
	// Whole floats keep a ".0" so they read back as floats, not integers.
	return value.FormatFloat(f)
}

func isName(s string) bool {
	if s == "" || keywords[s] {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// quote writes s as a double-quoted Lua string. Control bytes use decimal escapes,
// which every Lua version accepts; other bytes are written as they are.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				sb.WriteByte('\\')
				// Three digits so a following digit is not read as part of the escape.
				d := strconv.Itoa(int(c))
				sb.WriteString(strings.Repeat("0", 3-len(d)) + d)
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
