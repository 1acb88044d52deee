package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/yamlbridge/errors"
)

func TestNilSentinelIdentity(t *testing.T) {
	assert.True(t, IsNull(Nil))
	assert.False(t, IsNull(nil))
	assert.Equal(t, KindNull, KindOf(Nil))
	assert.Equal(t, KindAbsent, KindOf(nil))

	var other Value = &null{name: "null"}
	assert.False(t, other == Nil, "a second null instance must not be identical to the sentinel")
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindAbsent, "absent"},
		{KindNull, "null"},
		{KindBool, "bool"},
		{KindInt, "int"},
		{KindFloat, "float"},
		{KindString, "string"},
		{KindArray, "array"},
		{KindTable, "table"},
		{Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"absent", nil, nil, true},
		{"absent vs null", nil, Nil, false},
		{"null", Nil, Nil, true},
		{"bools", Bool(true), Bool(true), true},
		{"int vs float", Int(1), Float(1), false},
		{"nan", Float(math.NaN()), Float(math.NaN()), true},
		{"strings", String("a"), String("b"), false},
		{"arrays", ArrayOf(Int(1), Nil), ArrayOf(Int(1), Nil), true},
		{"array order", ArrayOf(Int(1), Int(2)), ArrayOf(Int(2), Int(1)), false},
		{"array holes", ArrayOf(nil, Int(1)), ArrayOf(nil, Int(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestEqual_TablesIgnoreOrder(t *testing.T) {
	a := NewTable(2)
	require.NoError(t, a.Set(String("x"), Int(1)))
	require.NoError(t, a.Set(String("y"), Int(2)))

	b := NewTable(2)
	require.NoError(t, b.Set(String("y"), Int(2)))
	require.NoError(t, b.Set(String("x"), Int(1)))

	assert.True(t, Equal(a, b))

	require.NoError(t, b.Set(String("y"), Int(3)))
	assert.False(t, Equal(a, b))
}

func TestTable_SetReplacesInPlace(t *testing.T) {
	tbl := NewTable(0)
	require.NoError(t, tbl.Set(String("k"), Int(1)))
	require.NoError(t, tbl.Set(String("j"), Int(2)))
	require.NoError(t, tbl.Set(String("k"), Int(3)))

	assert.Equal(t, []Value{String("k"), String("j")}, tbl.Keys())
	v, ok := tbl.GetString("k")
	require.True(t, ok)
	assert.Equal(t, Int(3), v)
}

func TestTable_SetAbsentDeletes(t *testing.T) {
	tbl := NewTable(0)
	require.NoError(t, tbl.Set(String("a"), Int(1)))
	require.NoError(t, tbl.Set(String("b"), Int(2)))
	require.NoError(t, tbl.Set(String("c"), Int(3)))
	require.NoError(t, tbl.Set(String("a"), nil))

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []Value{String("b"), String("c")}, tbl.Keys())
	v, ok := tbl.GetString("c")
	require.True(t, ok)
	assert.Equal(t, Int(3), v)

	_, ok = tbl.GetString("a")
	assert.False(t, ok)
}

func TestTable_ZeroValueUsable(t *testing.T) {
	var tbl Table
	require.NoError(t, tbl.Set(Int(1), String("one")))
	v, ok := tbl.Get(Int(1))
	require.True(t, ok)
	assert.Equal(t, String("one"), v)
}

func TestTable_UnsupportedKeys(t *testing.T) {
	tests := []struct {
		name string
		key  Value
	}{
		{"absent", nil},
		{"null", Nil},
		{"nan", Float(math.NaN())},
		{"array", ArrayOf()},
		{"table", NewTable(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := NewTable(0)
			err := tbl.Set(tt.key, Int(1))
			require.Error(t, err)
			assert.ErrorIs(t, err, errUtils.ErrUnsupportedKey)
			assert.Equal(t, 0, tbl.Len())
		})
	}
}

func TestTable_KeyKindsAreDistinct(t *testing.T) {
	tbl := NewTable(0)
	require.NoError(t, tbl.Set(Int(1), String("int")))
	require.NoError(t, tbl.Set(String("1"), String("string")))
	require.NoError(t, tbl.Set(Bool(true), String("bool")))
	require.NoError(t, tbl.Set(Float(1.5), String("float")))

	assert.Equal(t, 4, tbl.Len())
	v, _ := tbl.Get(Int(1))
	assert.Equal(t, String("int"), v)
	v, _ = tbl.Get(String("1"))
	assert.Equal(t, String("string"), v)
}

func TestTable_Range(t *testing.T) {
	tbl := NewTable(0)
	for i := 0; i < 5; i++ {
		require.NoError(t, tbl.Set(Int(i), Int(i*i)))
	}

	var seen []Value
	tbl.Range(func(k, _ Value) bool {
		seen = append(seen, k)
		return len(seen) < 3
	})
	assert.Equal(t, []Value{Int(0), Int(1), Int(2)}, seen)
}

func TestFormat(t *testing.T) {
	tbl := NewTable(0)
	require.NoError(t, tbl.Set(String("a"), Int(1)))
	require.NoError(t, tbl.Set(String("b c"), ArrayOf(Float(2.5), Nil, Bool(true))))
	require.NoError(t, tbl.Set(Int(7), Float(math.Inf(-1))))

	assert.Equal(t, `{a: 1, "b c": [2.5, null, true], 7: -.inf}`, Format(tbl))
	assert.Equal(t, "<absent>", Format(nil))
	assert.Equal(t, "3.0", Format(Float(3)))
	assert.Equal(t, ".nan", Format(Float(math.NaN())))
}
