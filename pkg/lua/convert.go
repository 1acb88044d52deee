package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/cloudposse/yamlbridge/pkg/value"
)

// ToLua converts v into a Lua value owned by L. Null becomes NIL, absence becomes nil and
// arrays become sequences starting at 1. Absent array elements leave holes.
func ToLua(L *lua.LState, v value.Value) lua.LValue {
	switch tv := v.(type) {
	case nil:
		return lua.LNil
	case value.Bool:
		return lua.LBool(tv)
	case value.Int:
		return lua.LNumber(tv)
	case value.Float:
		return lua.LNumber(tv)
	case value.String:
		return lua.LString(tv)
	case *value.Array:
		t := L.CreateTable(tv.Len(), 0)
		for i, item := range tv.Items() {
			if item == nil {
				continue
			}
			t.RawSetInt(i+1, ToLua(L, item))
		}
		return t
	case *value.Table:
		t := L.CreateTable(0, tv.Len())
		tv.Range(func(k, item value.Value) bool {
			t.RawSet(ToLua(L, k), ToLua(L, item))
			return true
		})
		return t
	}
	if value.IsNull(v) {
		return NIL
	}
	return lua.LNil
}

// IsNIL reports whether lv is the null sentinel.
func IsNIL(lv lua.LValue) bool {
	return lv == NIL
}
