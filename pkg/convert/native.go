package convert

import (
	"github.com/cloudposse/yamlbridge/pkg/value"
)

// ValueToNative takes a value tree and returns it as plain Go values:
// nil, bool, int64, float64, string, []any and map[any]any. Null and absence both become nil.
func ValueToNative(v value.Value) any {
	switch tv := v.(type) {
	case value.Bool:
		return bool(tv)
	case value.Int:
		return int64(tv)
	case value.Float:
		return float64(tv)
	case value.String:
		return string(tv)
	case *value.Array:
		out := make([]any, 0, tv.Len())
		for _, item := range tv.Items() {
			out = append(out, ValueToNative(item))
		}
		return out
	case *value.Table:
		out := make(map[any]any, tv.Len())
		tv.Range(func(k, item value.Value) bool {
			out[ValueToNative(k)] = ValueToNative(item)
			return true
		})
		return out
	}
	return nil
}
