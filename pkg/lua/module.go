package lua

import (
	lua "github.com/yuin/gopher-lua"

	errUtils "github.com/cloudposse/yamlbridge/errors"
	"github.com/cloudposse/yamlbridge/pkg/bridge"
	"github.com/cloudposse/yamlbridge/pkg/document"
	"github.com/cloudposse/yamlbridge/pkg/perf"
	"github.com/cloudposse/yamlbridge/pkg/value"
)

const (
	// ModuleName is the name scripts require.
	ModuleName = "yaml"

	// MaxSafeInteger is the largest integer a Lua number holds exactly.
	MaxSafeInteger = int64(1) << 53
)

// NIL is the userdata scripts receive for YAML null under the sentinel policy.
// It is shared by every state, so it compares equal across calls.
var NIL = &lua.LUserData{Value: value.Nil, Metatable: lua.LNil}

type module struct {
	bridge *bridge.Bridge
}

// Loader loads the module with the default options.
func Loader(L *lua.LState) int {
	return defaultModule.load(L)
}

var defaultModule = &module{bridge: mustBridge()}

func mustBridge() *bridge.Bridge {
	b, err := newBridge()
	if err != nil {
		panic(err)
	}
	return b
}

// NewLoader returns a loader whose conversions use opts. The integer range is always
// narrowed to what a Lua number holds exactly, and integral float keys fold into integer keys.
func NewLoader(opts ...bridge.Option) (lua.LGFunction, error) {
	b, err := newBridge(opts...)
	if err != nil {
		return nil, err
	}
	m := &module{bridge: b}
	return m.load, nil
}

func newBridge(opts ...bridge.Option) (*bridge.Bridge, error) {
	// Lua numbers index 1 and 1.0 as the same key.
	opts = append(opts,
		bridge.WithIntRange(-MaxSafeInteger, MaxSafeInteger),
		bridge.WithFoldFloatKeys(true),
	)
	return bridge.New(opts...)
}

// Open loads the module with the default options into the global "yaml".
func Open(L *lua.LState) {
	L.Push(L.NewFunction(Loader))
	L.Call(0, 1)
	L.SetGlobal(ModuleName, L.Get(-1))
	L.Pop(1)
}

func (m *module) load(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"parse_yaml":     m.parseYAML,
		"parse_yaml_all": m.parseYAMLAll,
	})
	L.SetField(mod, "NIL", NIL)
	L.SetField(mod, "null_policy", lua.LString(m.bridge.NullPolicy()))
	L.Push(mod)
	return 1
}

func (m *module) parseYAML(L *lua.LState) int {
	defer perf.Track(nil, "lua.parse_yaml")()

	text := L.CheckString(1)

	node, err := document.Parse(text)
	if err != nil {
		raise(L, err)
		return 0
	}
	v, err := m.bridge.Convert(node)
	if err != nil {
		raise(L, err)
		return 0
	}

	L.Push(ToLua(L, v))
	return 1
}

func (m *module) parseYAMLAll(L *lua.LState) int {
	defer perf.Track(nil, "lua.parse_yaml_all")()

	text := L.CheckString(1)

	nodes, err := document.ParseAll(text)
	if err != nil {
		raise(L, err)
		return 0
	}
	values, err := m.bridge.ConvertAll(nodes)
	if err != nil {
		raise(L, err)
		return 0
	}

	docs := L.CreateTable(len(values), 0)
	for i, v := range values {
		if lv := ToLua(L, v); lv != lua.LNil {
			docs.RawSetInt(i+1, lv)
		}
	}
	L.Push(docs)
	return 1
}

// raise throws err as a Lua error with the message "<Kind>: <message>".
func raise(L *lua.LState, err error) {
	L.Error(lua.LString(errUtils.Kind(err)+": "+err.Error()), 0)
}
