package lua

import (
	"context"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	errUtils "github.com/cloudposse/yamlbridge/errors"
	"github.com/cloudposse/yamlbridge/pkg/bridge"
	"github.com/cloudposse/yamlbridge/pkg/perf"
)

// NewState returns a Lua state bound to ctx with the module preloaded and configured by opts.
// The caller must Close the state.
func NewState(ctx context.Context, opts ...bridge.Option) (*lua.LState, error) {
	loader, err := NewLoader(opts...)
	if err != nil {
		return nil, err
	}

	L := lua.NewState()
	L.SetContext(ctx)
	L.PreloadModule(ModuleName, loader)
	return L, nil
}

// RunFile runs the script at path. Script arguments are exposed as the global table arg,
// with the script path at arg[0].
func RunFile(L *lua.LState, path string, args []string) error {
	defer perf.Track(nil, "lua.RunFile")()

	argTable := L.CreateTable(len(args), 1)
	argTable.RawSetInt(0, lua.LString(path))
	for i, a := range args {
		argTable.RawSetInt(i+1, lua.LString(a))
	}
	L.SetGlobal("arg", argTable)

	if err := L.DoFile(path); err != nil {
		return errUtils.Build(errUtils.ErrLuaScript).
			Wrapf("%s: %s", path, err).
			WithContext("script", path).
			Err()
	}
	return nil
}

// NewPrint returns a replacement for the base print function that writes to w.
func NewPrint(w io.Writer) lua.LGFunction {
	return func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		_, _ = io.WriteString(w, strings.Join(parts, "\t")+"\n")
		return 0
	}
}
