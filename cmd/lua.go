package cmd

import (
	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/yamlbridge/errors"
	"github.com/cloudposse/yamlbridge/pkg/logger"
	luahost "github.com/cloudposse/yamlbridge/pkg/lua"
	"github.com/cloudposse/yamlbridge/pkg/perf"
)

func newLuaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lua SCRIPT [ARGS...]",
		Short: "Run a Lua script with the yaml module preloaded",
		Long: `Run a Lua script with the "yaml" module preloaded. The script reads documents with ` +
			`require("yaml").parse_yaml(text); its arguments are available in the global table arg.`,
		Example: "yamlbridge lua report.lua config.yaml",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer perf.Track(&a.cfg, "cmd.lua")()

			opts, err := a.bridgeOptions()
			if err != nil {
				return errUtils.WithExitCode(err, errUtils.ExitCodeInput)
			}

			L, err := luahost.NewState(cmd.Context(), opts...)
			if err != nil {
				return errUtils.WithExitCode(err, errUtils.ExitCodeInput)
			}
			defer L.Close()

			L.SetGlobal("print", L.NewFunction(luahost.NewPrint(cmd.OutOrStdout())))

			logger.Debug("running script", "script", args[0], "args", len(args)-1)
			return luahost.RunFile(L, args[0], args[1:])
		},
	}

	// Everything after SCRIPT belongs to the script.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
