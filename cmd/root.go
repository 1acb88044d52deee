package cmd

import (
	"context"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/cloudposse/yamlbridge/pkg/bridge"
	"github.com/cloudposse/yamlbridge/pkg/config"
	"github.com/cloudposse/yamlbridge/pkg/logger"
	"github.com/cloudposse/yamlbridge/pkg/perf"
	"github.com/cloudposse/yamlbridge/pkg/schema"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	cfg schema.Configuration
	log *logger.Logger
}

var (
	cleanupMu    sync.Mutex
	cleanupFuncs []func()
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = NewRootCmd()

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "yamlbridge",
		Short: "Convert YAML documents into dynamic values for embedding hosts",
		Long: `yamlbridge converts YAML documents into a dynamic value tree and renders it as JSON, ` +
			`a Lua table, HCL or a Go dump. It also runs Lua scripts with a "yaml" module preloaded.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a yamlbridge.yaml configuration file")
	pf.String("logs-level", "Info", "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off")
	pf.String("logs-file", "/dev/stderr", "The file to write logs to, including '/dev/stderr', '/dev/stdout' and '/dev/null'")
	pf.String("null-policy", string(bridge.DefaultNullPolicy), "How YAML null is represented: "+bridge.NullPolicyNames())
	pf.Int("max-depth", bridge.DefaultMaxDepth, "Maximum nesting depth of collections")
	pf.Int("max-nodes", bridge.DefaultMaxNodes, "Maximum number of converted nodes, counting alias expansions")
	pf.Bool("merge-keys", false, "Resolve YAML merge keys (<<)")
	pf.Bool("profile", false, "Print timing statistics on exit")

	root.AddCommand(newConvertCmd(a), newLuaCmd(a), newVersionCmd())
	return root
}

// setup loads the configuration and installs the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadConfig(cmd.Flags(), configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	l, err := logger.NewLoggerFromConfig(&cfg)
	if err != nil {
		return err
	}
	l.SetReportTimestamp(false)
	a.log = l
	logger.SetDefault(l)
	registerCleanup(func() { _ = l.Close() })

	if cfg.Profiler.Enabled {
		perf.EnableTracking(true)
		registerCleanup(func() { _ = perf.Report(os.Stderr) })
	}

	logger.Debug("configuration loaded", "file", cfg.CliConfigPath, "null_policy", cfg.Bridge.NullPolicy)
	return nil
}

// bridgeOptions returns the conversion options of the loaded configuration.
func (a *app) bridgeOptions() ([]bridge.Option, error) {
	return config.BridgeOptions(&a.cfg)
}

func registerCleanup(fn func()) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanupFuncs = append(cleanupFuncs, fn)
}

// Cleanup releases resources acquired while running a command. It is safe to call more than once.
func Cleanup() {
	cleanupMu.Lock()
	funcs := cleanupFuncs
	cleanupFuncs = nil
	cleanupMu.Unlock()

	for i := len(funcs) - 1; i >= 0; i-- {
		funcs[i]()
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, which scripts observe for cancellation.
func ExecuteContext(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}
