package config

const (
	CliConfigFileName = "yamlbridge.yaml"
	AppName           = "yamlbridge"

	// EnvPrefix prefixes every environment variable, e.g. YAMLBRIDGE_BRIDGE_NULL_POLICY.
	EnvPrefix = "YAMLBRIDGE"
)

// Output formats of the convert command.
const (
	FormatJSON = "json"
	FormatLua  = "lua"
	FormatHCL  = "hcl"
	FormatDump = "dump"
)

// OutputFormats lists the supported output formats.
var OutputFormats = []string{FormatJSON, FormatLua, FormatHCL, FormatDump}

// Configuration keys.
const (
	KeyNullPolicy      = "bridge.null_policy"
	KeyMaxDepth        = "bridge.max_depth"
	KeyMaxNodes        = "bridge.max_nodes"
	KeyMergeKeys       = "bridge.merge_keys"
	KeyLogsLevel       = "logs.level"
	KeyLogsFile        = "logs.file"
	KeyOutputFormat    = "output.format"
	KeyOutputIndent    = "output.indent"
	KeyProfilerEnabled = "profiler.enabled"
)

// flagKeys maps command-line flags to the configuration keys they override.
var flagKeys = map[string]string{
	"null-policy": KeyNullPolicy,
	"max-depth":   KeyMaxDepth,
	"max-nodes":   KeyMaxNodes,
	"merge-keys":  KeyMergeKeys,
	"logs-level":  KeyLogsLevel,
	"logs-file":   KeyLogsFile,
	"format":      KeyOutputFormat,
	"indent":      KeyOutputIndent,
	"profile":     KeyProfilerEnabled,
}
