package schema

// Configuration represents the schema of the `yamlbridge.yaml` CLI config.
type Configuration struct {
	Bridge   Bridge   `yaml:"bridge" json:"bridge" mapstructure:"bridge"`
	Logs     Logs     `yaml:"logs,omitempty" json:"logs,omitempty" mapstructure:"logs"`
	Output   Output   `yaml:"output,omitempty" json:"output,omitempty" mapstructure:"output"`
	Profiler Profiler `yaml:"profiler,omitempty" json:"profiler,omitempty" mapstructure:"profiler"`

	// CliConfigPath is the config file that was loaded, empty when only defaults and env were used.
	CliConfigPath string `yaml:"cli_config_path,omitempty" json:"cli_config_path,omitempty" mapstructure:"cli_config_path"`
}

// Bridge holds the conversion policy.
type Bridge struct {
	NullPolicy string `yaml:"null_policy" json:"null_policy" mapstructure:"null_policy"`
	MaxDepth   int    `yaml:"max_depth" json:"max_depth" mapstructure:"max_depth"`
	MaxNodes   int    `yaml:"max_nodes" json:"max_nodes" mapstructure:"max_nodes"`
	MergeKeys  bool   `yaml:"merge_keys" json:"merge_keys" mapstructure:"merge_keys"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

type Output struct {
	Format string `yaml:"format" json:"format" mapstructure:"format"`
	Indent int    `yaml:"indent" json:"indent" mapstructure:"indent"`
}

type Profiler struct {
	Enabled bool `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
}
