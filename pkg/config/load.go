package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/yamlbridge/errors"
	"github.com/cloudposse/yamlbridge/pkg/bridge"
	"github.com/cloudposse/yamlbridge/pkg/perf"
	"github.com/cloudposse/yamlbridge/pkg/schema"
)

// LoadConfig loads the configuration from the following sources (from lower to higher priority):
// defaults
// $XDG_CONFIG_HOME/yamlbridge/yamlbridge.yaml
// ./yamlbridge.yaml
// the file passed as configPath (it must exist)
// YAMLBRIDGE_* environment variables
// command-line flags that were set explicitly
func LoadConfig(flags *pflag.FlagSet, configPath string) (schema.Configuration, error) {
	defer perf.Track(nil, "config.LoadConfig")()

	var cfg schema.Configuration

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	setDefaultConfiguration(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, path := range searchPaths() {
		if err := mergeOptionalConfig(v, path); err != nil {
			return cfg, err
		}
	}

	if configPath != "" {
		if err := mergeConfig(v, configPath); err != nil {
			return cfg, errUtils.Build(errUtils.ErrLoadConfig).
				Wrapf("%s: %s", configPath, err).
				WithHint("Check the path passed with --config").
				WithExitCode(errUtils.ExitCodeInput).
				Err()
		}
	}

	if err := bindFlags(v, flags); err != nil {
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Mark(errors.Wrap(err, "decode configuration"), errUtils.ErrLoadConfig)
	}

	cfg.CliConfigPath = v.ConfigFileUsed()
	if cfg.CliConfigPath == "" {
		log.Debug("Using the default configuration", "paths", searchPaths())
	}

	if err := Validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setDefaultConfiguration sets the defaults for every configuration key.
func setDefaultConfiguration(v *viper.Viper) {
	defaults := bridge.DefaultOptions()
	v.SetDefault(KeyNullPolicy, string(defaults.NullPolicy))
	v.SetDefault(KeyMaxDepth, defaults.MaxDepth)
	v.SetDefault(KeyMaxNodes, defaults.MaxNodes)
	v.SetDefault(KeyMergeKeys, defaults.MergeKeys)
	v.SetDefault(KeyLogsLevel, "Info")
	v.SetDefault(KeyLogsFile, "/dev/stderr")
	v.SetDefault(KeyOutputFormat, FormatJSON)
	v.SetDefault(KeyOutputIndent, 2)
	v.SetDefault(KeyProfilerEnabled, false)
}

// searchPaths returns the optional config files, lowest priority first.
func searchPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, AppName, CliConfigFileName),
		CliConfigFileName,
	}
}

// mergeOptionalConfig merges path when it exists.
func mergeOptionalConfig(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debug("config not found", "file", path)
		return nil
	}
	if err := mergeConfig(v, path); err != nil {
		return errors.Mark(errors.Wrapf(err, "merge %s", path), errUtils.ErrLoadConfig)
	}
	return nil
}

// mergeConfig merges the YAML file at path into v.
func mergeConfig(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return err
	}
	log.Debug("merged config", "file", path)
	return nil
}

// bindFlags binds every known flag present in flags to its configuration key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for _, name := range lo.Keys(flagKeys) {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(flagKeys[name], flag); err != nil {
			return errors.Wrapf(err, "bind flag --%s", name)
		}
	}
	return nil
}
