package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	errUtils "github.com/cloudposse/yamlbridge/errors"
	"github.com/cloudposse/yamlbridge/pkg/bridge"
	"github.com/cloudposse/yamlbridge/pkg/logger"
	"github.com/cloudposse/yamlbridge/pkg/schema"
)

// Validate checks every section of the configuration.
// Failures carry the input exit code.
func Validate(cfg *schema.Configuration) error {
	opts, err := BridgeOptions(cfg)
	if err != nil {
		return inputError(err)
	}
	if _, err := bridge.New(opts...); err != nil {
		return inputError(err)
	}
	if _, err := logger.ParseLogLevel(cfg.Logs.Level); err != nil {
		return inputError(err)
	}
	if err := ValidateOutputFormat(cfg.Output.Format); err != nil {
		return inputError(err)
	}
	if cfg.Output.Indent < 0 {
		return inputError(errors.Newf("invalid indent %d (must not be negative)", cfg.Output.Indent))
	}
	return nil
}

// ValidateOutputFormat checks that format names a supported output format.
func ValidateOutputFormat(format string) error {
	if lo.Contains(OutputFormats, format) {
		return nil
	}
	return errUtils.Build(errUtils.ErrInvalidOutputFormat).
		Wrapf("%q", format).
		WithHintf("Supported formats are %s", strings.Join(OutputFormats, ", ")).
		Err()
}

// BridgeOptions translates the bridge section into bridge options.
func BridgeOptions(cfg *schema.Configuration) ([]bridge.Option, error) {
	policy, err := bridge.ParseNullPolicy(cfg.Bridge.NullPolicy)
	if err != nil {
		return nil, err
	}
	return []bridge.Option{
		bridge.WithNullPolicy(policy),
		bridge.WithMaxDepth(cfg.Bridge.MaxDepth),
		bridge.WithMaxNodes(cfg.Bridge.MaxNodes),
		bridge.WithMergeKeys(cfg.Bridge.MergeKeys),
	}, nil
}

func inputError(err error) error {
	return errUtils.WithExitCode(err, errUtils.ExitCodeInput)
}
