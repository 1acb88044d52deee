package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/yamlbridge/errors"
	"github.com/cloudposse/yamlbridge/pkg/config"
	yamlconv "github.com/cloudposse/yamlbridge/pkg/convert"
	ctyhost "github.com/cloudposse/yamlbridge/pkg/cty"
	jsonhost "github.com/cloudposse/yamlbridge/pkg/json"
	luahost "github.com/cloudposse/yamlbridge/pkg/lua"
	"github.com/cloudposse/yamlbridge/pkg/logger"
	"github.com/cloudposse/yamlbridge/pkg/perf"
	"github.com/cloudposse/yamlbridge/pkg/value"
)

const stdinName = "-"

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [FILE|-]",
		Short: "Convert a YAML document and print the resulting value",
		Long: `Convert a YAML document (read from FILE, or stdin when FILE is omitted or "-") ` +
			`and print the resulting value as JSON, a Lua table constructor, HCL, or a Go dump.`,
		Example: "yamlbridge convert config.yaml --format lua\n" +
			"cat stream.yaml | yamlbridge convert --all-documents",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := stdinName
			if len(args) == 1 {
				name = args[0]
			}
			allDocuments, _ := cmd.Flags().GetBool("all-documents")
			return a.convert(cmd.InOrStdin(), cmd.OutOrStdout(), name, allDocuments)
		},
	}

	cmd.Flags().StringP("format", "f", config.FormatJSON, "Output format: "+strings.Join(config.OutputFormats, ", "))
	cmd.Flags().BoolP("all-documents", "a", false, "Convert every document of a multi-document stream into an array")
	cmd.Flags().Int("indent", 2, "Indentation width; 0 prints compact output")
	return cmd
}

func (a *app) convert(stdin io.Reader, out io.Writer, name string, allDocuments bool) error {
	defer perf.Track(&a.cfg, "cmd.convert")()

	input, err := readInput(stdin, name)
	if err != nil {
		return err
	}

	opts, err := a.bridgeOptions()
	if err != nil {
		return errUtils.WithExitCode(err, errUtils.ExitCodeInput)
	}

	var v value.Value
	if allDocuments {
		var values []value.Value
		values, err = yamlconv.YAMLDocumentsToValues(input, opts...)
		v = value.ArrayOf(values...)
	} else {
		v, err = yamlconv.YAMLToValue(input, opts...)
	}
	if err != nil {
		return errUtils.Build(err).
			WithContext("file", name).
			WithExitCode(errUtils.ExitCodeInput).
			Err()
	}
	logger.Debug("converted", "file", name, "kind", value.KindOf(v), "format", a.cfg.Output.Format)

	return render(out, v, a.cfg.Output.Format, a.cfg.Output.Indent)
}

func readInput(stdin io.Reader, name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", errUtils.Build(errUtils.ErrReadInput).
			Wrapf("%s: %s", name, err).
			WithExitCode(errUtils.ExitCodeInput).
			Err()
	}
	return string(data), nil
}

// render writes v to out in format.
func render(out io.Writer, v value.Value, format string, indent int) error {
	defer perf.Track(nil, "cmd.render")()

	var err error
	switch format {
	case config.FormatJSON:
		err = jsonhost.Encode(out, v, indent)
		if err != nil && !errors.Is(err, errUtils.ErrWriteOut) {
			return errUtils.WithExitCode(err, errUtils.ExitCodeInput)
		}
		if err == nil {
			_, err = io.WriteString(out, "\n")
		}
	case config.FormatLua:
		_, err = io.WriteString(out, luahost.Encode(v, indent)+"\n")
	case config.FormatHCL:
		var b []byte
		b, err = ctyhost.FormatHCL(v)
		if err != nil {
			return errUtils.WithExitCode(err, errUtils.ExitCodeInput)
		}
		_, err = out.Write(b)
	case config.FormatDump:
		cs := spew.ConfigState{
			Indent:                  strings.Repeat(" ", max(indent, 1)),
			SortKeys:                true,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
		cs.Fdump(out, yamlconv.ValueToNative(v))
	default:
		return errUtils.WithExitCode(config.ValidateOutputFormat(format), errUtils.ExitCodeInput)
	}

	if err != nil && !errors.Is(err, errUtils.ErrWriteOut) {
		err = errors.Mark(errors.Wrap(err, "write output"), errUtils.ErrWriteOut)
	}
	return err
}
