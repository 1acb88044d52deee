package convert

import (
	"github.com/cloudposse/yamlbridge/pkg/bridge"
	"github.com/cloudposse/yamlbridge/pkg/document"
	"github.com/cloudposse/yamlbridge/pkg/perf"
	"github.com/cloudposse/yamlbridge/pkg/value"
)

// YAMLToValue takes a YAML document as input and returns its value tree.
// Empty input converts to the configured null representation.
func YAMLToValue(input string, opts ...bridge.Option) (value.Value, error) {
	defer perf.Track(nil, "convert.YAMLToValue")()

	b, err := bridge.New(opts...)
	if err != nil {
		return nil, err
	}

	node, err := document.Parse(input)
	if err != nil {
		return nil, err
	}
	return b.Convert(node)
}

// YAMLDocumentsToValues takes a YAML stream as input and returns the value of every document in order.
func YAMLDocumentsToValues(input string, opts ...bridge.Option) ([]value.Value, error) {
	defer perf.Track(nil, "convert.YAMLDocumentsToValues")()

	b, err := bridge.New(opts...)
	if err != nil {
		return nil, err
	}

	nodes, err := document.ParseAll(input)
	if err != nil {
		return nil, err
	}
	return b.ConvertAll(nodes)
}
