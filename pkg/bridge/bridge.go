package bridge

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/cloudposse/yamlbridge/pkg/value"
)

// Bridge converts YAML document nodes into values. It is immutable after New.
type Bridge struct {
	opts Options
}

// New returns a Bridge configured by opts on top of DefaultOptions.
func New(opts ...Option) (*Bridge, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Bridge{opts: o}, nil
}

// Default returns a Bridge with DefaultOptions.
func Default() *Bridge {
	return &Bridge{opts: DefaultOptions()}
}

// Options returns the configuration of the bridge.
func (b *Bridge) Options() Options {
	return b.opts
}

// NullPolicy returns the configured null policy.
func (b *Bridge) NullPolicy() NullPolicy {
	return b.opts.NullPolicy
}

// Null returns the configured representation of YAML null: value.Nil or absence.
func (b *Bridge) Null() value.Value {
	if b.opts.NullPolicy == NullAbsent {
		return nil
	}
	return value.Nil
}

// Convert converts a parsed document (or any node inside one) into a value.
// A nil node converts like an empty document.
func (b *Bridge) Convert(node *yaml.Node) (value.Value, error) {
	if node == nil {
		return b.Null(), nil
	}
	w := walker{bridge: b}
	return w.run(node)
}

// ConvertAll converts documents in order. It stops at the first failure.
func (b *Bridge) ConvertAll(nodes []*yaml.Node) ([]value.Value, error) {
	values := make([]value.Value, 0, len(nodes))
	for i, n := range nodes {
		v, err := b.Convert(n)
		if err != nil {
			return nil, errors.Wrapf(err, "document %d", i+1)
		}
		values = append(values, v)
	}
	return values, nil
}
