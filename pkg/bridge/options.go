package bridge

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	errUtils "github.com/cloudposse/yamlbridge/errors"
)

// NullPolicy selects how YAML null is represented.
type NullPolicy string

const (
	// NullSentinel converts null to value.Nil. Keys holding null stay in their table.
	NullSentinel NullPolicy = "sentinel"

	// NullAbsent converts null to absence (Go nil). A table entry whose value is null is
	// not stored; arrays keep a nil element so positions are preserved.
	NullAbsent NullPolicy = "absent"
)

const (
	DefaultNullPolicy = NullSentinel
	DefaultMaxDepth   = 256
	DefaultMaxNodes   = 10_000_000
)

// NullPolicies lists the supported policies.
var NullPolicies = []NullPolicy{NullSentinel, NullAbsent}

// NullPolicyNames returns the supported policy names joined for help and error text.
func NullPolicyNames() string {
	return strings.Join(lo.Map(NullPolicies, func(p NullPolicy, _ int) string {
		return string(p)
	}), ", ")
}

// ParseNullPolicy parses a policy name. The empty string selects the default.
func ParseNullPolicy(s string) (NullPolicy, error) {
	p := NullPolicy(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return DefaultNullPolicy, nil
	}
	if !lo.Contains(NullPolicies, p) {
		return "", invalidNullPolicy(s)
	}
	return p, nil
}

func invalidNullPolicy(s string) error {
	return errUtils.Build(errUtils.ErrInvalidNullPolicy).
		Wrapf("%q", s).
		WithHintf("Supported null policies are %s", NullPolicyNames()).
		Err()
}

// Options configure a Bridge.
type Options struct {
	NullPolicy NullPolicy
	MaxDepth   int
	MaxNodes   int
	MinInt     int64
	MaxInt     int64
	MergeKeys  bool

	// FoldFloatKeys stores integral float keys (1.0) under the equal integer key (1),
	// for hosts whose tables index both by the same number.
	FoldFloatKeys bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: sentinel nulls, depth 256, the full int64 range and
// merge keys treated as ordinary keys.
func DefaultOptions() Options {
	return Options{
		NullPolicy: DefaultNullPolicy,
		MaxDepth:   DefaultMaxDepth,
		MaxNodes:   DefaultMaxNodes,
		MinInt:     math.MinInt64,
		MaxInt:     math.MaxInt64,
		MergeKeys:  false,
	}
}

// WithNullPolicy selects the null representation.
func WithNullPolicy(p NullPolicy) Option {
	return func(o *Options) {
		o.NullPolicy = p
	}
}

// WithMaxDepth limits collection nesting.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		o.MaxDepth = n
	}
}

// WithMaxNodes limits the number of converted nodes, counting every alias expansion.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		o.MaxNodes = n
	}
}

// WithIntRange narrows the accepted integer range to the host's native integer.
func WithIntRange(minInt, maxInt int64) Option {
	return func(o *Options) {
		o.MinInt = minInt
		o.MaxInt = maxInt
	}
}

// WithMergeKeys enables YAML merge keys (<<).
func WithMergeKeys(enabled bool) Option {
	return func(o *Options) {
		o.MergeKeys = enabled
	}
}

// WithFoldFloatKeys makes integral float keys within the integer range equal to the
// integer key with the same value.
func WithFoldFloatKeys(enabled bool) Option {
	return func(o *Options) {
		o.FoldFloatKeys = enabled
	}
}

// WithOptions replaces every option at once.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// Validate checks that the options describe a usable bridge.
func (o Options) Validate() error {
	if !lo.Contains(NullPolicies, o.NullPolicy) {
		return invalidNullPolicy(string(o.NullPolicy))
	}
	if o.MaxDepth <= 0 {
		return errors.Wrapf(errUtils.ErrInvalidMaxDepth, "%d (must be positive)", o.MaxDepth)
	}
	if o.MaxNodes <= 0 {
		return errors.Wrapf(errUtils.ErrInvalidMaxNodes, "%d (must be positive)", o.MaxNodes)
	}
	if o.MinInt > o.MaxInt {
		return errors.Wrapf(errUtils.ErrInvalidIntRange, "[%d, %d]", o.MinInt, o.MaxInt)
	}
	return nil
}
