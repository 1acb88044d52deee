package cty

import (
	"strings"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	errUtils "github.com/cloudposse/yamlbridge/errors"
	"github.com/cloudposse/yamlbridge/pkg/bridge"
	"github.com/cloudposse/yamlbridge/pkg/convert"
	"github.com/cloudposse/yamlbridge/pkg/value"
)

func mustValue(t *testing.T, input string, opts ...bridge.Option) value.Value {
	t.Helper()
	v, err := convert.YAMLToValue(input, opts...)
	require.NoError(t, err)
	return v
}

func TestToCty(t *testing.T) {
	got, err := ToCty(mustValue(t, "a: 1\nb: 2.5\nc: true\nd: null\ne: [x, 2]\nf: {}\ng: []"))
	require.NoError(t, err)

	want := cty.ObjectVal(map[string]cty.Value{
		"a": cty.NumberIntVal(1),
		"b": cty.NumberFloatVal(2.5),
		"c": cty.True,
		"d": cty.NullVal(cty.DynamicPseudoType),
		"e": cty.TupleVal([]cty.Value{cty.StringVal("x"), cty.NumberIntVal(2)}),
		"f": cty.EmptyObjectVal,
		"g": cty.EmptyTupleVal,
	})
	assert.True(t, want.RawEquals(got), "want %#v\ngot  %#v", want, got)
}

func TestToCty_AbsentPolicy(t *testing.T) {
	got, err := ToCty(mustValue(t, "a: 1\nb: null\nc: [null, 1]", bridge.WithNullPolicy(bridge.NullAbsent)))
	require.NoError(t, err)

	assert.True(t, got.Type().HasAttribute("a"))
	assert.False(t, got.Type().HasAttribute("b"))
	c := got.GetAttr("c")
	assert.True(t, c.Index(cty.NumberIntVal(0)).IsNull())
}

func TestToCty_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     error
		contains string
	}{
		{"non-string key", "a:\n  1: x\n", errUtils.ErrUnsupportedKey, `int key 1 at $["a"]`},
		{"nan", "a: [.nan]", errUtils.ErrUnsupportedValue, `NaN at $["a"][0]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToCty(mustValue(t, tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestFormatHCL_Body(t *testing.T) {
	v := mustValue(t, "name: web\nreplicas: 3\ntags: [a, b]\nlimits: {cpu: 1}\n")

	out, err := FormatHCL(v)
	require.NoError(t, err)
	assert.Contains(t, string(out), "name")
	assert.Less(t, strings.Index(string(out), "name"), strings.Index(string(out), "replicas"))

	file, diags := hclsyntax.ParseConfig(out, "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())
	attrs, diags := file.Body.JustAttributes()
	require.False(t, diags.HasErrors(), diags.Error())

	want, err := ToCty(v)
	require.NoError(t, err)
	for name, attr := range attrs {
		got, diags := attr.Expr.Value(nil)
		require.False(t, diags.HasErrors(), diags.Error())
		assert.True(t, want.GetAttr(name).Equals(got).True(), "attribute %s", name)
	}
	assert.Len(t, attrs, 4)
}

func TestFormatHCL_Expression(t *testing.T) {
	tests := []string{
		"[1, two, true]",
		"\"not an identifier\": 1\n",
		"~",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			v := mustValue(t, input)
			out, err := FormatHCL(v)
			require.NoError(t, err)

			expr, diags := hclsyntax.ParseExpression(out, "test.hcl", hcl.InitialPos)
			require.False(t, diags.HasErrors(), diags.Error())
			got, diags := expr.Value(nil)
			require.False(t, diags.HasErrors(), diags.Error())

			want, err := ToCty(v)
			require.NoError(t, err)
			if want.IsNull() {
				assert.True(t, got.IsNull())
				return
			}
			assert.True(t, want.Equals(got).True())
		})
	}
}

func TestFormatHCL_Infinity(t *testing.T) {
	_, err := FormatHCL(mustValue(t, "a: [1, .inf]"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrUnsupportedValue)
	assert.Contains(t, err.Error(), `$["a"][1]`)
}
