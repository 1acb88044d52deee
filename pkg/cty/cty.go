// Package cty converts value trees into cty values and renders them as HCL.
package cty

import (
	"math"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	errUtils "github.com/cloudposse/yamlbridge/errors"
	"github.com/cloudposse/yamlbridge/pkg/perf"
	"github.com/cloudposse/yamlbridge/pkg/value"
)

// ToCty converts v into a cty value.
// Null becomes a dynamic null, arrays become tuples and tables become objects.
// Absent table entries are omitted and absent array elements become null.
func ToCty(v value.Value) (cty.Value, error) {
	defer perf.Track(nil, "cty.ToCty")()

	return toCty(v, "$")
}

func toCty(v value.Value, path string) (cty.Value, error) {
	switch tv := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case value.Bool:
		return cty.BoolVal(bool(tv)), nil
	case value.Int:
		return cty.NumberIntVal(int64(tv)), nil
	case value.Float:
		return floatToCty(float64(tv), path)
	case value.String:
		return cty.StringVal(string(tv)), nil
	case *value.Array:
		return arrayToCty(tv, path)
	case *value.Table:
		return tableToCty(tv, path)
	}
	if value.IsNull(v) {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	return cty.NilVal, errUtils.Build(errUtils.ErrUnsupportedValue).
		Wrapf("%T at %s", v, path).
		Err()
}

func floatToCty(f float64, path string) (cty.Value, error) {
	switch {
	case math.IsNaN(f):
		return cty.NilVal, errUtils.Build(errUtils.ErrUnsupportedValue).
			Wrapf("NaN at %s", path).
			WithHint("cty numbers cannot represent NaN").
			Err()
	case math.IsInf(f, 1):
		return cty.PositiveInfinity, nil
	case math.IsInf(f, -1):
		return cty.NegativeInfinity, nil
	}
	return cty.NumberFloatVal(f), nil
}

// arrayToCty converts an array to a tuple, the only cty collection that allows mixed element types.
func arrayToCty(a *value.Array, path string) (cty.Value, error) {
	if a.Len() == 0 {
		return cty.EmptyTupleVal, nil
	}
	vals := make([]cty.Value, a.Len())
	for i, item := range a.Items() {
		val, err := toCty(item, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return cty.NilVal, err
		}
		vals[i] = val
	}
	return cty.TupleVal(vals), nil
}

func tableToCty(t *value.Table, path string) (cty.Value, error) {
	if t.Len() == 0 {
		return cty.EmptyObjectVal, nil
	}

	vals := make(map[string]cty.Value, t.Len())
	var err error
	t.Range(func(k, item value.Value) bool {
		s, ok := k.(value.String)
		if !ok {
			err = errUtils.Build(errUtils.ErrUnsupportedKey).
				Wrapf("%s key %s at %s", value.KindOf(k), value.Format(k), path).
				WithHint("cty object attributes must be strings").
				Err()
			return false
		}
		var val cty.Value
		val, err = toCty(item, path+"["+strconv.Quote(string(s))+"]")
		if err != nil {
			return false
		}
		vals[string(s)] = val
		return true
	})
	if err != nil {
		return cty.NilVal, err
	}
	return cty.ObjectVal(vals), nil
}

// FormatHCL renders v as HCL. A table whose keys are all identifiers is written as a body of
// attributes in key order; anything else is written as a single expression.
func FormatHCL(v value.Value) ([]byte, error) {
	defer perf.Track(nil, "cty.FormatHCL")()

	val, err := ToCty(v)
	if err != nil {
		return nil, err
	}
	if err := checkFinite(val); err != nil {
		return nil, err
	}

	t, ok := v.(*value.Table)
	if !ok || !identifierKeys(t) {
		return append(hclwrite.TokensForValue(val).Bytes(), '\n'), nil
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body()
	t.Range(func(k, _ value.Value) bool {
		name := string(k.(value.String))
		body.SetAttributeValue(name, val.GetAttr(name))
		return true
	})
	return hclwrite.Format(f.Bytes()), nil
}

func identifierKeys(t *value.Table) bool {
	if t.Len() == 0 {
		return false
	}
	ok := true
	t.Range(func(k, _ value.Value) bool {
		s, isString := k.(value.String)
		ok = isString && hclsyntax.ValidIdentifier(string(s))
		return ok
	})
	return ok
}

// checkFinite rejects infinities, which have no HCL literal.
func checkFinite(val cty.Value) error {
	return cty.Walk(val, func(p cty.Path, v cty.Value) (bool, error) {
		if v.IsNull() || !v.IsKnown() || v.Type() != cty.Number {
			return true, nil
		}
		if v.AsBigFloat().IsInf() {
			return false, errUtils.Build(errUtils.ErrUnsupportedValue).
				Wrapf("infinite number at %s", formatCtyPath(p)).
				WithHint("HCL has no literal for infinity").
				Err()
		}
		return true, nil
	})
}

func formatCtyPath(p cty.Path) string {
	s := "$"
	for _, step := range p {
		switch st := step.(type) {
		case cty.GetAttrStep:
			s += "[" + strconv.Quote(st.Name) + "]"
		case cty.IndexStep:
			if st.Key.Type() == cty.Number {
				i, _ := st.Key.AsBigFloat().Int64()
				s += "[" + strconv.FormatInt(i, 10) + "]"
			} else if st.Key.Type() == cty.String {
				s += "[" + strconv.Quote(st.Key.AsString()) + "]"
			}
		}
	}
	return s
}
