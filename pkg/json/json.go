// Package json renders value trees as JSON with table keys kept in insertion order.
package json

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	errUtils "github.com/cloudposse/yamlbridge/errors"
	"github.com/cloudposse/yamlbridge/pkg/perf"
	"github.com/cloudposse/yamlbridge/pkg/value"
)

const streamBufferSize = 4096

// Encode writes v to w as JSON. A positive indent pretty-prints with that many spaces.
// Table keys that are not strings are written as their scalar text, and the special floats
// are written as the strings ".inf", "-.inf" and ".nan". A table whose keys collide as text
// fails with ErrUnsupportedKey.
func Encode(w io.Writer, v value.Value, indent int) error {
	defer perf.Track(nil, "json.Encode")()

	cfg := jsoniter.Config{
		IndentionStep:          indent,
		EscapeHTML:             false,
		SortMapKeys:            false,
		ValidateJsonRawMessage: true,
	}.Froze()

	stream := jsoniter.NewStream(cfg, w, streamBufferSize)
	if err := encode(stream, v, "$"); err != nil {
		return err
	}
	if stream.Error != nil {
		return errors.Mark(errors.Wrap(stream.Error, "encode JSON"), errUtils.ErrWriteOut)
	}
	if err := stream.Flush(); err != nil {
		return errors.Mark(errors.Wrap(err, "flush JSON"), errUtils.ErrWriteOut)
	}
	return nil
}

// Marshal returns the JSON encoding of v.
func Marshal(v value.Value, indent int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(stream *jsoniter.Stream, v value.Value, path string) error {
	switch tv := v.(type) {
	case value.Bool:
		stream.WriteBool(bool(tv))
	case value.Int:
		stream.WriteInt64(int64(tv))
	case value.Float:
		f := float64(tv)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			stream.WriteString(value.FormatFloat(f))
			return nil
		}
		stream.WriteFloat64(f)
	case value.String:
		stream.WriteString(string(tv))
	case *value.Array:
		if tv.Len() == 0 {
			stream.WriteEmptyArray()
			return nil
		}
		stream.WriteArrayStart()
		for i, item := range tv.Items() {
			if i > 0 {
				stream.WriteMore()
			}
			if err := encode(stream, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		stream.WriteArrayEnd()
	case *value.Table:
		return encodeTable(stream, tv, path)
	default:
		// value.Nil and absence.
		stream.WriteNil()
	}
	return nil
}

// encodeTable writes t as an object. Two keys with the same text, such as 1 and "1",
// cannot both appear in one JSON object.
func encodeTable(stream *jsoniter.Stream, t *value.Table, path string) error {
	if t.Len() == 0 {
		stream.WriteEmptyObject()
		return nil
	}

	seen := make(map[string]value.Value, t.Len())
	var err error
	stream.WriteObjectStart()
	t.Range(func(k, item value.Value) bool {
		name := keyText(k)
		if prev, ok := seen[name]; ok {
			err = errUtils.Build(errUtils.ErrUnsupportedKey).
				Wrapf("keys %s and %s at %s are both written as the JSON name %q",
					value.Format(prev), value.Format(k), path, name).
				Err()
			return false
		}
		if len(seen) > 0 {
			stream.WriteMore()
		}
		seen[name] = k
		stream.WriteObjectField(name)
		err = encode(stream, item, path+"["+strconv.Quote(name)+"]")
		return err == nil
	})
	if err != nil {
		return err
	}
	stream.WriteObjectEnd()
	return nil
}

func keyText(k value.Value) string {
	switch tk := k.(type) {
	case value.String:
		return string(tk)
	case value.Float:
		return value.FormatFloat(float64(tk))
	}
	return value.Format(k)
}
