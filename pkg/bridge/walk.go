package bridge

import (
	"math"
	"math/big"

	"gopkg.in/yaml.v3"

	errUtils "github.com/cloudposse/yamlbridge/errors"
	"github.com/cloudposse/yamlbridge/pkg/document"
	"github.com/cloudposse/yamlbridge/pkg/value"
)

// frame is a collection under construction on the work stack.
type frame struct {
	seg      segment
	depth    int
	children []*yaml.Node
	next     int
	array    *value.Array
	table    *value.Table
}

func (f *frame) value() value.Value {
	if f.array != nil {
		return f.array
	}
	return f.table
}

type walker struct {
	bridge *Bridge
	stack  []frame
	nodes  int
}

func (w *walker) run(root *yaml.Node) (value.Value, error) {
	v, pushed, err := w.visit(root, segment{}, 0)
	if err != nil || !pushed {
		return v, err
	}

	for {
		top := &w.stack[len(w.stack)-1]

		if top.next >= len(top.children) {
			done := w.stack[len(w.stack)-1]
			w.stack = w.stack[:len(w.stack)-1]
			if len(w.stack) == 0 {
				return done.value(), nil
			}
			w.attach(&w.stack[len(w.stack)-1], done.seg, done.value())
			continue
		}

		if top.array != nil {
			child := top.children[top.next]
			seg := indexSegment(top.next)
			top.next++

			v, pushed, err := w.visit(child, seg, top.depth)
			if err != nil {
				return nil, err
			}
			if !pushed {
				top.array.Append(v)
			}
			continue
		}

		keyNode, valueNode := top.children[top.next], top.children[top.next+1]
		top.next += 2

		key, err := w.key(keyNode)
		if err != nil {
			return nil, err
		}
		seg := keySegment(key)

		v, pushed, err := w.visit(valueNode, seg, top.depth)
		if err != nil {
			return nil, err
		}
		if !pushed {
			top.table.SetKey(key, v)
		}
	}
}

// attach stores a finished collection into its parent.
func (w *walker) attach(parent *frame, seg segment, v value.Value) {
	if parent.array != nil {
		parent.array.Append(v)
		return
	}
	parent.table.SetKey(seg.key, v)
}

// visit converts a scalar in place or pushes a frame for a collection.
// The returned flag reports whether a frame was pushed.
func (w *walker) visit(n *yaml.Node, seg segment, parentDepth int) (value.Value, bool, error) {
	if err := w.count(seg); err != nil {
		return nil, false, err
	}

	kind, err := document.Classify(n)
	if err != nil {
		return nil, false, w.wrap(err, seg)
	}
	r := document.Resolve(n)

	switch kind {
	case document.KindSequence, document.KindMapping:
		depth := parentDepth + 1
		if depth > w.bridge.opts.MaxDepth {
			return nil, false, w.depthError(seg)
		}

		f := frame{seg: seg, depth: depth}
		if kind == document.KindSequence {
			f.children = r.Content
			f.array = value.NewArray(len(r.Content))
		} else {
			children, err := w.mappingPairs(r, depth, seg)
			if err != nil {
				return nil, false, err
			}
			f.children = children
			f.table = value.NewTable(len(children) / 2)
		}
		w.stack = append(w.stack, f)
		return nil, true, nil
	}

	v, err := w.scalar(r, kind, seg)
	return v, false, err
}

// scalar converts a scalar node of the given kind.
func (w *walker) scalar(n *yaml.Node, kind document.Kind, seg segment) (value.Value, error) {
	switch kind {
	case document.KindNull:
		return w.bridge.Null(), nil
	case document.KindBool:
		b, err := document.BoolValue(n)
		if err != nil {
			return nil, w.wrap(err, seg)
		}
		return value.Bool(b), nil
	case document.KindInt:
		i, err := document.IntValue(n)
		if err != nil {
			return nil, w.wrap(err, seg)
		}
		return w.integer(i, n, seg)
	case document.KindFloat:
		f, err := document.FloatValue(n)
		if err != nil {
			return nil, w.wrap(err, seg)
		}
		return value.Float(f), nil
	case document.KindString:
		s, err := document.StringValue(n)
		if err != nil {
			return nil, w.wrap(err, seg)
		}
		return value.String(s), nil
	}
	return nil, errUtils.Build(errUtils.ErrUnsupportedValue).
		Wrapf("%s node at %s", kind, w.path(seg)).
		Err()
}

func (w *walker) integer(i *big.Int, n *yaml.Node, seg segment) (value.Value, error) {
	opts := w.bridge.opts
	if i.IsInt64() {
		if v := i.Int64(); v >= opts.MinInt && v <= opts.MaxInt {
			return value.Int(v), nil
		}
	}
	return nil, errUtils.Build(errUtils.ErrRange).
		Wrapf("integer %s at %s (line %d) outside [%d, %d]", i.String(), w.path(seg), n.Line, opts.MinInt, opts.MaxInt).
		WithContext("path", w.path(seg)).
		WithHint("Quote the value to keep it as a string").
		Err()
}

// key converts a mapping key node. Only scalars that can index a table are accepted.
func (w *walker) key(n *yaml.Node) (value.Key, error) {
	kind, err := document.Classify(n)
	if err != nil {
		return value.Key{}, w.wrap(err, segment{})
	}

	switch kind {
	case document.KindSequence, document.KindMapping, document.KindNull:
		return value.Key{}, w.keyError(kind.String(), n)
	}

	if err := w.count(segment{}); err != nil {
		return value.Key{}, err
	}

	v, err := w.scalar(document.Resolve(n), kind, segment{})
	if err != nil {
		return value.Key{}, err
	}
	if f, ok := v.(value.Float); ok && w.bridge.opts.FoldFloatKeys {
		if i, ok := w.integralKey(float64(f)); ok {
			v = value.Int(i)
		}
	}
	k, ok := value.KeyOf(v)
	if !ok {
		// Only NaN reaches this point.
		return value.Key{}, w.keyError("NaN "+kind.String(), n)
	}
	return k, nil
}

// integralKey reports whether f is a whole number inside the configured integer range.
func (w *walker) integralKey(f float64) (int64, bool) {
	// 2^63 is the first float64 above the int64 range.
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	i := int64(f)
	opts := w.bridge.opts
	return i, i >= opts.MinInt && i <= opts.MaxInt
}

func (w *walker) keyError(kind string, n *yaml.Node) error {
	p := w.path(segment{})
	return errUtils.Build(errUtils.ErrUnsupportedKey).
		Wrapf("%s key at %s (line %d, column %d)", kind, p, n.Line, n.Column).
		WithContext("path", p).
		WithContext("key_type", kind).
		WithHint("Mapping keys must be strings, numbers or booleans").
		Err()
}

func (w *walker) depthError(seg segment) error {
	p := w.path(seg)
	return errUtils.Build(errUtils.ErrDepthExceeded).
		Wrapf("nesting deeper than %d at %s", w.bridge.opts.MaxDepth, p).
		WithContext("path", p).
		WithHint("Raise the maximum depth if the document is legitimately this deep").
		Err()
}

func (w *walker) count(seg segment) error {
	return w.countN(1, seg)
}

// countN charges n nodes against the node limit.
func (w *walker) countN(n int, seg segment) error {
	w.nodes += n
	if w.nodes <= w.bridge.opts.MaxNodes {
		return nil
	}
	return errUtils.Build(errUtils.ErrNodeLimit).
		Wrapf("more than %d nodes at %s", w.bridge.opts.MaxNodes, w.path(seg)).
		WithHint("Check the document for aliases that expand recursively").
		Err()
}

// wrap adds the current path to an error raised while resolving a scalar.
func (w *walker) wrap(err error, seg segment) error {
	return errUtils.Build(err).Wrapf("at %s", w.path(seg)).Err()
}

// path renders the location of seg below the frames currently on the stack.
func (w *walker) path(seg segment) string {
	segments := make([]segment, 0, len(w.stack)+1)
	for i := range w.stack {
		if w.stack[i].seg.kind != segmentRoot {
			segments = append(segments, w.stack[i].seg)
		}
	}
	if seg.kind != segmentRoot {
		segments = append(segments, seg)
	}
	return formatPath(segments)
}
