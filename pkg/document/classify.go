package document

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	errUtils "github.com/cloudposse/yamlbridge/errors"
)

// Short tags resolved by the parser.
const (
	TagNull      = "!!null"
	TagBool      = "!!bool"
	TagInt       = "!!int"
	TagFloat     = "!!float"
	TagStr       = "!!str"
	TagTimestamp = "!!timestamp"
	TagBinary    = "!!binary"
	TagMerge     = "!!merge"
	TagSeq       = "!!seq"
	TagMap       = "!!map"
)

// Kind is the source variant of a node.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindNull:     "null",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindSequence: "sequence",
	KindMapping:  "mapping",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Resolve unwraps document and alias nodes down to the node that carries the value.
// An empty document resolves to a null scalar.
func Resolve(n *Node) *Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return NullDocument().Content[0]
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// Classify returns the source variant of n after resolving document and alias wrappers.
// Scalars carrying a local tag (e.g. !ref) resolve as strings; timestamps, binary and
// merge-key scalars are strings too.
func Classify(n *Node) (Kind, error) {
	r := Resolve(n)
	if r == nil {
		return KindInvalid, errors.Wrap(errUtils.ErrGrammar, "unresolvable node")
	}

	switch r.Kind {
	case yaml.SequenceNode:
		return KindSequence, nil
	case yaml.MappingNode:
		return KindMapping, nil
	case yaml.ScalarNode:
		return classifyScalar(r), nil
	case 0:
		// The zero node is what yaml.v3 leaves behind for an empty stream.
		return KindNull, nil
	}
	return KindInvalid, errors.Wrapf(errUtils.ErrGrammar, "unexpected node kind %d at line %d", r.Kind, r.Line)
}

func classifyScalar(n *Node) Kind {
	switch n.ShortTag() {
	case TagNull:
		return KindNull
	case TagBool:
		return KindBool
	case TagInt:
		return KindInt
	case TagFloat:
		// Only an implicitly resolved float can be an overflowing integer.
		if n.Style&yaml.TaggedStyle == 0 && IsIntegerLexeme(n.Value) {
			return KindInt
		}
		return KindFloat
	default:
		return KindString
	}
}
