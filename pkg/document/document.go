package document

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	errUtils "github.com/cloudposse/yamlbridge/errors"
)

// Node is a parsed YAML document value.
type Node = yaml.Node

// Parse parses a single YAML document. Empty input yields a document holding null.
// A stream with more than one document is rejected.
func Parse(text string) (*Node, error) {
	docs, err := ParseAll(text)
	if err != nil {
		return nil, err
	}

	switch len(docs) {
	case 0:
		return NullDocument(), nil
	case 1:
		return docs[0], nil
	default:
		return nil, errUtils.Build(errUtils.ErrGrammar).
			Wrapf("input contains %d documents, expected one", len(docs)).
			WithHint("Use the all-documents mode to convert a multi-document stream").
			Err()
	}
}

// ParseAll parses every document of a YAML stream in order.
func ParseAll(text string) ([]*Node, error) {
	decoder := yaml.NewDecoder(strings.NewReader(text))

	var docs []*Node
	for {
		var node Node
		err := decoder.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, grammarError(err)
		}
		docs = append(docs, &node)
	}
	return docs, nil
}

// NullDocument returns a document node holding a single null scalar.
func NullDocument() *Node {
	return &Node{
		Kind: yaml.DocumentNode,
		Content: []*Node{{
			Kind:  yaml.ScalarNode,
			Tag:   TagNull,
			Value: "",
		}},
	}
}

// grammarError keeps the parser's message unchanged and marks it as a grammar failure.
func grammarError(err error) error {
	return errors.Mark(err, errUtils.ErrGrammar)
}
