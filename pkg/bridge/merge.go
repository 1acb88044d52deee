package bridge

import (
	"gopkg.in/yaml.v3"

	errUtils "github.com/cloudposse/yamlbridge/errors"
	"github.com/cloudposse/yamlbridge/pkg/document"
)

// mappingPairs returns the flattened key/value nodes of a mapping. With merge keys enabled,
// pairs pulled in through << come first so that explicit keys, converted later, win under
// last-key-wins. Earlier merge sources win over later ones.
func (w *walker) mappingPairs(m *yaml.Node, depth int, seg segment) ([]*yaml.Node, error) {
	if !w.bridge.opts.MergeKeys || !hasMergeKey(m) {
		return m.Content, nil
	}

	var merged, explicit []*yaml.Node
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if !isMergeKey(k) {
			explicit = append(explicit, k, v)
			continue
		}

		sources, err := w.mergeSources(v, seg)
		if err != nil {
			return nil, err
		}
		for j := len(sources) - 1; j >= 0; j-- {
			if depth+1 > w.bridge.opts.MaxDepth {
				return nil, w.depthError(seg)
			}
			// Every expansion of a source and every pair it contributes counts toward the
			// node limit before it is copied, so repeated sources cannot grow the slice unbounded.
			if err := w.count(seg); err != nil {
				return nil, err
			}
			pairs, err := w.mappingPairs(sources[j], depth+1, seg)
			if err != nil {
				return nil, err
			}
			if err := w.countN(len(pairs)/2, seg); err != nil {
				return nil, err
			}
			merged = append(merged, pairs...)
		}
	}

	return append(merged, explicit...), nil
}

// mergeSources resolves the value of a << key to the mappings it references.
func (w *walker) mergeSources(v *yaml.Node, seg segment) ([]*yaml.Node, error) {
	r := document.Resolve(v)
	switch r.Kind {
	case yaml.MappingNode:
		return []*yaml.Node{r}, nil
	case yaml.SequenceNode:
		sources := make([]*yaml.Node, 0, len(r.Content))
		for _, item := range r.Content {
			ri := document.Resolve(item)
			if ri.Kind != yaml.MappingNode {
				return nil, w.mergeError(item, seg)
			}
			sources = append(sources, ri)
		}
		return sources, nil
	}
	return nil, w.mergeError(v, seg)
}

func (w *walker) mergeError(n *yaml.Node, seg segment) error {
	kind, _ := document.Classify(n)
	return errUtils.Build(errUtils.ErrGrammar).
		Wrapf("merge key at %s (line %d) must reference a mapping or a sequence of mappings", w.path(seg), n.Line).
		WithExplanationf("The merge source has kind %s.", kind).
		Err()
}

func hasMergeKey(m *yaml.Node) bool {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if isMergeKey(m.Content[i]) {
			return true
		}
	}
	return false
}

func isMergeKey(n *yaml.Node) bool {
	r := document.Resolve(n)
	return r != nil && r.Kind == yaml.ScalarNode && r.ShortTag() == document.TagMerge
}
