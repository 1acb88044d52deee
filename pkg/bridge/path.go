package bridge

import (
	"strconv"
	"strings"

	"github.com/cloudposse/yamlbridge/pkg/value"
)

type segmentKind int

const (
	segmentRoot segmentKind = iota
	segmentIndex
	segmentKey
)

// segment locates a collection element inside its parent.
type segment struct {
	kind  segmentKind
	index int
	key   value.Key
}

func indexSegment(i int) segment {
	return segment{kind: segmentIndex, index: i}
}

func keySegment(k value.Key) segment {
	return segment{kind: segmentKey, key: k}
}

// formatPath renders segments as $.a.b[0]["c d"].
func formatPath(segments []segment) string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, s := range segments {
		switch s.kind {
		case segmentIndex:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(s.index))
			sb.WriteByte(']')
		case segmentKey:
			k := s.key.Value()
			if str, ok := k.(value.String); ok && isIdentifier(string(str)) {
				sb.WriteByte('.')
				sb.WriteString(string(str))
				continue
			}
			sb.WriteByte('[')
			sb.WriteString(value.Format(k))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '-' && i > 0:
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
