package document

import (
	"encoding/base64"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/yamlbridge/errors"
)

var boolLexemes = map[string]bool{
	"true": true, "True": true, "TRUE": true,
	"false": false, "False": false, "FALSE": false,
	// YAML 1.1 spellings are only reached through an explicit !!bool tag.
	"y": true, "Y": true, "yes": true, "Yes": true, "YES": true, "on": true, "On": true, "ON": true,
	"n": false, "N": false, "no": false, "No": false, "NO": false, "off": false, "Off": false, "OFF": false,
}

var specialFloats = map[string]float64{
	".inf": math.Inf(1), ".Inf": math.Inf(1), ".INF": math.Inf(1),
	"+.inf": math.Inf(1), "+.Inf": math.Inf(1), "+.INF": math.Inf(1),
	"-.inf": math.Inf(-1), "-.Inf": math.Inf(-1), "-.INF": math.Inf(-1),
	".nan": math.NaN(), ".NaN": math.NaN(), ".NAN": math.NaN(),
}

// IsIntegerLexeme reports whether s is a plain decimal integer, optionally signed and
// with underscore separators. The parser tags such lexemes as floats when they overflow
// 64 bits.
func IsIntegerLexeme(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}

// BoolValue resolves a boolean scalar.
func BoolValue(n *Node) (bool, error) {
	b, ok := boolLexemes[n.Value]
	if !ok {
		return false, scalarError(n, TagBool)
	}
	return b, nil
}

// IntValue resolves an integer scalar at arbitrary precision. Prefixed forms (0x, 0o, 0b),
// leading-zero octal and underscore separators are accepted the way the parser accepts them.
func IntValue(n *Node) (*big.Int, error) {
	lexeme := n.Value

	if n.ShortTag() == TagFloat {
		// Integer-shaped float: decimal only.
		plain := strings.TrimPrefix(strings.ReplaceAll(lexeme, "_", ""), "+")
		if i, ok := new(big.Int).SetString(plain, 10); ok {
			return i, nil
		}
		return nil, scalarError(n, TagInt)
	}

	if i, ok := new(big.Int).SetString(lexeme, 0); ok {
		return i, nil
	}
	plain := strings.ReplaceAll(lexeme, "_", "")
	if i, ok := new(big.Int).SetString(plain, 0); ok {
		return i, nil
	}
	if i, ok := new(big.Int).SetString(strings.TrimPrefix(plain, "+"), 10); ok {
		return i, nil
	}
	return nil, scalarError(n, TagInt)
}

// FloatValue resolves a float scalar, including .inf, -.inf and .nan.
func FloatValue(n *Node) (float64, error) {
	if f, ok := specialFloats[n.Value]; ok {
		return f, nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(n.Value, "_", ""), 64)
	if err != nil {
		return 0, scalarError(n, TagFloat)
	}
	return f, nil
}

// StringValue resolves a string scalar. Binary scalars are decoded to their raw bytes;
// every other tag keeps the lexeme byte for byte.
func StringValue(n *Node) (string, error) {
	if n.ShortTag() != TagBinary {
		return n.Value, nil
	}

	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, n.Value)

	b, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", scalarError(n, TagBinary)
	}
	return string(b), nil
}

func scalarError(n *Node, tag string) error {
	return errors.Wrapf(errUtils.ErrGrammar, "cannot resolve %s scalar %q at line %d, column %d",
		tag, n.Value, n.Line, n.Column)
}
