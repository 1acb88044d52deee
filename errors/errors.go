package errors

import (
	"github.com/cockroachdb/errors"
)

// Conversion errors. These form the taxonomy surfaced to hosts.
var (
	// ErrGrammar is returned when the input text is not valid YAML.
	ErrGrammar = errors.New("invalid YAML")

	// ErrRange is returned when an integer scalar does not fit the host integer range.
	ErrRange = errors.New("integer out of range")

	// ErrUnsupportedKey is returned when a mapping key cannot index a host table.
	ErrUnsupportedKey = errors.New("unsupported mapping key")

	// ErrDepthExceeded is returned when the document nests deeper than the configured limit.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")

	// ErrNodeLimit is returned when a document expands to more nodes than the configured limit.
	ErrNodeLimit = errors.New("maximum node count exceeded")

	// ErrUnsupportedValue is returned when a host adapter cannot represent a converted value.
	ErrUnsupportedValue = errors.New("value cannot be represented by the host")
)

// Configuration errors.
var (
	ErrInvalidNullPolicy   = errors.New("invalid null policy")
	ErrInvalidMaxDepth     = errors.New("invalid maximum depth")
	ErrInvalidMaxNodes     = errors.New("invalid maximum node count")
	ErrInvalidIntRange     = errors.New("invalid integer range")
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrLoadConfig          = errors.New("failed to load configuration")
)

// CLI errors.
var (
	ErrReadInput = errors.New("failed to read input")
	ErrWriteOut  = errors.New("failed to write output")
	ErrLuaScript = errors.New("lua script failed")
)

// Kind names used when an error crosses a host boundary.
const (
	KindGrammar          = "GrammarError"
	KindRange            = "RangeError"
	KindUnsupportedKey   = "UnsupportedKeyError"
	KindDepthExceeded    = "DepthExceededError"
	KindNodeLimit        = "NodeLimitError"
	KindUnsupportedValue = "UnsupportedValueError"
	KindUnknown          = "Error"
)

var kinds = []struct {
	sentinel error
	name     string
}{
	{ErrGrammar, KindGrammar},
	{ErrRange, KindRange},
	{ErrUnsupportedKey, KindUnsupportedKey},
	{ErrDepthExceeded, KindDepthExceeded},
	{ErrNodeLimit, KindNodeLimit},
	{ErrUnsupportedValue, KindUnsupportedValue},
}

// Kind returns the taxonomy name of the first conversion sentinel found in the error chain.
// It returns an empty string for a nil error and KindUnknown when no sentinel matches.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.name
		}
	}
	return KindUnknown
}
