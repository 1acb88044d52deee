package errors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func plain() FormatterConfig {
	cfg := DefaultFormatterConfig()
	cfg.Color = "never"
	return cfg
}

func TestFormat(t *testing.T) {
	assert.Empty(t, Format(nil, plain()))

	err := errors.Wrap(ErrRange, `$["a"]`)
	assert.Equal(t, `RangeError: $["a"]: integer out of range`, Format(err, plain()))

	assert.Equal(t, "boom", Format(errors.New("boom"), plain()))
}

func TestFormat_Hints(t *testing.T) {
	err := Build(ErrInvalidOutputFormat).WithHint("Supported formats are json, lua").Err()

	got := Format(err, plain())
	assert.True(t, strings.HasPrefix(got, "invalid output format\n"))
	assert.Contains(t, got, "    hint: Supported formats are json, lua")
}

func TestFormat_Wraps(t *testing.T) {
	cfg := plain()
	cfg.MaxLineLength = 20

	got := Format(errors.New("one two three four five six seven eight"), cfg)
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 20)
	}
}

func TestFormat_VerboseContext(t *testing.T) {
	cfg := plain()
	cfg.Verbose = true

	err := Build(ErrGrammar).WithContext("file", "in.yaml").Err()
	got := Format(err, cfg)
	assert.Contains(t, got, "GrammarError:")
	assert.Contains(t, got, "Context")
	assert.Contains(t, got, "in.yaml")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, nil, plain())
	assert.Empty(t, buf.String())

	PrintError(&buf, ErrNodeLimit, plain())
	assert.Equal(t, "NodeLimitError: maximum node count exceeded\n", buf.String())
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "a b\nc", wrapText("a b c", 3))
	assert.Equal(t, "a b c", wrapText("a b c", 0))
}
