package errors

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBuilder_Nil(t *testing.T) {
	assert.NoError(t, Build(nil).WithHint("hint").WithExitCode(2).Err())
}

func TestErrorBuilder_LeafStaysComparable(t *testing.T) {
	err := Build(ErrReadInput).
		Wrapf("%s: %s", "in.yaml", "no such file").
		WithHint("Check the path").
		WithContext("file", "in.yaml").
		Err()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadInput)
	assert.Equal(t, "in.yaml: no such file: failed to read input", err.Error())
	assert.Equal(t, []string{"Check the path"}, errors.GetAllHints(err))
	assert.Equal(t, ExitCodeFailure, GetExitCode(err))
}

func TestErrorBuilder_WrappedCause(t *testing.T) {
	cause := errors.Wrap(ErrRange, `$["a"]`)
	err := Build(cause).
		WithContext("file", "-").
		WithExitCode(ExitCodeInput).
		Err()

	assert.ErrorIs(t, err, ErrRange)
	assert.Equal(t, KindRange, Kind(err))
	assert.Equal(t, ExitCodeInput, GetExitCode(err))
	assert.Equal(t, cause.Error(), err.Error())
}

func TestErrorBuilder_Sentinel(t *testing.T) {
	err := Build(errors.New("lua: bad")).WithSentinel(ErrLuaScript).Err()
	assert.ErrorIs(t, err, ErrLuaScript)
}

func TestErrorBuilder_Explanation(t *testing.T) {
	err := Build(ErrGrammar).WithExplanationf("line %d", 3).Err()
	assert.Contains(t, errors.FlattenDetails(err), "line 3")
}
