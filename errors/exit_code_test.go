package errors

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitCodeSuccess},
		{"plain", errors.New("boom"), ExitCodeFailure},
		{"attached", WithExitCode(ErrGrammar, ExitCodeInput), ExitCodeInput},
		{"wrapped", errors.Wrap(WithExitCode(ErrRange, 7), "outer"), 7},
		{"fmt wrapped", fmt.Errorf("outer: %w", WithExitCode(ErrRange, ExitCodeInput)), ExitCodeInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestWithExitCode(t *testing.T) {
	assert.NoError(t, WithExitCode(nil, ExitCodeInput))

	err := WithExitCode(ErrGrammar, ExitCodeInput)
	assert.ErrorIs(t, err, ErrGrammar)
	assert.Equal(t, ErrGrammar.Error(), err.Error())
}

func TestExit(t *testing.T) {
	var got int
	old := OsExit
	OsExit = func(code int) { got = code }
	t.Cleanup(func() { OsExit = old })

	Exit(ExitCodeInput)
	assert.Equal(t, ExitCodeInput, got)
}
