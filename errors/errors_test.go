package errors

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"grammar", ErrGrammar, KindGrammar},
		{"wrapped range", errors.Wrap(ErrRange, "$.a"), KindRange},
		{"fmt wrapped key", fmt.Errorf("at $: %w", ErrUnsupportedKey), KindUnsupportedKey},
		{"depth", errors.Wrapf(ErrDepthExceeded, "limit %d", 3), KindDepthExceeded},
		{"node limit", ErrNodeLimit, KindNodeLimit},
		{"unsupported value", errors.Mark(errors.New("NaN"), ErrUnsupportedValue), KindUnsupportedValue},
		{"unknown", errors.New("boom"), KindUnknown},
		{"config error", ErrInvalidNullPolicy, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}
