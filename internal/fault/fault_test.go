package fault

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"config", fmt.Errorf("%w: empty pattern", ErrConfig), ErrConfig},
		{"source with cause", fmt.Errorf("%w: read: %w", ErrSource, io.ErrUnexpectedEOF), ErrSource},
		{"sink nested", fmt.Errorf("pipeline: %w", fmt.Errorf("%w: disk full", ErrSink)), ErrSink},
		{"unclassified", errors.New("boom"), nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

func TestKindKeepsCause(t *testing.T) {
	err := fmt.Errorf("%w: read: %w", ErrSource, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
