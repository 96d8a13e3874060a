package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error is success",
			err:  nil,
			want: ExitCodeOK,
		},
		{
			name: "gate error maps to offending",
			err:  NewGateError([]string{"config/prod.env"}),
			want: ExitCodeOffending,
		},
		{
			name: "wrapped gate error maps to offending",
			err:  fmt.Errorf("run aborted: %w", NewGateError([]string{"a.txt"})),
			want: ExitCodeOffending,
		},
		{
			name: "baseline error maps to operational",
			err:  NewBaselineError(".secrets.baseline", os.ErrNotExist),
			want: ExitCodeOperational,
		},
		{
			name: "empty scan error maps to operational",
			err:  NewEmptyScanError("/tmp/empty"),
			want: ExitCodeOperational,
		},
		{
			name: "arbitrary error maps to operational",
			err:  errors.New("boom"),
			want: ExitCodeOperational,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestBaselineErrorUnwrap(t *testing.T) {
	err := NewBaselineError(".secrets.baseline", os.ErrNotExist)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), ".secrets.baseline")
}

func TestGateErrorMessageCountsFiles(t *testing.T) {
	err := NewGateError([]string{"a.txt", "b.txt"})
	assert.EqualError(t, err, "gate failed: potential secrets detected in 2 file(s)")
}
