package gate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGateArgs(t *testing.T) {
	root := t.TempDir()
	filePath := filepath.Join(root, "plain.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("data"), 0o644))

	tests := []struct {
		name    string
		options RunOptionsGate
		args    []string
		wantErr string
	}{
		{
			name:    "missing baseline flag",
			options: RunOptionsGate{Root: root},
			wantErr: "the 'baseline' flag must be specified",
		},
		{
			name:    "root flag and positional path conflict",
			options: RunOptionsGate{Baseline: "b.json", Root: root},
			args:    []string{root},
			wantErr: "you cannot use a 'root' flag and a target path at the same time",
		},
		{
			name:    "too many positional paths",
			options: RunOptionsGate{Baseline: "b.json"},
			args:    []string{root, root},
			wantErr: "at most one target path may be specified",
		},
		{
			name:    "nonexistent root",
			options: RunOptionsGate{Baseline: "b.json", Root: filepath.Join(root, "absent")},
			wantErr: "the target path does not exist",
		},
		{
			name:    "root is a file",
			options: RunOptionsGate{Baseline: "b.json", Root: filePath},
			wantErr: "the target path is not a directory",
		},
		{
			name:    "negative threads",
			options: RunOptionsGate{Baseline: "b.json", Root: root, Threads: -2},
			wantErr: "the 'threads' flag must be a positive integer",
		},
		{
			name:    "valid flags",
			options: RunOptionsGate{Baseline: "b.json", Root: root, Threads: 4},
		},
		{
			name:    "valid positional path",
			options: RunOptionsGate{Baseline: "b.json"},
			args:    []string{root},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateGateArgs(&tt.options, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateGateArgsDefaultsRootToCwd(t *testing.T) {
	options := RunOptionsGate{Baseline: "b.json"}
	require.NoError(t, validateGateArgs(&options, nil))
	assert.Equal(t, ".", options.Root)
}

func TestValidateGateArgsPositionalSetsRoot(t *testing.T) {
	root := t.TempDir()
	options := RunOptionsGate{Baseline: "b.json"}
	require.NoError(t, validateGateArgs(&options, []string{root}))
	assert.Equal(t, root, options.Root)
}
