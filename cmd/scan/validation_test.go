package scan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScanArgs(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		options RunOptionsScan
		args    []string
		wantErr string
	}{
		{
			name:    "valid defaults",
			options: RunOptionsScan{Root: root, Format: FormatPlain},
		},
		{
			name:    "valid sarif format",
			options: RunOptionsScan{Root: root, Format: FormatSarif},
		},
		{
			name:    "unsupported format",
			options: RunOptionsScan{Root: root, Format: "xml"},
			wantErr: "unsupported report format",
		},
		{
			name:    "root flag and positional path conflict",
			options: RunOptionsScan{Root: root, Format: FormatPlain},
			args:    []string{root},
			wantErr: "you cannot use a 'root' flag and a target path at the same time",
		},
		{
			name:    "nonexistent root",
			options: RunOptionsScan{Root: filepath.Join(root, "absent"), Format: FormatPlain},
			wantErr: "the target path does not exist",
		},
		{
			name:    "negative threads",
			options: RunOptionsScan{Root: root, Format: FormatPlain, Threads: -1},
			wantErr: "the 'threads' flag must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateScanArgs(&tt.options, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
