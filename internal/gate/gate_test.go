package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scangate/scangate/internal/findings"
)

func boolPtr(v bool) *bool { return &v }

func TestEvaluateAllReviewedFalsePositivesPasses(t *testing.T) {
	reconciled := []findings.Finding{
		{Filename: "a.go", Type: "Secret Keyword", SecretHash: "aaa", IsSecret: boolPtr(false)},
		{Filename: "b.go", Type: "AWS Access Key", SecretHash: "bbb", IsSecret: boolPtr(false)},
	}

	result := Evaluate(reconciled, 10)
	assert.True(t, result.Passed())
	assert.Empty(t, result.Offending)
	assert.Equal(t, 10, result.FilesScanned)
}

func TestEvaluateUnreviewedFindingFails(t *testing.T) {
	reconciled := []findings.Finding{
		{Filename: "a.go", Type: "Secret Keyword", SecretHash: "aaa"},
	}

	result := Evaluate(reconciled, 1)
	assert.False(t, result.Passed())
	require.Len(t, result.Offending, 1)
	assert.Equal(t, "a.go", result.Offending[0].Filename)
}

func TestEvaluateConfirmedSecretAlwaysBlocks(t *testing.T) {
	reconciled := []findings.Finding{
		{Filename: "a.go", Type: "Secret Keyword", SecretHash: "aaa", IsSecret: boolPtr(true)},
	}

	result := Evaluate(reconciled, 1)
	assert.False(t, result.Passed())
}

func TestEvaluateNoFindingsPasses(t *testing.T) {
	result := Evaluate(nil, 5)
	assert.True(t, result.Passed())
	assert.Empty(t, result.OffendingFilenames())
}

func TestOffendingFilenamesSortedAndDeduplicated(t *testing.T) {
	reconciled := []findings.Finding{
		{Filename: "zzz/config.yml", Type: "Secret Keyword", SecretHash: "a"},
		{Filename: "app/main.go", Type: "AWS Access Key", SecretHash: "b"},
		{Filename: "zzz/config.yml", Type: "Hex High Entropy String", SecretHash: "c"},
		{Filename: "app/main.go", Type: "Secret Keyword", SecretHash: "d", IsSecret: boolPtr(true)},
		{Filename: "ok/reviewed.go", Type: "Secret Keyword", SecretHash: "e", IsSecret: boolPtr(false)},
	}

	result := Evaluate(reconciled, 3)
	assert.Equal(t, []string{"app/main.go", "zzz/config.yml"}, result.OffendingFilenames())
}
