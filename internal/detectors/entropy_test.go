package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShannonEntropy(t *testing.T) {
	// single repeated symbol carries no information
	assert.Equal(t, 0.0, ShannonEntropy("aaaaaaaa", base64Charset))

	// 32 distinct symbols give exactly 5 bits per symbol
	assert.InDelta(t, 5.0, ShannonEntropy("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdef", base64Charset), 0.0001)

	// 16 distinct hex symbols give exactly 4 bits per symbol
	assert.InDelta(t, 4.0, ShannonEntropy("0123456789abcdef", hexCharset), 0.0001)

	assert.Equal(t, 0.0, ShannonEntropy("", base64Charset))
}

func TestBase64EntropyDetector(t *testing.T) {
	d := NewBase64EntropyDetector(4.5)

	tests := []struct {
		name  string
		line  string
		found bool
	}{
		{
			name:  "high entropy token is flagged",
			line:  `token = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdef"`,
			found: true,
		},
		{
			name: "repetitive string is not flagged",
			line: `padding = "AAAAAAAAAAAAAAAAAAAAAAAA"`,
		},
		{
			name: "plain prose is not flagged",
			line: "the quick brown fox jumps over the lazy dog",
		},
		{
			name: "short strings are not candidates",
			line: "abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := d.Detect(tt.line)
			assert.Equal(t, tt.found, len(matches) > 0, "matches: %v", matches)
		})
	}
}

func TestHexEntropyDetector(t *testing.T) {
	d := NewHexEntropyDetector(3.0)

	assert.NotEmpty(t, d.Detect(`digest = "0123456789abcdef0123456789abcdef"`))
	assert.Empty(t, d.Detect(`padding = "00000000000000000000"`))
}

func TestEntropyDetectorNames(t *testing.T) {
	assert.Equal(t, "Base64 High Entropy String", NewBase64EntropyDetector(4.5).Name())
	assert.Equal(t, "Hex High Entropy String", NewHexEntropyDetector(3.0).Name())
}
