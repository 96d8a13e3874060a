package detectors

import (
	"math"
	"regexp"
	"strings"
)

const (
	base64Charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="
	hexCharset    = "0123456789abcdefABCDEF"
)

var (
	base64CandidatePattern = regexp.MustCompile(`[A-Za-z0-9+/]{16,}={0,2}`)
	hexCandidatePattern    = regexp.MustCompile(`[0-9a-fA-F]{16,}`)
)

// EntropyDetector flags strings whose Shannon entropy over a fixed charset
// exceeds a limit. High-entropy strings in source are likely generated
// tokens rather than words.
type EntropyDetector struct {
	name      string
	candidate *regexp.Regexp
	charset   string
	limit     float64
}

// NewBase64EntropyDetector creates the base64-charset entropy detector.
func NewBase64EntropyDetector(limit float64) *EntropyDetector {
	return &EntropyDetector{
		name:      "Base64 High Entropy String",
		candidate: base64CandidatePattern,
		charset:   base64Charset,
		limit:     limit,
	}
}

// NewHexEntropyDetector creates the hex-charset entropy detector.
func NewHexEntropyDetector(limit float64) *EntropyDetector {
	return &EntropyDetector{
		name:      "Hex High Entropy String",
		candidate: hexCandidatePattern,
		charset:   hexCharset,
		limit:     limit,
	}
}

// Name returns the detector's wire type.
func (d *EntropyDetector) Name() string { return d.name }

// Detect returns candidate strings in line whose entropy exceeds the limit.
func (d *EntropyDetector) Detect(line string) []string {
	var secrets []string
	for _, candidate := range d.candidate.FindAllString(line, -1) {
		if ShannonEntropy(candidate, d.charset) > d.limit {
			secrets = append(secrets, candidate)
		}
	}
	return secrets
}

// ShannonEntropy computes the Shannon entropy of data restricted to the
// given charset alphabet, in bits per symbol.
func ShannonEntropy(data, charset string) float64 {
	if data == "" {
		return 0
	}

	var entropy float64
	length := float64(len(data))
	for _, ch := range charset {
		count := strings.Count(data, string(ch))
		if count == 0 {
			continue
		}
		p := float64(count) / length
		entropy -= p * math.Log2(p)
	}
	return entropy
}
