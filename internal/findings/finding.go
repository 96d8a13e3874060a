package findings

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Finding is a single detected secret-like occurrence in a file. The raw
// matched text is never stored; only its digest is kept.
type Finding struct {
	Filename   string `json:"filename"`
	LineNumber int    `json:"line_number"`
	Type       string `json:"type"`          // wire name of the detector that matched
	SecretHash string `json:"hashed_secret"` // hex sha1 digest of the matched text

	// IsSecret is the review tri-state: nil means unreviewed, false means
	// reviewed as a false positive, true means confirmed real secret.
	// Only a baseline entry can set it; the scanner always leaves it nil.
	IsSecret *bool `json:"is_secret,omitempty"`
}

// HashSecret computes the digest stored in place of the raw secret text.
// The sha1 hex form matches the baseline document's hashed_secret field.
func HashSecret(secret string) string {
	sum := sha1.Sum([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Key identifies a finding for baseline reconciliation. Line numbers are
// deliberately excluded so findings survive line movement between runs.
func (f Finding) Key() string {
	return fmt.Sprintf("%s|%s|%s", f.Filename, f.Type, f.SecretHash)
}

// Offending reports whether the finding blocks the gate: a finding is
// offending unless a human has reviewed it as a false positive.
func (f Finding) Offending() bool {
	return f.IsSecret == nil || *f.IsSecret
}

// String returns a loggable representation without any secret material.
func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s:%d (hash %s)", f.Type, f.Filename, f.LineNumber, f.SecretHash)
}
