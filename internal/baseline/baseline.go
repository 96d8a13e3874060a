// Package baseline loads detect-secrets compatible baseline documents.
// The baseline is the accepted set of previously reviewed findings and is
// immutable input for a gate run: this package only ever reads it.
package baseline

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/scangate/scangate/internal/findings"
	scanerrors "github.com/scangate/scangate/pkg/shared/errors"
)

// Entry is a single reviewed finding record inside the baseline document.
type Entry struct {
	Type         string `json:"type"`
	Filename     string `json:"filename"`
	HashedSecret string `json:"hashed_secret"`
	LineNumber   int    `json:"line_number"`
	IsSecret     *bool  `json:"is_secret,omitempty"`
	IsVerified   bool   `json:"is_verified,omitempty"`
}

// Exclude carries the baseline's own exclusion patterns.
type Exclude struct {
	Files string `json:"files,omitempty"`
	Lines string `json:"lines,omitempty"`
}

// PluginUsed records a detector configuration the baseline was generated with.
type PluginUsed struct {
	Name        string   `json:"name"`
	Base64Limit *float64 `json:"base64_limit,omitempty"`
	HexLimit    *float64 `json:"hex_limit,omitempty"`
}

// Baseline is the parsed baseline document: results keyed by filename plus
// generation metadata.
type Baseline struct {
	Version     string             `json:"version,omitempty"`
	GeneratedAt string             `json:"generated_at,omitempty"`
	Exclude     *Exclude           `json:"exclude,omitempty"`
	PluginsUsed []PluginUsed       `json:"plugins_used,omitempty"`
	Results     map[string][]Entry `json:"results"`
}

// Load reads and parses the baseline document at path. A missing or
// malformed document yields a BaselineError and the gate must not scan.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, scanerrors.NewBaselineError(path, err)
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, scanerrors.NewBaselineError(path, fmt.Errorf("malformed document: %w", err))
	}
	if b.Results == nil {
		return nil, scanerrors.NewBaselineError(path, fmt.Errorf("document has no results section"))
	}

	if b.Exclude != nil && b.Exclude.Files != "" {
		if _, err := regexp.Compile(b.Exclude.Files); err != nil {
			return nil, scanerrors.NewBaselineError(path, fmt.Errorf("invalid exclude.files pattern: %w", err))
		}
	}

	return &b, nil
}

// FileExcludePattern returns the compiled exclude.files regex, or nil when
// the baseline carries none. Load has already validated the pattern.
func (b *Baseline) FileExcludePattern() *regexp.Regexp {
	if b.Exclude == nil || b.Exclude.Files == "" {
		return nil
	}
	return regexp.MustCompile(b.Exclude.Files)
}

// Lookup finds the baseline entry matching the given finding by
// (filename, type, hashed_secret). Line numbers are ignored.
func (b *Baseline) Lookup(f findings.Finding) (Entry, bool) {
	for _, entry := range b.Results[f.Filename] {
		if entry.Type == f.Type && entry.HashedSecret == f.SecretHash {
			return entry, true
		}
	}
	return Entry{}, false
}

// Size returns the total number of entries across all files.
func (b *Baseline) Size() int {
	n := 0
	for _, entries := range b.Results {
		n += len(entries)
	}
	return n
}
