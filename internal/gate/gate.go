// Package gate computes the pass/fail decision for a reconciled scan.
package gate

import (
	"sort"

	"github.com/scangate/scangate/internal/findings"
)

// Result is the gate decision for one run.
type Result struct {
	Offending    []findings.Finding // findings that are unreviewed or confirmed secrets
	FilesScanned int
}

// Evaluate selects the offending findings from a reconciled set. A finding
// is offending unless its review state is an explicit false positive, so
// both unreviewed and confirmed secrets block the gate.
func Evaluate(reconciled []findings.Finding, filesScanned int) Result {
	result := Result{FilesScanned: filesScanned}
	for _, f := range reconciled {
		if f.Offending() {
			result.Offending = append(result.Offending, f)
		}
	}
	return result
}

// Passed reports whether the gate allows the run through.
func (r Result) Passed() bool {
	return len(r.Offending) == 0
}

// OffendingFilenames returns the distinct sorted filenames of all offending
// findings, the only file-level detail reported on gate failure.
func (r Result) OffendingFilenames() []string {
	seen := make(map[string]bool, len(r.Offending))
	var filenames []string
	for _, f := range r.Offending {
		if !seen[f.Filename] {
			seen[f.Filename] = true
			filenames = append(filenames, f.Filename)
		}
	}
	sort.Strings(filenames)
	return filenames
}
