// Package reconcile matches scan findings against baseline entries and
// carries over their review state. Reconciliation is a pure function of its
// inputs: neither the scan results nor the baseline are mutated, and
// repeated runs over the same inputs yield identical output.
package reconcile

import (
	"github.com/scangate/scangate/internal/baseline"
	"github.com/scangate/scangate/internal/findings"
)

// Result holds the reconciled findings plus match bookkeeping.
type Result struct {
	Findings []findings.Finding // scan findings with review state carried over

	Matched   int // findings that had a baseline entry
	Unmatched int // newly discovered findings, review state unset
}

// Reconcile looks up every scanned finding in the baseline by
// (filename, type, secret_hash). On a match the baseline entry's is_secret
// value carries over; otherwise the finding stays unreviewed. A new finding
// is never silently marked as reviewed.
func Reconcile(scanFindings []findings.Finding, b *baseline.Baseline) Result {
	result := Result{
		Findings: make([]findings.Finding, 0, len(scanFindings)),
	}

	for _, f := range scanFindings {
		reconciled := f
		reconciled.IsSecret = nil

		if entry, ok := b.Lookup(f); ok {
			reconciled.IsSecret = copyTriState(entry.IsSecret)
			result.Matched++
		} else {
			result.Unmatched++
		}

		result.Findings = append(result.Findings, reconciled)
	}

	return result
}

// copyTriState clones a *bool so reconciled findings never alias baseline memory.
func copyTriState(v *bool) *bool {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
