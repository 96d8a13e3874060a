// Package sarif converts scan findings into SARIF reports for consumption
// by CI code-scanning integrations.
package sarif

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scangate/scangate/internal/findings"
)

const informationURI = "https://github.com/scangate/scangate"

// RunMetadata is attached to the SARIF run as properties.
type RunMetadata struct {
	RunID      string
	CommitHash string
	Repository string
}

// Write renders the findings as a SARIF 2.1.0 report. Only hashed secrets
// appear in the output, never the raw matched text.
func Write(w io.Writer, scanFindings []findings.Finding, meta RunMetadata) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("scangate", informationURI)
	run.Properties = sarif.Properties{
		"runId": meta.RunID,
	}
	if meta.CommitHash != "" {
		run.Properties["commitHash"] = meta.CommitHash
	}
	if meta.Repository != "" {
		run.Properties["repository"] = meta.Repository
	}

	seenRules := make(map[string]bool)
	for _, f := range scanFindings {
		ruleID := ruleIDFor(f.Type)
		if !seenRules[ruleID] {
			run.AddRule(ruleID).
				WithDescription(f.Type).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: "error"})
			seenRules[ruleID] = true
		}

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(f.Filename)).
				WithRegion(sarif.NewRegion().WithStartLine(f.LineNumber)),
		)

		result := sarif.NewRuleResult(ruleID).
			WithMessage(sarif.NewTextMessage(fmt.Sprintf("%s detected (hashed secret %s)", f.Type, f.SecretHash))).
			WithLevel("error").
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}

	report.AddRun(run)
	return report.PrettyWrite(w)
}

// ruleIDFor derives a stable SARIF rule identifier from a detector wire name.
func ruleIDFor(detectorType string) string {
	id := make([]rune, 0, len(detectorType))
	for _, r := range detectorType {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			id = append(id, r)
		case r >= 'A' && r <= 'Z':
			id = append(id, r+('a'-'A'))
		case r == ' ':
			id = append(id, '-')
		}
	}
	return string(id)
}
