package detectors

import (
	"fmt"

	"github.com/zricethezav/gitleaks/v8/detect"
)

// GitleaksDetector delegates detection to the gitleaks engine and its
// default ruleset. It is opt-in: the ruleset is large and slower than the
// built-in patterns, so scanner.use_gitleaks enables it explicitly.
type GitleaksDetector struct {
	detector *detect.Detector
}

// NewGitleaksDetector builds a detector backed by the default gitleaks config.
func NewGitleaksDetector() (*GitleaksDetector, error) {
	d, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gitleaks engine: %w", err)
	}
	return &GitleaksDetector{detector: d}, nil
}

// Name returns the detector's wire type.
func (d *GitleaksDetector) Name() string { return "Gitleaks" }

// Detect runs the gitleaks ruleset against the line.
func (d *GitleaksDetector) Detect(line string) []string {
	var secrets []string
	for _, f := range d.detector.DetectString(line) {
		if f.Secret != "" {
			secrets = append(secrets, f.Secret)
		}
	}
	return secrets
}
