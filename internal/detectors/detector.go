// Package detectors implements the secret detector plugins applied to every
// scanned line. The active set is passed explicitly into the scanner as a
// Registry value; there is no ambient global plugin state.
package detectors

import (
	"github.com/hashicorp/go-hclog"

	"github.com/scangate/scangate/pkg/shared/config"
)

// Detector examines a single line of text and returns the secret-like
// substrings it matched. Implementations must be side-effect free and safe
// for concurrent use across files.
type Detector interface {
	// Name returns the detector's wire type, as stored in the baseline
	// document's "type" field.
	Name() string

	// Detect returns the raw matched secrets found in line. Callers hash
	// the returned values immediately; raw text never leaves the scan.
	Detect(line string) []string
}

// Registry is the explicit set of detectors used for one scan invocation.
type Registry struct {
	detectors []Detector
}

// NewRegistry builds the detector set for the given configuration.
// Regex detectors are always active unless disabled by name; entropy
// detectors take their limits from the config; the gitleaks engine is
// opt-in.
func NewRegistry(cfg *config.Config, logger hclog.Logger) (*Registry, error) {
	disabled := make(map[string]bool)
	for _, name := range cfg.Scanner.DisabledPlugins {
		disabled[name] = true
	}

	all := regexDetectors()
	all = append(all,
		NewBase64EntropyDetector(cfg.Scanner.Base64Limit),
		NewHexEntropyDetector(cfg.Scanner.HexLimit),
	)

	if cfg.Scanner.UseGitleaks {
		gl, err := NewGitleaksDetector()
		if err != nil {
			return nil, err
		}
		all = append(all, gl)
	}

	r := &Registry{}
	for _, d := range all {
		if disabled[d.Name()] {
			logger.Debug("detector disabled by configuration", "detector", d.Name())
			continue
		}
		r.detectors = append(r.detectors, d)
	}

	logger.Debug("detector registry assembled", "count", len(r.detectors))
	return r, nil
}

// Detectors returns the active detector slice.
func (r *Registry) Detectors() []Detector {
	return r.detectors
}

// Names returns the wire names of all active detectors.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.detectors))
	for _, d := range r.detectors {
		names = append(names, d.Name())
	}
	return names
}
