package gate

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/scangate/scangate/internal/baseline"
	"github.com/scangate/scangate/internal/detectors"
	"github.com/scangate/scangate/internal/findings"
	"github.com/scangate/scangate/internal/git"
	"github.com/scangate/scangate/internal/scanner"
	"github.com/scangate/scangate/pkg/shared/config"
)

// executeScan assembles the detector registry and scanner from the command
// options plus the baseline's own exclusions, then runs the scan pass.
// Returns the findings and the number of files actually scanned.
func executeScan(opts *RunOptionsGate, b *baseline.Baseline, cfg *config.Config, log hclog.Logger) ([]findings.Finding, int, error) {
	scanCfg := *cfg
	if opts.UseGitleaks {
		scanCfg.Scanner.UseGitleaks = true
	}

	registry, err := detectors.NewRegistry(&scanCfg, log)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to assemble detector registry: %w", err)
	}

	scanOpts := scanner.Options{
		Root:           opts.Root,
		ExcludeGlobs:   append(cfg.ExcludePaths(), opts.Exclude...),
		ExcludePattern: b.FileExcludePattern(),
		Threads:        opts.Threads,
		MaxFileSize:    cfg.Scanner.MaxFileSizeBytes,
	}
	if scanOpts.Threads == 0 {
		scanOpts.Threads = cfg.Scanner.Threads
	}

	if opts.TrackedOnly {
		tracked, err := git.ListTrackedFiles(opts.Root)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list tracked files: %w", err)
		}
		scanOpts.TrackedFiles = tracked
		log.Debug("restricting scan to tracked files", "count", len(tracked))
	}

	s := scanner.New(registry, scanOpts, log)
	scanFindings, scanned, err := s.Scan()
	if err != nil {
		return nil, 0, err
	}

	return scanFindings, scanned, nil
}
