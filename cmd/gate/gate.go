package gate

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/scangate/scangate/internal/baseline"
	"github.com/scangate/scangate/internal/ci"
	"github.com/scangate/scangate/internal/gate"
	"github.com/scangate/scangate/internal/reconcile"
	"github.com/scangate/scangate/pkg/shared/config"
	scanerrors "github.com/scangate/scangate/pkg/shared/errors"
	"github.com/scangate/scangate/pkg/shared/logger"
)

// RunOptionsGate holds the arguments for the gate command.
type RunOptionsGate struct {
	Baseline    string
	Root        string
	Exclude     []string
	TrackedOnly bool
	Threads     int
	UseGitleaks bool
}

var (
	AppConfig        *config.Config
	gateOptions      RunOptionsGate
	exampleGateUsage = `  # Gating the current working tree against a baseline
  scangate gate --baseline .secrets.baseline

  # Gating a specific tree with extra exclusions
  scangate gate --baseline .secrets.baseline --root /path/to/repo --exclude "testdata/" --exclude "*.min.js"

  # Gating only files tracked in git, with concurrent file scanning
  scangate gate --baseline .secrets.baseline /path/to/repo --tracked-only -j 4`
)

// GateCmd represents the gate command.
var GateCmd = &cobra.Command{
	Use:                   "gate --baseline/-b PATH [--root PATH | PATH] [--exclude GLOB]... [--tracked-only] [-j THREADS]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleGateUsage,
	Short:                 "Scans a tree and fails when unreviewed or confirmed secrets are found",
	Long: `Runs the full gate pipeline: walk the tree, apply every detector to every
line, reconcile findings against the baseline, and decide pass or fail.
A finding blocks the gate unless the baseline marks it as a reviewed false
positive. Exit codes: 0 clean, 1 offending findings, 2 operational error.`,
	RunE: runGateCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runGateCommand executes the gate command.
func runGateCommand(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(AppConfig, "core-gate")

	if err := validateGateArgs(&gateOptions, args); err != nil {
		log.Error("invalid gate arguments", "error", err)
		return err
	}

	runID := uuid.New().String()
	log.Debug("starting gate run", "run_id", runID, "root", gateOptions.Root, "baseline", gateOptions.Baseline)

	if env := ci.Detect(); env.CI {
		log.Info("running inside CI", "provider", env.Kind.String(), "repository", env.RepositoryFullName, "commit", env.CommitHash)
	}

	// Baseline problems abort before any scanning.
	b, err := baseline.Load(gateOptions.Baseline)
	if err != nil {
		log.Error("failed to load baseline", "error", err)
		return err
	}
	log.Debug("baseline loaded", "entries", b.Size(), "files", len(b.Results))

	scanFindings, filesScanned, err := executeScan(&gateOptions, b, AppConfig, log)
	if err != nil {
		log.Error("scan failed", "error", err)
		return err
	}

	reconciled := reconcile.Reconcile(scanFindings, b)
	log.Debug("findings reconciled", "matched", reconciled.Matched, "new", reconciled.Unmatched)

	result := gate.Evaluate(reconciled.Findings, filesScanned)
	if !result.Passed() {
		filenames := result.OffendingFilenames()
		fmt.Fprintln(cmd.OutOrStdout(), "Potential secrets detected in:")
		for _, filename := range filenames {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", filename)
		}
		return scanerrors.NewGateError(filenames)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Gate passed: %d file(s) scanned, no unreviewed secrets.\n", result.FilesScanned)
	return nil
}

// Initialize flags for the gate command.
func init() {
	GateCmd.Flags().StringVarP(&gateOptions.Baseline, "baseline", "b", "", "Path to the baseline document with previously reviewed findings.")
	GateCmd.Flags().StringVar(&gateOptions.Root, "root", "", "Root directory of the tree to scan. Defaults to the current directory or the positional PATH argument.")
	GateCmd.Flags().StringArrayVarP(&gateOptions.Exclude, "exclude", "e", nil, "Gitignore-style pattern of paths to skip. May be repeated.")
	GateCmd.Flags().BoolVar(&gateOptions.TrackedOnly, "tracked-only", false, "Scan only files tracked in the git HEAD tree instead of walking the whole directory.")
	GateCmd.Flags().IntVarP(&gateOptions.Threads, "threads", "j", 0, "Number of files scanned concurrently. Defaults to the config value.")
	GateCmd.Flags().BoolVar(&gateOptions.UseGitleaks, "gitleaks", false, "Additionally run the gitleaks detection ruleset.")
}
