package scan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/scangate/scangate/internal/ci"
	"github.com/scangate/scangate/internal/detectors"
	"github.com/scangate/scangate/internal/findings"
	"github.com/scangate/scangate/internal/git"
	"github.com/scangate/scangate/internal/sarif"
	"github.com/scangate/scangate/internal/scanner"
	"github.com/scangate/scangate/pkg/shared/config"
	"github.com/scangate/scangate/pkg/shared/logger"
)

// Report formats supported by the scan command.
const (
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatSarif = "sarif"
)

// RunOptionsScan holds the arguments for the scan command.
type RunOptionsScan struct {
	Root        string
	Exclude     []string
	Format      string
	Output      string
	Threads     int
	TrackedOnly bool
	UseGitleaks bool
}

var (
	AppConfig        *config.Config
	scanOptions      RunOptionsScan
	exampleScanUsage = `  # Scanning the current working tree and printing findings
  scangate scan

  # Scanning a specific tree and exporting a SARIF report
  scangate scan --format sarif --output findings.sarif /path/to/repo

  # Scanning tracked files only with the gitleaks ruleset enabled
  scangate scan --tracked-only --gitleaks /path/to/repo`
)

// ScanCmd represents the scan command.
var ScanCmd = &cobra.Command{
	Use:                   "scan [--root PATH | PATH] [--exclude GLOB]... [--format plain|json|sarif] [--output PATH]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleScanUsage,
	Short:                 "Scans a tree and reports all findings without a gate decision",
	RunE:                  runScanCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runScanCommand executes the scan command.
func runScanCommand(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(AppConfig, "core-scan")

	if err := validateScanArgs(&scanOptions, args); err != nil {
		log.Error("invalid scan arguments", "error", err)
		return err
	}

	scanCfg := *AppConfig
	if scanOptions.UseGitleaks {
		scanCfg.Scanner.UseGitleaks = true
	}

	registry, err := detectors.NewRegistry(&scanCfg, log)
	if err != nil {
		log.Error("failed to assemble detector registry", "error", err)
		return err
	}

	scanOpts := scanner.Options{
		Root:         scanOptions.Root,
		ExcludeGlobs: append(AppConfig.ExcludePaths(), scanOptions.Exclude...),
		Threads:      scanOptions.Threads,
		MaxFileSize:  AppConfig.Scanner.MaxFileSizeBytes,
	}
	if scanOpts.Threads == 0 {
		scanOpts.Threads = AppConfig.Scanner.Threads
	}
	if scanOptions.TrackedOnly {
		tracked, err := git.ListTrackedFiles(scanOptions.Root)
		if err != nil {
			log.Error("failed to list tracked files", "error", err)
			return err
		}
		scanOpts.TrackedFiles = tracked
	}

	scanFindings, scanned, err := scanner.New(registry, scanOpts, log).Scan()
	if err != nil {
		log.Error("scan failed", "error", err)
		return err
	}
	log.Info("scan completed", "files_scanned", scanned, "findings", len(scanFindings))

	return writeReport(cmd.OutOrStdout(), scanFindings, &scanOptions)
}

// writeReport renders the findings in the requested format, to the output
// file when one is given and stdout otherwise.
func writeReport(stdout io.Writer, scanFindings []findings.Finding, opts *RunOptionsScan) error {
	out := stdout
	if opts.Output != "" {
		file, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	switch opts.Format {
	case FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(scanFindings)
	case FormatSarif:
		meta := sarif.RunMetadata{RunID: uuid.New().String()}
		if env := ci.Detect(); env.CI {
			meta.CommitHash = env.CommitHash
			meta.Repository = env.RepositoryFullName
		} else if md, err := git.CollectRepositoryMetadata(opts.Root); err == nil && md.CommitHash != nil {
			meta.CommitHash = *md.CommitHash
		}
		return sarif.Write(out, scanFindings, meta)
	default:
		for _, f := range scanFindings {
			fmt.Fprintln(out, f.String())
		}
		fmt.Fprintf(out, "%d finding(s)\n", len(scanFindings))
		return nil
	}
}

// Initialize flags for the scan command.
func init() {
	ScanCmd.Flags().StringVar(&scanOptions.Root, "root", "", "Root directory of the tree to scan. Defaults to the current directory or the positional PATH argument.")
	ScanCmd.Flags().StringArrayVarP(&scanOptions.Exclude, "exclude", "e", nil, "Gitignore-style pattern of paths to skip. May be repeated.")
	ScanCmd.Flags().StringVarP(&scanOptions.Format, "format", "f", FormatPlain, "Report format: plain, json or sarif.")
	ScanCmd.Flags().StringVarP(&scanOptions.Output, "output", "o", "", "Path to the file where the report will be written.")
	ScanCmd.Flags().IntVarP(&scanOptions.Threads, "threads", "j", 0, "Number of files scanned concurrently. Defaults to the config value.")
	ScanCmd.Flags().BoolVar(&scanOptions.TrackedOnly, "tracked-only", false, "Scan only files tracked in the git HEAD tree instead of walking the whole directory.")
	ScanCmd.Flags().BoolVar(&scanOptions.UseGitleaks, "gitleaks", false, "Additionally run the gitleaks detection ruleset.")
}
