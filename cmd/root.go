package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scangate/scangate/cmd/gate"
	"github.com/scangate/scangate/cmd/scan"
	"github.com/scangate/scangate/cmd/version"
	"github.com/scangate/scangate/pkg/shared/config"
	scanerrors "github.com/scangate/scangate/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "scangate [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Scangate is a secret-scanning baseline gate for CI pipelines.",
		Long: `Scangate scans a source tree for secret-like strings, reconciles the findings
against a reviewed baseline document, and fails the build when any unreviewed
or confirmed secret is present.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the scangate YAML config file")
	rootCmd.AddCommand(gate.GateCmd)
	rootCmd.AddCommand(scan.ScanCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and maps errors to the exit code contract:
// 0 clean gate, 1 offending findings, 2 operational error.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return scanerrors.ExitCode(err)
	}
	return scanerrors.ExitCodeOK
}

func initConfig() {
	var err error

	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(scanerrors.ExitCodeOperational)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(scanerrors.ExitCodeOperational)
	}

	gate.Init(AppConfig)
	scan.Init(AppConfig)
}
