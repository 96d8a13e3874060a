package scan

import (
	"fmt"
	"os"

	"github.com/scangate/scangate/pkg/shared/files"
)

// validateScanArgs validates the arguments provided to the scan command.
func validateScanArgs(options *RunOptionsScan, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("at most one target path may be specified")
	}
	if len(args) == 1 {
		if options.Root != "" {
			return fmt.Errorf("you cannot use a 'root' flag and a target path at the same time")
		}
		options.Root = args[0]
	}
	if options.Root == "" {
		options.Root = "."
	}
	if expanded, err := files.ExpandPath(options.Root); err == nil {
		options.Root = expanded
	}

	info, err := os.Stat(options.Root)
	if os.IsNotExist(err) {
		return fmt.Errorf("the target path does not exist: %v", options.Root)
	}
	if err != nil {
		return fmt.Errorf("cannot access the target path %q: %w", options.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("the target path is not a directory: %v", options.Root)
	}

	switch options.Format {
	case FormatPlain, FormatJSON, FormatSarif:
	default:
		return fmt.Errorf("unsupported report format %q", options.Format)
	}

	if options.Threads < 0 {
		return fmt.Errorf("the 'threads' flag must be a positive integer")
	}

	return nil
}
