package gate

import (
	"fmt"
	"os"

	"github.com/scangate/scangate/pkg/shared/files"
)

// validateGateArgs validates the arguments provided to the gate command.
// Note: baseline readability is checked later by baseline.Load so a missing
// document reports as a baseline error, not an argument error.
func validateGateArgs(options *RunOptionsGate, args []string) error {
	if options.Baseline == "" {
		return fmt.Errorf("the 'baseline' flag must be specified")
	}
	if expanded, err := files.ExpandPath(options.Baseline); err == nil {
		options.Baseline = expanded
	}

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

	if options.Threads < 0 {
		return fmt.Errorf("the 'threads' flag must be a positive integer")
	}

	return nil
}
