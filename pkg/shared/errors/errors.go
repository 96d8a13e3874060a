package errors

import (
	"errors"
	"fmt"
)

// Exit codes reported to the invoking CI step.
const (
	ExitCodeOK          = 0 // no offending findings
	ExitCodeOffending   = 1 // gate failed: unreviewed or confirmed secrets present
	ExitCodeOperational = 2 // operational error: bad baseline, empty scan, bad config
)

// BaselineError indicates the baseline document is missing or malformed.
// It is fatal and aborts the run before any scanning takes place.
type BaselineError struct {
	Path string
	Err  error
}

// Error implements the error interface for BaselineError.
func (e *BaselineError) Error() string {
	return fmt.Sprintf("baseline %q is unreadable: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *BaselineError) Unwrap() error { return e.Err }

// NewBaselineError creates a new BaselineError instance.
func NewBaselineError(path string, err error) error {
	return &BaselineError{Path: path, Err: err}
}

// EmptyScanError indicates zero files were scanned, which almost always
// means the root or exclusion settings are misconfigured.
type EmptyScanError struct {
	Root string
}

// Error implements the error interface for EmptyScanError.
func (e *EmptyScanError) Error() string {
	return fmt.Sprintf("no scannable files found under %q", e.Root)
}

// NewEmptyScanError creates a new EmptyScanError instance.
func NewEmptyScanError(root string) error {
	return &EmptyScanError{Root: root}
}

// GateError is the designed negative result of a gate run: one or more
// offending findings exist. It is not an exceptional condition.
type GateError struct {
	Filenames []string // distinct sorted offending filenames
}

// Error implements the error interface for GateError.
func (e *GateError) Error() string {
	return fmt.Sprintf("gate failed: potential secrets detected in %d file(s)", len(e.Filenames))
}

// NewGateError creates a new GateError with the offending filenames.
func NewGateError(filenames []string) error {
	return &GateError{Filenames: filenames}
}

// ExitCode maps an error to the process exit code contract.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}

	var gateErr *GateError
	if errors.As(err, &gateErr) {
		return ExitCodeOffending
	}
	return ExitCodeOperational
}
