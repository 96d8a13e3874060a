// Package scanner walks a source tree and applies the detector registry to
// every line of every non-excluded file. The walk is read-only; per-file
// read failures are logged and skipped, never fatal.
package scanner

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/hashicorp/go-hclog"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/scangate/scangate/internal/detectors"
	"github.com/scangate/scangate/internal/findings"
	scanerrors "github.com/scangate/scangate/pkg/shared/errors"
)

const binarySniffSize = 8000

// Options configures a single scan invocation.
type Options struct {
	Root           string         // root directory of the tree to scan
	ExcludeGlobs   []string       // gitignore-style exclusion patterns
	ExcludePattern *regexp.Regexp // baseline exclude.files regex, may be nil
	Threads        int            // bounded concurrency across files
	MaxFileSize    int64          // files larger than this are skipped; 0 disables the limit
	TrackedFiles   []string       // when non-nil, scan exactly these root-relative paths instead of walking
}

// Scanner applies a detector registry to a source tree.
type Scanner struct {
	registry *detectors.Registry
	opts     Options
	logger   hclog.Logger
}

// New creates a Scanner with the provided detector registry and options.
func New(registry *detectors.Registry, opts Options, logger hclog.Logger) *Scanner {
	if opts.Threads <= 0 {
		opts.Threads = 1
	}
	return &Scanner{
		registry: registry,
		opts:     opts,
		logger:   logger,
	}
}

// Scan runs the full walk-and-detect pass and returns all findings plus
// the number of files actually scanned. Filenames in the result are
// root-relative with forward slashes, matching the baseline document
// convention. Zero scanned files is an error.
func (s *Scanner) Scan() ([]findings.Finding, int, error) {
	paths, err := s.collectPaths()
	if err != nil {
		return nil, 0, err
	}

	var (
		mu      sync.Mutex
		results []findings.Finding
		scanned int
	)

	// bounded worker pool: guard channel limits in-flight goroutines
	guard := make(chan struct{}, s.opts.Threads)
	var wg sync.WaitGroup
	for _, relPath := range paths {
		guard <- struct{}{}
		wg.Add(1)
		go func(relPath string) {
			defer wg.Done()
			defer func() { <-guard }()

			fileFindings, err := s.scanFile(relPath)
			if err != nil {
				s.logger.Warn("skipping unreadable file", "file", relPath, "error", err)
				return
			}

			mu.Lock()
			scanned++
			results = append(results, fileFindings...)
			mu.Unlock()
		}(relPath)
	}
	wg.Wait()

	if scanned == 0 {
		return nil, 0, scanerrors.NewEmptyScanError(s.opts.Root)
	}

	s.logger.Info("scan finished", "files_scanned", scanned, "findings", len(results))
	return results, scanned, nil
}

// collectPaths produces the root-relative list of candidate files, either
// from the caller-provided tracked list or by walking the tree.
func (s *Scanner) collectPaths() ([]string, error) {
	matcher := ignore.CompileIgnoreLines(s.opts.ExcludeGlobs...)

	if s.opts.TrackedFiles != nil {
		var paths []string
		for _, relPath := range s.opts.TrackedFiles {
			if s.excluded(matcher, relPath) {
				continue
			}
			paths = append(paths, relPath)
		}
		return paths, nil
	}

	var paths []string
	err := filepath.WalkDir(s.opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("cannot access path, skipping", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(s.opts.Root, path)
		if relErr != nil {
			return relErr
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath != "." && s.excluded(matcher, relPath+"/") {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if s.excluded(matcher, relPath) {
			return nil
		}
		paths = append(paths, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", s.opts.Root, err)
	}

	return paths, nil
}

// excluded applies both the gitignore-style globs and the baseline's
// exclude.files regex to a root-relative path.
func (s *Scanner) excluded(matcher *ignore.GitIgnore, relPath string) bool {
	if matcher != nil && matcher.MatchesPath(relPath) {
		return true
	}
	if s.opts.ExcludePattern != nil && s.opts.ExcludePattern.MatchString(relPath) {
		return true
	}
	return false
}

// scanFile reads one file line by line and applies every detector to every
// line. Binary and oversized files are skipped without findings.
func (s *Scanner) scanFile(relPath string) ([]findings.Finding, error) {
	absPath := filepath.Join(s.opts.Root, filepath.FromSlash(relPath))

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if s.opts.MaxFileSize > 0 && info.Size() > s.opts.MaxFileSize {
		s.logger.Debug("file exceeds size limit, skipping content", "file", relPath, "size", info.Size())
		return nil, nil
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sniff := make([]byte, binarySniffSize)
	n, err := file.Read(sniff)
	if err != nil && n == 0 {
		if errors.Is(err, io.EOF) {
			return nil, nil // empty file, still counts as scanned
		}
		return nil, err
	}
	if bytes.IndexByte(sniff[:n], 0) != -1 {
		s.logger.Debug("binary file, skipping content", "file", relPath)
		return nil, nil
	}
	if _, err := file.Seek(0, 0); err != nil {
		return nil, err
	}

	var fileFindings []findings.Finding
	lineScanner := bufio.NewScanner(file)
	lineScanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNumber := 0
	for lineScanner.Scan() {
		lineNumber++
		line := lineScanner.Text()
		for _, d := range s.registry.Detectors() {
			for _, secret := range d.Detect(line) {
				fileFindings = append(fileFindings, findings.Finding{
					Filename:   relPath,
					LineNumber: lineNumber,
					Type:       d.Name(),
					SecretHash: findings.HashSecret(secret),
				})
			}
		}
	}
	if err := lineScanner.Err(); err != nil {
		// partial results from the lines already read are kept
		s.logger.Warn("stopped reading file early", "file", relPath, "error", err)
	}

	return fileFindings, nil
}
