// Package git provides read-only helpers over a local repository: tracked
// file enumeration for --tracked-only scans and metadata for diagnostics.
package git

import (
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RepositoryMetadata describes the repository a scan runs against.
type RepositoryMetadata struct {
	BranchName         *string
	CommitHash         *string
	RepositoryFullName *string
	RepoRootFolder     string
}

// CollectRepositoryMetadata gathers branch, commit and remote information
// for the repository containing sourceFolder. It never writes to the repo.
func CollectRepositoryMetadata(sourceFolder string) (*RepositoryMetadata, error) {
	if sourceFolder == "" {
		return &RepositoryMetadata{}, fmt.Errorf("source folder is not set")
	}

	if absSource, err := filepath.Abs(sourceFolder); err == nil {
		sourceFolder = absSource
	}

	md := &RepositoryMetadata{
		RepoRootFolder: filepath.Clean(sourceFolder),
	}

	repo, err := gogit.PlainOpenWithOptions(sourceFolder, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return md, fmt.Errorf("failed to open repository: %w", err)
	}

	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			branchName := head.Name().Short()
			md.BranchName = &branchName
		}
		hash := head.Hash().String()
		md.CommitHash = &hash
	}

	if remote, err := repo.Remote("origin"); err == nil {
		if cfg := remote.Config(); cfg != nil && len(cfg.URLs) > 0 {
			repositoryFullName := strings.TrimSuffix(cfg.URLs[0], ".git")
			md.RepositoryFullName = &repositoryFullName
		}
	}

	return md, nil
}

// ListTrackedFiles returns the repo-relative paths of every file in the
// HEAD tree. Untracked and ignored files are absent, so scanning this list
// matches what the repository actually publishes.
func ListTrackedFiles(repoRoot string) ([]string, error) {
	repo, err := gogit.PlainOpenWithOptions(repoRoot, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %q: %w", repoRoot, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD tree: %w", err)
	}

	var paths []string
	err = tree.Files().ForEach(func(f *object.File) error {
		paths = append(paths, f.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate tracked files: %w", err)
	}

	return paths, nil
}
