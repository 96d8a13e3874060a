// Package ci discovers CI metadata for gate diagnostics. The gate behaves
// identically inside and outside CI; this only enriches log output and
// report metadata.
package ci

import (
	"os"
	"strconv"
	"strings"
)

// Kind represents the type of CI environment.
type Kind int

const (
	// KindUnknown indicates the CI provider could not be identified.
	KindUnknown Kind = iota
	// KindGitHub identifies GitHub CI environments.
	KindGitHub
	// KindGitLab identifies GitLab CI environments.
	KindGitLab
	// KindBitbucket identifies Bitbucket CI environments.
	KindBitbucket
)

// LookupFunc fetches environment variables and defaults to os.Getenv.
type LookupFunc func(string) string

// Environment captures canonical CI metadata derived from environment variables.
type Environment struct {
	Kind               Kind   // Kind identifies the CI provider.
	CI                 bool   // CI reports whether the execution runs inside a CI environment.
	CommitHash         string // CommitHash is the tip commit that triggered the job.
	ReferenceName      string // ReferenceName is the short reference or branch name.
	RepositoryFullName string // RepositoryFullName is the namespace-qualified repository name.
}

// String returns the human-readable string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindGitHub:
		return "github"
	case KindGitLab:
		return "gitlab"
	case KindBitbucket:
		return "bitbucket"
	default:
		return "unknown"
	}
}

// Detect infers the CI provider and its metadata from the process environment.
func Detect() Environment {
	return detectWithLookup(os.Getenv)
}

func detectWithLookup(lookup LookupFunc) Environment {
	if lookup == nil {
		lookup = os.Getenv
	}

	ciFlag, _ := strconv.ParseBool(lookup("CI"))

	switch {
	case lookup("GITHUB_REPOSITORY") != "" || lookup("GITHUB_SHA") != "":
		return Environment{
			Kind:               KindGitHub,
			CI:                 ciFlag,
			CommitHash:         lookup("GITHUB_SHA"),
			ReferenceName:      lookup("GITHUB_REF_NAME"),
			RepositoryFullName: lookup("GITHUB_REPOSITORY"),
		}
	case strings.EqualFold(lookup("GITLAB_CI"), "true") || lookup("CI_PROJECT_PATH") != "":
		return Environment{
			Kind:               KindGitLab,
			CI:                 ciFlag,
			CommitHash:         lookup("CI_COMMIT_SHA"),
			ReferenceName:      lookup("CI_COMMIT_REF_NAME"),
			RepositoryFullName: lookup("CI_PROJECT_PATH"),
		}
	case lookup("BITBUCKET_WORKSPACE") != "" || lookup("BITBUCKET_REPO_SLUG") != "":
		return Environment{
			Kind:               KindBitbucket,
			CI:                 ciFlag,
			CommitHash:         lookup("BITBUCKET_COMMIT"),
			ReferenceName:      lookup("BITBUCKET_BRANCH"),
			RepositoryFullName: lookup("BITBUCKET_REPO_FULL_NAME"),
		}
	}

	return Environment{Kind: KindUnknown, CI: ciFlag}
}
