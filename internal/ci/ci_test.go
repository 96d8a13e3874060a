package ci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) string { return env[key] }
}

func TestDetectWithLookup(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Environment
	}{
		{
			name: "github actions",
			env: map[string]string{
				"CI":                "true",
				"GITHUB_REPOSITORY": "acme/widgets",
				"GITHUB_SHA":        "0123abcd",
				"GITHUB_REF_NAME":   "main",
			},
			want: Environment{
				Kind:               KindGitHub,
				CI:                 true,
				CommitHash:         "0123abcd",
				ReferenceName:      "main",
				RepositoryFullName: "acme/widgets",
			},
		},
		{
			name: "gitlab ci",
			env: map[string]string{
				"CI":                 "true",
				"GITLAB_CI":          "true",
				"CI_PROJECT_PATH":    "acme/widgets",
				"CI_COMMIT_SHA":      "feedbeef",
				"CI_COMMIT_REF_NAME": "feature/x",
			},
			want: Environment{
				Kind:               KindGitLab,
				CI:                 true,
				CommitHash:         "feedbeef",
				ReferenceName:      "feature/x",
				RepositoryFullName: "acme/widgets",
			},
		},
		{
			name: "bitbucket pipelines",
			env: map[string]string{
				"CI":                       "true",
				"BITBUCKET_WORKSPACE":      "acme",
				"BITBUCKET_REPO_SLUG":      "widgets",
				"BITBUCKET_REPO_FULL_NAME": "acme/widgets",
				"BITBUCKET_COMMIT":         "cafebabe",
				"BITBUCKET_BRANCH":         "main",
			},
			want: Environment{
				Kind:               KindBitbucket,
				CI:                 true,
				CommitHash:         "cafebabe",
				ReferenceName:      "main",
				RepositoryFullName: "acme/widgets",
			},
		},
		{
			name: "developer workstation",
			env:  map[string]string{},
			want: Environment{Kind: KindUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectWithLookup(lookupFrom(tt.env)))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "github", KindGitHub.String())
	assert.Equal(t, "gitlab", KindGitLab.String())
	assert.Equal(t, "bitbucket", KindBitbucket.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
