package detectors

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scangate/scangate/pkg/shared/config"
)

func TestNewRegistryDefaults(t *testing.T) {
	registry, err := NewRegistry(config.DefaultConfig(), hclog.NewNullLogger())
	require.NoError(t, err)

	names := registry.Names()
	assert.Contains(t, names, "AWS Access Key")
	assert.Contains(t, names, "Private Key")
	assert.Contains(t, names, "Secret Keyword")
	assert.Contains(t, names, "Base64 High Entropy String")
	assert.Contains(t, names, "Hex High Entropy String")
	// the gitleaks engine is opt-in
	assert.NotContains(t, names, "Gitleaks")
}

func TestNewRegistryDisablesPluginsByName(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Scanner.DisabledPlugins = []string{"Base64 High Entropy String", "Hex High Entropy String"}

	registry, err := NewRegistry(cfg, hclog.NewNullLogger())
	require.NoError(t, err)

	names := registry.Names()
	assert.NotContains(t, names, "Base64 High Entropy String")
	assert.NotContains(t, names, "Hex High Entropy String")
	assert.Contains(t, names, "AWS Access Key")
}
