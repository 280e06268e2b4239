package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/searchconsole-cli/internal/adapters/driven/auth"
)

func TestResolveCredentials(t *testing.T) {
	defer func() { flagAPIKey = "" }()

	t.Run("flag wins", func(t *testing.T) {
		flagAPIKey = "flag-key"
		t.Setenv(auth.DefaultEnvVar, "env-key")

		provider := resolveCredentials()

		assert.IsType(t, &auth.StaticProvider{}, provider)
	})

	t.Run("environment beats config", func(t *testing.T) {
		flagAPIKey = ""
		t.Setenv(auth.DefaultEnvVar, "env-key")

		provider := resolveCredentials()

		assert.IsType(t, &auth.EnvProvider{}, provider)
	})

	t.Run("falls back to config store", func(t *testing.T) {
		flagAPIKey = ""
		t.Setenv(auth.DefaultEnvVar, "")

		provider := resolveCredentials()

		assert.IsType(t, &auth.ConfigProvider{}, provider)
	})
}

func TestResolveSite(t *testing.T) {
	defer func() {
		flagSite = ""
		configStore = nil
	}()

	t.Run("uses the --site flag", func(t *testing.T) {
		flagSite = "sc-domain:example.com"

		site, err := resolveSite()

		require.NoError(t, err)
		assert.Equal(t, "sc-domain:example.com", site)
	})

	t.Run("errors when nothing is configured", func(t *testing.T) {
		flagSite = ""
		configStore = nil

		_, err := resolveSite()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "--site")
	})
}
