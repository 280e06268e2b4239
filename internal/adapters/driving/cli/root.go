// Package cli implements the searchconsole command-line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/searchconsole-cli/internal/adapters/driven/auth"
	configfile "github.com/custodia-labs/searchconsole-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/searchconsole-cli/internal/logger"
	"github.com/custodia-labs/searchconsole-cli/internal/searchconsole"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

var (
	flagVerbose     bool
	flagAPIKey      string
	flagAccessToken string
	flagSite        string

	configStore *configfile.ConfigStore
	client      *searchconsole.Client
)

var rootCmd = &cobra.Command{
	Use:   "searchconsole",
	Short: "Google Search Console from the command line",
	Long: `searchconsole manages Search Console properties, sitemaps, search
analytics and URL inspections, and can serve the same operations to AI
assistants over the Model Context Protocol (MCP).

Authentication uses a Google API key, resolved in order from the
--api-key flag, the SEARCHCONSOLE_API_KEY environment variable, and the
api_key entry in ~/.searchconsole/config.toml. Alternatively, pass an
OAuth access token with --access-token to authenticate as a user; the
token travels in the Authorization header and no API key is sent.`,
	SilenceUsage:      true,
	PersistentPreRunE: initClient,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Google API key (overrides env and config)")
	rootCmd.PersistentFlags().StringVar(&flagAccessToken, "access-token", "", "OAuth access token (used instead of an API key)")
	rootCmd.PersistentFlags().StringVarP(&flagSite, "site", "s", "", "property URL, e.g. https://www.example.com/ or sc-domain:example.com")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initClient wires the credential chain and the API client before any
// command runs.
func initClient(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	store, err := configfile.NewConfigStore("")
	if err != nil {
		// Config is optional; flags and env still work without it.
		logger.Warn("config store unavailable: %v", err)
	}
	configStore = store

	if flagAccessToken != "" {
		logger.Debug("using OAuth access token from --access-token flag")
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: flagAccessToken})
		client = searchconsole.NewWithTokenSource(cmd.Context(), ts)
		return nil
	}

	client = searchconsole.New(resolveCredentials())
	return nil
}

// resolveCredentials picks the credential source: flag, then environment,
// then config store.
func resolveCredentials() searchconsole.CredentialsProvider {
	if flagAPIKey != "" {
		logger.Debug("using API key from --api-key flag")
		return auth.NewStaticProvider(flagAPIKey)
	}
	if os.Getenv(auth.DefaultEnvVar) != "" {
		logger.Debug("using API key from %s", auth.DefaultEnvVar)
		return auth.NewEnvProvider("")
	}
	logger.Debug("using API key from config store")
	if configStore == nil {
		return auth.NewConfigProvider(nil)
	}
	return auth.NewConfigProvider(configStore)
}

// resolveSite returns the property to operate on: the --site flag or the
// configured default.
func resolveSite() (string, error) {
	if flagSite != "" {
		return flagSite, nil
	}
	if configStore != nil {
		if site := configStore.DefaultSite(); site != "" {
			return site, nil
		}
	}
	return "", errors.New("no property given: pass --site or set a default with 'searchconsole config set-default-site'")
}

// printJSON renders v as indented JSON on the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
