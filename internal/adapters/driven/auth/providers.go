// Package auth implements credential providers for the Search Console
// client. Providers are injected at construction so tests can substitute
// fakes without process-wide state.
package auth

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/searchconsole-cli/internal/searchconsole"
)

// DefaultEnvVar is the environment variable consulted by EnvProvider.
const DefaultEnvVar = "SEARCHCONSOLE_API_KEY"

// Ensure the providers implement the CredentialsProvider interface.
var (
	_ searchconsole.CredentialsProvider = (*StaticProvider)(nil)
	_ searchconsole.CredentialsProvider = (*EnvProvider)(nil)
	_ searchconsole.CredentialsProvider = (*ConfigProvider)(nil)
)

// StaticProvider returns a fixed API key, typically from a command-line
// flag.
type StaticProvider struct {
	apiKey string
}

// NewStaticProvider creates a provider for a known API key.
func NewStaticProvider(apiKey string) *StaticProvider {
	return &StaticProvider{apiKey: apiKey}
}

// Credentials returns the fixed API key.
func (p *StaticProvider) Credentials(_ context.Context) (searchconsole.Credentials, error) {
	return searchconsole.Credentials{APIKey: p.apiKey}, nil
}

// EnvProvider reads the API key from an environment variable on every
// call, so a key rotated mid-process is picked up.
type EnvProvider struct {
	envVar string
}

// NewEnvProvider creates a provider reading envVar. An empty envVar
// defaults to DefaultEnvVar.
func NewEnvProvider(envVar string) *EnvProvider {
	if envVar == "" {
		envVar = DefaultEnvVar
	}
	return &EnvProvider{envVar: envVar}
}

// Credentials returns the key from the environment. An unset variable is
// an error; the client logs it and proceeds without a key.
func (p *EnvProvider) Credentials(_ context.Context) (searchconsole.Credentials, error) {
	key := os.Getenv(p.envVar)
	if key == "" {
		return searchconsole.Credentials{}, fmt.Errorf("auth: %s is not set", p.envVar)
	}
	return searchconsole.Credentials{APIKey: key}, nil
}

// ConfigStore is the subset of the config store the ConfigProvider needs.
type ConfigStore interface {
	APIKey() string
}

// ConfigProvider reads the API key from the persisted config store.
type ConfigProvider struct {
	store ConfigStore
}

// NewConfigProvider creates a provider backed by a config store.
func NewConfigProvider(store ConfigStore) *ConfigProvider {
	return &ConfigProvider{store: store}
}

// Credentials returns the key from the config store. A missing key is an
// error; the client logs it and proceeds without a key.
func (p *ConfigProvider) Credentials(_ context.Context) (searchconsole.Credentials, error) {
	if p.store == nil {
		return searchconsole.Credentials{}, fmt.Errorf("auth: no config store available")
	}
	key := p.store.APIKey()
	if key == "" {
		return searchconsole.Credentials{}, fmt.Errorf("auth: no api_key in config")
	}
	return searchconsole.Credentials{APIKey: key}, nil
}
