// Package file implements a TOML-backed configuration store for the
// searchconsole CLI. Configuration lives in ~/.searchconsole/config.toml
// unless another directory is given.
package file

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Config is the persisted configuration.
type Config struct {
	// APIKey is the Google API key used when neither the --api-key flag
	// nor the environment provides one.
	APIKey string `toml:"api_key,omitempty"`

	// DefaultSite is the property used when --site is not given, e.g.
	// "sc-domain:example.com".
	DefaultSite string `toml:"default_site,omitempty"`
}

// ConfigStore is a file-based configuration store using TOML.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	cfg      Config
}

// NewConfigStore creates a TOML-based config store.
// If configDir is empty, defaults to ~/.searchconsole/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".searchconsole")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}

	if err := s.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return s, nil
}

// Load reads the config file from disk, replacing in-memory state.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	s.cfg = cfg
	return nil
}

// Save writes the current configuration to disk. The file is written with
// 0600 permissions because it may contain the API key.
func (s *ConfigStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := toml.Marshal(s.cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0600)
}

// APIKey returns the stored API key, or empty.
func (s *ConfigStore) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.APIKey
}

// SetAPIKey stores the API key and saves.
func (s *ConfigStore) SetAPIKey(key string) error {
	s.mu.Lock()
	s.cfg.APIKey = key
	s.mu.Unlock()
	return s.Save()
}

// DefaultSite returns the stored default property, or empty.
func (s *ConfigStore) DefaultSite() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.DefaultSite
}

// SetDefaultSite stores the default property and saves.
func (s *ConfigStore) SetDefaultSite(siteURL string) error {
	s.mu.Lock()
	s.cfg.DefaultSite = siteURL
	s.mu.Unlock()
	return s.Save()
}

// Path returns the config file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
