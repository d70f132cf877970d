// Package config manages model source configurations: the credentials
// and endpoint overrides for each configured provider instance.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "modelscout"
	configFileName = "config.yaml"

	// EnvSourceID is the ID of the implicit source materialized from
	// environment variables.
	EnvSourceID = "default"
)

// Source is one configured provider instance. Only the API key is
// required; everything else tunes how requests reach the provider.
type Source struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name,omitempty" json:"name,omitempty"`
	APIKey     string `yaml:"api_key" json:"api_key"`
	OrgID      string `yaml:"org_id,omitempty" json:"org_id,omitempty"`
	Host       string `yaml:"host,omitempty" json:"host,omitempty"`
	LoggingKey string `yaml:"logging_key,omitempty" json:"logging_key,omitempty"`
}

// HasPlausibleKey reports whether the API key looks usable enough to
// attempt a model-list fetch. This is a cheap shape check, not
// validation; the provider is the authority on whether the key works.
func (s Source) HasPlausibleKey() bool {
	key := strings.TrimSpace(s.APIKey)
	return key != "" && !strings.ContainsAny(key, " \t\n")
}

// DisplayName returns the name, falling back to the ID.
func (s Source) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// Config is the persisted tool configuration.
type Config struct {
	Sources []Source `yaml:"sources"`
	Debug   bool     `yaml:"-"`
}

// Source returns the source with the given ID.
func (c *Config) Source(id string) (Source, bool) {
	for _, s := range c.Sources {
		if s.ID == id {
			return s, true
		}
	}
	return Source{}, false
}

// AddSource appends or replaces a source by ID.
func (c *Config) AddSource(src Source) {
	for i, s := range c.Sources {
		if s.ID == src.ID {
			c.Sources[i] = src
			return
		}
	}
	c.Sources = append(c.Sources, src)
}

// RemoveSource deletes a source by ID, reporting whether it existed.
func (c *Config) RemoveSource(id string) bool {
	for i, s := range c.Sources {
		if s.ID == id {
			c.Sources = append(c.Sources[:i], c.Sources[i+1:]...)
			return true
		}
	}
	return false
}

// File returns the absolute path to the config file. It does not create
// the directory.
func File() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// Load reads the config file from the real filesystem and applies
// environment overrides.
func Load() (*Config, error) {
	return LoadFS(afero.NewOsFs())
}

// LoadFS reads the config file from fs. A missing file is not an error;
// it yields an empty config so env-only setups work. When
// MODELSCOUT_API_KEY is set, an implicit "default" source is
// materialized (overriding a persisted source with that ID).
func LoadFS(fs afero.Fs) (*Config, error) {
	cfg := &Config{}

	path, err := File()
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(fs, path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if apiKey := os.Getenv("MODELSCOUT_API_KEY"); apiKey != "" {
		cfg.AddSource(Source{
			ID:         EnvSourceID,
			Name:       "Default",
			APIKey:     apiKey,
			OrgID:      os.Getenv("MODELSCOUT_ORG_ID"),
			Host:       os.Getenv("MODELSCOUT_HOST"),
			LoggingKey: os.Getenv("MODELSCOUT_LOGGING_KEY"),
		})
	}

	cfg.Debug = os.Getenv("MODELSCOUT_DEBUG") == "true"

	return cfg, nil
}

// Save writes the config file to the real filesystem.
func Save(cfg *Config) error {
	return SaveFS(afero.NewOsFs(), cfg)
}

// SaveFS writes the config file to fs, creating the directory if needed.
func SaveFS(fs afero.Fs, cfg *Config) error {
	path, err := File()
	if err != nil {
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
