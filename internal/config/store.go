package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName keys the per-user config directory.
	AppName  = "holidayapi-cli"
	fileName = "config.yaml"
)

// StoredConfig is the persisted configuration. A nil APIKey means no key was set.
type StoredConfig struct {
	APIKey *string `yaml:"api_key,omitempty"`
}

// Store reads and writes StoredConfig in a single YAML file.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns <user config dir>/holidayapi-cli.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// Path returns the config file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Load returns the stored config, or the zero value when no file exists yet.
func (s *Store) Load() (StoredConfig, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return StoredConfig{}, nil
	}
	if err != nil {
		return StoredConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return StoredConfig{}, nil
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return StoredConfig{}, fmt.Errorf("config file %s didn't load properly: %v", s.Path(), err)
	}
	if doc == nil {
		// comments only
		return StoredConfig{}, nil
	}
	if err := validateStored(doc); err != nil {
		return StoredConfig{}, fmt.Errorf("config file %s didn't load properly: %w", s.Path(), err)
	}
	var cfg StoredConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StoredConfig{}, fmt.Errorf("config file %s didn't load properly: %v", s.Path(), err)
	}
	return cfg, nil
}

// Save overwrites the config file, creating its directory when needed.
func (s *Store) Save(cfg StoredConfig) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	b, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config failed to save: %w", err)
	}
	if err := os.WriteFile(s.Path(), b, 0o600); err != nil {
		return fmt.Errorf("config failed to save: %w", err)
	}
	return nil
}

// Marshal returns canonical YAML bytes for cfg.
func Marshal(cfg StoredConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}
