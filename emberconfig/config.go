// Package emberconfig loads .ember.yaml, the project-level configuration
// for the ember tools: the completion policy rules consumed by package
// policy. Discovery walks up from a starting directory to the filesystem
// root, so an editor opened anywhere inside a project finds the project's
// config.
package emberconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/frerich/elixir/policy"
)

// ErrConfigNotFound is returned by FindConfig when no config file exists
// between dir and the filesystem root.
var ErrConfigNotFound = errors.New("emberconfig: no .ember.yaml found")

// DefaultConfigNames are the filenames searched for, in order.
var DefaultConfigNames = []string{".ember.yaml", ".ember.yml"}

// Config is the decoded contents of .ember.yaml.
type Config struct {
	// Policy rules gating which elixir.Context kinds produce suggestions.
	Policy []policy.Rule `yaml:"policy"`
}

// FindConfig searches for a config file starting at dir and walking up to
// the filesystem root.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("emberconfig: resolving %q: %w", dir, err)
	}

	for d := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(d, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(d)
		if parent == d {
			return "", ErrConfigNotFound
		}

		d = parent
	}
}

// LoadConfig finds and loads the nearest .ember.yaml walking up from dir.
func LoadConfig(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// LoadConfigFile loads and decodes a config from a specific path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("emberconfig: reading %s: %w", path, err)
	}

	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("emberconfig: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// CompilePolicy compiles the config's policy rules into a ready-to-evaluate
// policy.Config.
func (c *Config) CompilePolicy() (*policy.Config, error) {
	if c == nil {
		return policy.DefaultConfig(), nil
	}

	return policy.Compile(c.Policy)
}
