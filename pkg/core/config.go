// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arc-language/nupkg/pkg/nuget"
	"gopkg.in/yaml.v3"
)

// Config holds nupkg configuration
type Config struct {
	DefaultBackend    string                    `yaml:"default_backend,omitempty"`
	Debug             bool                      `yaml:"debug,omitempty"`
	Timeout           time.Duration             `yaml:"timeout,omitempty"`
	Concurrency       int                       `yaml:"concurrency,omitempty"`
	RequestsPerSecond float64                   `yaml:"requests_per_second,omitempty"`
	UserAgent         string                    `yaml:"user_agent,omitempty"`
	InstalledPath     string                    `yaml:"installed_path,omitempty"`
	Backends          map[string]*BackendConfig `yaml:"backends,omitempty"`
}

// BackendConfig holds per-manager settings
type BackendConfig struct {
	Sources []SourceConfig `yaml:"sources"`
}

// SourceConfig is a feed entry in the config file
type SourceConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultBackend: "choco",
		Debug:          false,
		Timeout:        nuget.DefaultTimeout,
		Concurrency:    nuget.DefaultConcurrency,
		InstalledPath:  getDefaultInstalledPath(),
		Backends:       make(map[string]*BackendConfig),
	}
}

// DefaultConfigPath returns $HOME/.config/nupkg/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nupkg", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadStoredConfig loads only what the file at path contains, without
// defaults or environment overrides. Use it to edit and save the file.
func LoadStoredConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := &Config{Backends: make(map[string]*BackendConfig)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Backends == nil {
		cfg.Backends = make(map[string]*BackendConfig)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks values that would otherwise fail much later
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative")
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative")
	}
	for name, b := range c.Backends {
		if b == nil {
			continue
		}
		for i, s := range b.Sources {
			if strings.TrimSpace(s.URL) == "" {
				return fmt.Errorf("backend %s: source %d has no url", name, i)
			}
		}
	}
	return nil
}

// Sources returns the configured sources of a backend, or nil when none
// are configured
func (c *Config) Sources(backend string) []nuget.Source {
	b, ok := c.Backends[backend]
	if !ok || b == nil {
		return nil
	}

	sources := make([]nuget.Source, 0, len(b.Sources))
	for _, s := range b.Sources {
		name := s.Name
		if name == "" {
			name = s.URL
		}
		sources = append(sources, nuget.Source{Name: name, URL: s.URL})
	}
	return sources
}

// SetSources replaces the sources of a backend
func (c *Config) SetSources(backend string, sources []nuget.Source) {
	if c.Backends == nil {
		c.Backends = make(map[string]*BackendConfig)
	}
	b := &BackendConfig{}
	for _, s := range sources {
		b.Sources = append(b.Sources, SourceConfig{Name: s.Name, URL: s.URL})
	}
	c.Backends[backend] = b
}

// SourceProvider exposes the sources of one backend, falling back to
// fallback when the config lists none
func (c *Config) SourceProvider(backend string, fallback nuget.Source) nuget.SourceProvider {
	return nuget.SourceFunc(func() []nuget.Source {
		if sources := c.Sources(backend); len(sources) > 0 {
			return sources
		}
		return []nuget.Source{fallback}
	})
}

func getDefaultInstalledPath() string {
	if path := os.Getenv("NUPKG_INSTALLED"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "installed.toml"
	}

	return filepath.Join(home, ".config", "nupkg", "installed.toml")
}
