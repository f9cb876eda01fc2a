package backend

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level aisle configuration.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

// BackendConfig describes the chat backend to talk to.
type BackendConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	Model  string `yaml:"model"`
}

// SessionConfig holds the initial panel settings.
type SessionConfig struct {
	Temperature  *float64 `yaml:"temperature"`
	Seed         int      `yaml:"seed"`
	Reproducible bool     `yaml:"reproducible"`
}

// LogConfig holds debug log settings. An empty file path disables the
// structured debug log; the in-memory panel log is always on.
type LogConfig struct {
	File string `yaml:"file"`
}

// LoadConfig reads a YAML file and returns a Config.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing. This allows API keys to be kept in environment variables
// (e.g. loaded from a .env file) rather than committed in the config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("backend: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("backend: parse config: %w", err)
	}

	return cfg, nil
}

// LoadConfigRaw reads a YAML file without expanding environment variable
// references. Editing tools use it so ${VAR} placeholders survive a
// load-edit-save round trip.
func LoadConfigRaw(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("backend: load config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("backend: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Backend.URL != "" {
		u, err := url.Parse(c.Backend.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("backend: config: invalid backend url %q", c.Backend.URL)
		}
	}

	if t := c.Session.Temperature; t != nil && (*t < 0.0 || *t > 1.0) {
		return fmt.Errorf("backend: config: temperature %v outside [0.0, 1.0]", *t)
	}

	return nil
}

// Apply copies the configured settings onto a Backend. Zero-value fields
// keep the Backend defaults; the temperature pointer distinguishes an
// explicit 0.0 from an absent value.
func (c Config) Apply(b *Backend) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if c.Backend.URL != "" {
		b.url = c.Backend.URL
	}

	if c.Backend.Model != "" {
		b.model = c.Backend.Model
	}

	if c.Session.Temperature != nil {
		b.temperature = min(max(*c.Session.Temperature, 0.0), 1.0)
	}

	b.seed = c.Session.Seed
	b.reproducible = c.Session.Reproducible
}
