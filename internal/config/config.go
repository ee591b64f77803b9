package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PHOCCY_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: PHOCCY_PORT -> port, etc.
	if err := k.Load(env.Provider("PHOCCY_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PHOCCY_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if c.KBPath == "" {
		return fmt.Errorf("kb_path is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Ollama.Enabled {
		if c.Ollama.Host == "" {
			return fmt.Errorf("ollama.host is required when ollama is enabled")
		}
		if c.Ollama.Model == "" {
			return fmt.Errorf("ollama.model is required when ollama is enabled")
		}
	}
	if c.OpenAI.MaxTokens < 0 {
		return fmt.Errorf("openai.max_tokens must be non-negative")
	}
	if c.Fallback.TimeoutSeconds <= 0 {
		return fmt.Errorf("fallback.timeout_seconds must be positive")
	}
	if c.Fallback.RequestsPerMin <= 0 {
		return fmt.Errorf("fallback.requests_per_min must be positive")
	}
	return nil
}

// HostedKeyConfigured reports whether the hosted completion credential
// is present in the environment.
func HostedKeyConfigured() bool {
	return os.Getenv(OpenAIKeyEnvVar) != ""
}
