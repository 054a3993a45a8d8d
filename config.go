package marketcap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration. Every field has a working default, so
// a missing config file is fine.
type Config struct {
	Provider string `yaml:"provider"` // yahoo or eodhd
	Policy   string `yaml:"policy"`   // merge policy: inner or price
	Currency string `yaml:"currency"` // ISO code used to format report values
	Proxy    string `yaml:"proxy"`
	EODHD    struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"eodhd"`
}

// LoadConfig reads config from an optional YAML file, then applies
// environment variable overrides and defaults. An empty path falls back to
// $MCAP_CONFIG; when that is empty too, only overrides and defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = os.Getenv("MCAP_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("MCAP_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("MCAP_POLICY"); v != "" {
		cfg.Policy = v
	}
	if v := os.Getenv("EODHD_API_KEY"); v != "" {
		cfg.EODHD.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Provider == "" {
		cfg.Provider = "yahoo"
	}
	if cfg.Policy == "" {
		cfg.Policy = InnerJoin.String()
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Provider != "yahoo" && c.Provider != "eodhd" {
		return fmt.Errorf("unknown provider %q: want \"yahoo\" or \"eodhd\"", c.Provider)
	}
	if _, err := ParseMergePolicy(c.Policy); err != nil {
		return err
	}
	return nil
}
