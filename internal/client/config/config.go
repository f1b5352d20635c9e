package config

import "time"

// Config holds runtime settings for the owner panel CLI.
//
// Fields:
//   - APIBaseAddr: base URL of the rental backend, e.g. "http://127.0.0.1:8000".
//   - RequestTimeout: upper bound for every individual API request.
//   - OwnerEmail: optional identity to sign in as at startup.
type Config struct {
	APIBaseAddr    string
	RequestTimeout time.Duration
	OwnerEmail     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseAddr = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.OwnerEmail = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
