// Package config handles configuration for the shell, including defaults,
// JSON overlay, and command-line flags. The resulting Config is passed
// explicitly into the application; there is no process-wide singleton.
package config

// Config holds runtime settings for the Ponte Acadêmica shell.
//
// Fields:
//   - DatabasePath: sqlite DSN (usually a file path) of the local store.
type Config struct {
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "ponte.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
