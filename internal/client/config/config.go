package config

import "time"

// Config holds runtime settings for the creditapp terminal client.
//
// Fields:
//   - ServerAddr: base URL of the public backend (login, logout, device and
//     notification endpoints live under <ServerAddr>/swift/).
//   - DatabaseDSN: path or DSN of the local SQLite state database.
//   - DeviceType: platform label sent with device registrations and
//     notification settings.
//   - RequestTimeout: transport-level timeout for a single API request.
//
// Units: RequestTimeout is a time.Duration (e.g., 30*time.Second).
type Config struct {
	ServerAddr     string
	DatabaseDSN    string
	DeviceType     string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "https://www.credit-app.ru/"
	c.DatabaseDSN = "creditapp.db"
	c.DeviceType = "terminal"
	c.RequestTimeout = 30 * time.Second
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
