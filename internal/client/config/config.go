package config

// Config holds runtime settings for the clipboard sync CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - DeviceName: human-readable name this machine registers under.
type Config struct {
	ServerEndpointAddr string
	DeviceName         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8080"
	c.DeviceName = "cli"
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
