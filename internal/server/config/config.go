// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the clipsync server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP/WebSocket endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory
//     user/device repositories.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test
//     defaults in prod.
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token
//     lifetimes.
//   - MaxContentSize: maximum clipboard content length, bytes.
//   - RetentionPeriod: maximum entry age before eviction.
//   - EvictionInterval: how often the background eviction pass runs.
//   - BroadcastCapacity: depth of the fanout ring buffer.
//   - MinPasswordLength: registration password policy.
type Config struct {
	EndpointAddr                 string
	DatabaseDSN                  string
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	MaxContentSize               int
	RetentionPeriod              time.Duration
	EvictionInterval             time.Duration
	BroadcastCapacity            int
	MinPasswordLength            int
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 1 * time.Hour
	c.RefreshTokenValidityDuration = 7 * 24 * time.Hour
	c.MaxContentSize = 65536
	c.RetentionPeriod = 24 * time.Hour
	c.EvictionInterval = 5 * time.Minute
	c.BroadcastCapacity = 100
	c.MinPasswordLength = 8
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
