package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/clipsync/internal/flagx"
	"github.com/dmitrijs2005/clipsync/internal/timex"
)

// JsonConfig is the intermediate DTO for JSON configuration files. Interval
// fields use timex.Duration, which accepts both string values such as "1h"
// and integer nanoseconds. After unmarshalling, its fields are copied into
// the runtime Config struct.
type JsonConfig struct {
	EndpointAddr                 string         `json:"endpoint_addr"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	MaxContentSize               int            `json:"max_content_size"`
	RetentionPeriod              timex.Duration `json:"retention_period"`
	EvictionInterval             timex.Duration `json:"eviction_interval"`
	BroadcastCapacity            int            `json:"broadcast_capacity"`
	MinPasswordLength            int            `json:"min_password_length"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c/-config command-line
// flags; when neither is set, no JSON file is loaded. Unreadable or invalid
// files panic: configuration defects are fatal at startup.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenValidityDuration.Duration)
	config.MaxContentSize = c.MaxContentSize
	config.RetentionPeriod = time.Duration(c.RetentionPeriod.Duration)
	config.EvictionInterval = time.Duration(c.EvictionInterval.Duration)
	config.BroadcastCapacity = c.BroadcastCapacity
	config.MinPasswordLength = c.MinPasswordLength
}
