package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/clipsync/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After
// parsing, values are copied into the runtime Config.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	DeviceName         string `json:"device_name"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// from the -c/-config flags. When no file is given the function returns
// without touching cfg. Read or unmarshal errors panic; intended usage is
// defaults -> parseJson -> parseFlags, where later stages override earlier
// ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.DeviceName != "" {
		cfg.DeviceName = jc.DeviceName
	}
}
