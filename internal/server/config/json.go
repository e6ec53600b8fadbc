package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vkotlyar/homesense/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. Session lifetime is carried as integer seconds.
// After unmarshalling, non-empty fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP string `json:"endpoint_addr_http"`
	DatabaseDSN      string `json:"database_dsn"`
	SessionLifetime  int    `json:"session_lifetime"`
	SeedDemoUser     *bool  `json:"seed_demo_user"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. An unreadable or invalid file panics: a
// requested config file that cannot be applied is a startup fault.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
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

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SessionLifetime > 0 {
		config.SessionLifetime = time.Duration(c.SessionLifetime) * time.Second
	}
	if c.SeedDemoUser != nil {
		config.SeedDemoUser = *c.SeedDemoUser
	}
}
