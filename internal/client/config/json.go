package config

import (
	"encoding/json"
	"os"

	"github.com/okarpov/taskdeck/internal/flagx"
	"github.com/okarpov/taskdeck/internal/timex"
)

type jsonConfig struct {
	ServerBaseURL  *string         `json:"server_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	SessionDBPath  *string         `json:"session_db_path"`
}

// parseJSON overlays values from the JSON file named by -c/-config, if any.
// Absent fields keep their current values.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerBaseURL != nil {
		config.ServerBaseURL = *c.ServerBaseURL
	}
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.SessionDBPath != nil {
		config.SessionDBPath = *c.SessionDBPath
	}
}
