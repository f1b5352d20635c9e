package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/patiparn/rodchao/internal/flagx"
	"github.com/patiparn/rodchao/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseAddr    string         `json:"api_base_addr"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	OwnerEmail     string         `json:"owner_email"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// via the -c/-config flags. When no file is given the Config is left as is.
// Read or unmarshal errors panic; config problems should stop startup.
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

	cfg.APIBaseAddr = jc.APIBaseAddr
	cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	cfg.OwnerEmail = jc.OwnerEmail
}
