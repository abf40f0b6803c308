package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mvikeeper/internal/flagx"
	"github.com/dmitrijs2005/mvikeeper/internal/timex"
)

// jsonConfig is only used for unmarshalling; pointer fields tell absent keys
// apart from zero values.
type jsonConfig struct {
	ServerAddr              *string         `json:"server_addr"`
	SessionDBPath           *string         `json:"session_db_path"`
	AccountMaxLength        *int            `json:"account_max_length"`
	RequestTimeout          *timex.Duration `json:"request_timeout"`
	MaxVerificationFailures *int            `json:"max_verification_failures"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.ServerAddr != nil {
		cfg.ServerAddr = *jc.ServerAddr
	}
	if jc.SessionDBPath != nil {
		cfg.SessionDBPath = *jc.SessionDBPath
	}
	if jc.AccountMaxLength != nil {
		cfg.AccountMaxLength = *jc.AccountMaxLength
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.MaxVerificationFailures != nil {
		cfg.MaxVerificationFailures = *jc.MaxVerificationFailures
	}
	return nil
}
