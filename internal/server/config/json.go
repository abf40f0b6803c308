package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mvikeeper/internal/flagx"
	"github.com/dmitrijs2005/mvikeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Durations accept
// "1m" style strings or integer nanoseconds; absent keys are left alone.
type JsonConfig struct {
	EndpointAddrGRPC      *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	VerificationPassword  *string         `json:"verification_password"`
	Latency               *timex.Duration `json:"latency"`
}

func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.VerificationPassword, c.VerificationPassword)
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.Latency != nil {
		config.Latency = c.Latency.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
