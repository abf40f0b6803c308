// Package config handles configuration for the demo backend: defaults, an
// optional JSON overlay and command-line flags.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings of the server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx); empty selects in-memory storage.
//   - SecretKey: HMAC secret for signing session JWTs (HS256).
//   - TokenValidityDuration: lifetime of issued session tokens.
//   - VerificationPassword: password accepted by VerifyPassword.
//   - Latency: artificial delay added to every call.
type Config struct {
	EndpointAddrGRPC      string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	VerificationPassword  string
	Latency               time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret and password must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 60 * time.Minute
	c.VerificationPassword = "123456"
	c.Latency = 0
}

// LoadConfig builds a Config from defaults, then the JSON file, then flags
// present in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("load json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}
