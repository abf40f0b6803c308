package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings of the terminal client.
type Config struct {
	ServerAddr              string
	SessionDBPath           string
	AccountMaxLength        int
	RequestTimeout          time.Duration
	MaxVerificationFailures int
}

// LoadDefaults populates c with the built-in values.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "127.0.0.1:50051"
	c.SessionDBPath = "session.db"
	c.AccountMaxLength = 10
	c.RequestTimeout = 5 * time.Second
	c.MaxVerificationFailures = 3
}

// LoadConfig applies defaults, then the optional JSON file, then flags
// found in args (usually os.Args[1:]).
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
