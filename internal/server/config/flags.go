package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/flagx"
)

// parseFlags overlays config with server flags.
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN, empty for in-memory storage
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-p string   verification password
//	-l int      simulated latency, milliseconds
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	validity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	fs.StringVar(&config.VerificationPassword, "p", config.VerificationPassword, "verification password")
	latency := fs.Int("l", int(config.Latency.Milliseconds()), "simulated latency (in milliseconds)")

	if err := flagx.ParseOwn(fs, args); err != nil {
		return err
	}

	config.TokenValidityDuration = time.Duration(*validity) * time.Minute
	config.Latency = time.Duration(*latency) * time.Millisecond
	return nil
}
