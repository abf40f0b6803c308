package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/flagx"
)

// parseFlags overlays cfg with the client flags present in args.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "address and port of the server")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database path")
	fs.IntVar(&cfg.AccountMaxLength, "m", cfg.AccountMaxLength, "maximum account length")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&cfg.MaxVerificationFailures, "f", cfg.MaxVerificationFailures, "tolerated verification failures")

	if err := flagx.ParseOwn(fs, args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
