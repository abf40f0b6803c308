// Package config loads runtime configuration for the terminal client.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by -c or -config.
//  3. Command-line flags.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-d string   path of the session database
//	-m int      maximum account length in characters
//	-t int      request timeout (seconds)
//	-f int      verification failures tolerated before secure navigation is aborted
//
// # JSON schema
//
// Durations go through timex.Duration, so "5s" and integer nanoseconds are
// both accepted. Absent keys keep their previous value.
//
//	{
//	  "server_addr": "127.0.0.1:50051",
//	  "session_db_path": "session.db",
//	  "account_max_length": 10,
//	  "request_timeout": "5s",
//	  "max_verification_failures": 3
//	}
package config
