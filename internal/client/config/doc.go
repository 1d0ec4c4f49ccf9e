// Package config loads runtime configuration for the GoFinances CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. Environment variables prefixed with GOFINANCES_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-d string   path to the local SQLite database
//	-t int      timeout for an interactive sign-in (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations accept strings such as "5m" or integer nanoseconds:
//
//	{
//	  "database_path": "gofinances.db",
//	  "google_client_id": "1234.apps.googleusercontent.com",
//	  "google_redirect_uri": "https://auth.example.com/gofinances",
//	  "auth_timeout": "5m",
//	  "log_level": "info"
//	}
//
// Google client credentials have no default: without them sign-in with
// Google reports a configuration failure.
package config
