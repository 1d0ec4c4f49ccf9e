package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gofinances/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   path to the local database
//	-t int      sign-in timeout (seconds)
//	-l string   log level
//
// Only these flags are looked at (see flagx.FilterArgs), so -c/-config and
// unknown flags never make parsing fail.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	authTimeout := fs.Int("t", int(cfg.AuthTimeout.Seconds()), "sign-in timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AuthTimeout = time.Duration(*authTimeout) * time.Second
}
