package config

import (
	"flag"
	"time"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8091")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-p string   bcrypt hash of the admin password
//	-t int      store timeout, seconds
//	-v int      admin token validity, minutes
//
// Duration flags are accepted as integers and converted to time.Duration
// values after parsing.
func parseFlags(config *Config, args []string) {
	// ExitOnError so -h prints usage and exits instead of surfacing
	// flag.ErrHelp as a parse failure.
	fs := flag.NewFlagSet("nexus-board", flag.ExitOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.JWTSecret, "s", config.JWTSecret, "secret key for signing admin tokens")
	fs.StringVar(&config.AdminPasswordHash, "p", config.AdminPasswordHash, "bcrypt hash of the admin password")

	storeTimeout := fs.Int("t", int(config.StoreTimeout.Seconds()), "store timeout (in seconds)")
	tokenValidity := fs.Int("v", int(config.TokenValidity.Minutes()), "admin token validity (in minutes)")

	// Unreachable with ExitOnError, kept as a guard should the error
	// mode ever change.
	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.StoreTimeout = time.Duration(*storeTimeout) * time.Second
	config.TokenValidity = time.Duration(*tokenValidity) * time.Minute
}
