package config

import (
	"flag"
	"os"
	"time"

	"github.com/vkotlyar/homesense/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":6543")
//	-d string   PostgreSQL DSN
//	-l int      session lifetime, seconds
//	-seed       seed a demo account on an empty database
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l", "-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	sessionLifetime := fs.Int("l", int(config.SessionLifetime.Seconds()), "session lifetime (in seconds)")
	fs.BoolVar(&config.SeedDemoUser, "seed", config.SeedDemoUser, "seed demo account on empty database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionLifetime = time.Duration(*sessionLifetime) * time.Second
}
