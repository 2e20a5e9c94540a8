package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/apiclient/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     API base URL
//	-d string     session database file (":memory:" keeps nothing on disk)
//	-t duration   per-request HTTP timeout, e.g. 10s
//	-v            dump HTTP traffic
//
// os.Args is filtered with flagx.FilterArgs first so that flags owned by
// other components (-c) do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.DatabaseFile, "d", cfg.DatabaseFile, "session database file")
	fs.DurationVar(&cfg.HTTPTimeout, "t", cfg.HTTPTimeout, "HTTP request timeout")
	fs.BoolVar(&cfg.Debug, "v", cfg.Debug, "dump HTTP requests and responses")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
