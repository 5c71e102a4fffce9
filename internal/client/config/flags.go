package config

import (
	"flag"
	"os"

	"github.com/editaisbr/editais/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   base URL of the backend service
//	-k string   backend API key
//	-d string   path of the local database
//
// os.Args is filtered through flagx.FilterArgs so flags owned by other
// components do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-k", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendBaseURL, "b", cfg.BackendBaseURL, "base URL of the backend service")
	fs.StringVar(&cfg.BackendAPIKey, "k", cfg.BackendAPIKey, "backend API key")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
