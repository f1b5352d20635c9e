package config

import (
	"flag"
	"os"
	"time"

	"github.com/patiparn/rodchao/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the rental backend (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-u string   owner email to sign in as at startup
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseAddr, "a", cfg.APIBaseAddr, "base URL of the rental backend")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.OwnerEmail, "u", cfg.OwnerEmail, "owner email to sign in as")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
