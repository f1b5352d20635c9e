package stub

import (
	"flag"
	"os"

	"github.com/patiparn/rodchao/internal/flagx"
)

// Config holds runtime settings for the fixture backend.
type Config struct {
	ListenAddr        string
	RequestsPerMinute int
	Burst             int
}

func (c *Config) LoadDefaults() {
	c.ListenAddr = "127.0.0.1:8000"
	c.RequestsPerMinute = 300
	c.Burst = 30
}

// LoadConfig applies defaults then command-line flags.
//
// Supported flags:
//
//	-l string   listen address (default from Config)
//	-r int      per-IP requests per minute
//	-b int      per-IP burst
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	args := flagx.FilterArgs(os.Args[1:], []string{"-l", "-r", "-b"})

	fs := flag.NewFlagSet("stub", flag.ContinueOnError)
	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "listen address")
	fs.IntVar(&cfg.RequestsPerMinute, "r", cfg.RequestsPerMinute, "per-IP requests per minute")
	fs.IntVar(&cfg.Burst, "b", cfg.Burst, "per-IP burst")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	return cfg
}
