package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// CliArgs holds the parsed command line of the server binary.
var CliArgs *CliConfig

type CliConfig struct {
	ConfigFile string
	Debug      bool
	Version    bool
}

// ParseArgs parses os.Args into CliArgs. It may only be called once.
func ParseArgs() {
	if CliArgs != nil {
		panic("already defined")
	}
	args, err := parseArgs(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	CliArgs = args
}

func parseArgs(name string, argv []string) (*CliConfig, error) {
	args := &CliConfig{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&args.ConfigFile, "config", "", "Path to an optional YAML config file")
	fs.BoolVar(&args.Debug, "d", false, "Enable debug logging")
	fs.BoolVar(&args.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&args.Version, "v", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags]\n\nServer settings are read from %s_* environment variables.\n\n", name, EnvPrefix)
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	return args, nil
}
