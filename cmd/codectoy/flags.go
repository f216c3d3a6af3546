package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"codectoy/internal/config"
)

// cliConfig holds the resolved settings for a single codectoy invocation.
type cliConfig struct {
	Codec        string // "huffman" or "rs"
	Action       string // "encode" or "decode"
	Input        string
	OutputFormat string
	Parity       int
	BlockSize    int
	ConfigPath   string
	Verbose      bool
}

// parseFlags parses CLI arguments into a cliConfig. Returns the config,
// whether the caller should exit immediately, and the exit code.
func parseFlags(args []string) (cliConfig, bool, int) {
	if len(args) < 2 {
		fmt.Println(usage())
		return cliConfig{}, true, 2
	}

	cfg := cliConfig{Codec: args[0], Action: args[1]}

	fs := pflag.NewFlagSet("codectoy", pflag.ContinueOnError)
	outputFormat := fs.String("output-format", "", "output format: hex, text, or auto (default depends on action)")
	parity := fs.Int("parity", -1, "RS parity byte count (default from config profile)")
	blockSize := fs.Int("block-size", -1, "block size for multi-block RS operations (default from config profile)")
	configPath := fs.String("config", "", "path to a YAML config profile")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args[2:]); err != nil {
		return cfg, true, 2
	}
	if *showVersion {
		fmt.Printf("codectoy %s\n", version)
		return cfg, true, 0
	}

	profile, err := config.Load(*configPath)
	if err != nil {
		fmt.Println(err)
		return cfg, true, 1
	}

	cfg.Parity = *parity
	if cfg.Parity < 0 {
		cfg.Parity = profile.DefaultParity
	}
	cfg.BlockSize = *blockSize
	if cfg.BlockSize < 0 {
		cfg.BlockSize = profile.DefaultBlockSize
	}
	cfg.ConfigPath = *configPath
	cfg.Verbose = *verbose

	cfg.OutputFormat = *outputFormat
	if cfg.OutputFormat == "" {
		if cfg.Action == "encode" {
			cfg.OutputFormat = "hex"
		} else {
			cfg.OutputFormat = "auto"
		}
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Println("codectoy: expected exactly one input argument")
		return cfg, true, 2
	}
	cfg.Input = rest[0]

	return cfg, false, 0
}

func usage() string {
	return `codectoy <codec> <action> [flags] <input>

codec:   huffman, rs
action:  encode, decode

flags:
  --output-format string   hex, text, or auto
  --parity int             RS parity byte count
  --block-size int         block size for multi-block RS operations
  --config string          path to a YAML config profile
  --verbose                enable debug logging
  --version                print version and exit

input is UTF-8 text, lowercase hex (optional 0x prefix), or
whitespace-separated decimal bytes; codectoy auto-detects which.`
}
