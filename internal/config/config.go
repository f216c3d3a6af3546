// Package config loads the optional YAML profile the codectoy CLI reads for
// its default RS parity, block size and archive file extension.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile holds the defaults a CLI invocation falls back to when a flag is
// not given explicitly.
type Profile struct {
	DefaultParity    int    `yaml:"default_parity"`
	DefaultBlockSize int    `yaml:"default_block_size"`
	ArchiveExt       string `yaml:"archive_ext"`
}

// Default returns the built-in profile used when no config file is given.
// A block size of 223 leaves room for a parity of up to 32 within the
// codec's 255-byte codeword ceiling, the conventional CCSDS RS(255,223)
// split.
func Default() Profile {
	return Profile{
		DefaultParity:    10,
		DefaultBlockSize: 223,
		ArchiveExt:       ".huff",
	}
}

// Load reads a YAML profile from path, overlaying it onto Default() so a
// file only needs to mention the fields it wants to override. An empty path
// returns Default() unchanged.
func Load(path string) (Profile, error) {
	profile := Default()
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return profile, nil
}
