// Package slrconfig holds ambient, optional runtime/rendering configuration
// for the driver: output format, ancillary-block toggles, serve address.
// Grammar semantics are never configured here — spec §6 forbids persisted
// state for the grammar itself, so this only ever touches presentation.
// Grounded on internal/tqw's use of github.com/BurntSushi/toml for its
// TOML-based data format.
package slrconfig

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/slrgen/internal/slr/render"
	"github.com/dekarrin/slrgen/internal/slrerrors"
)

// Format names the table renderer to use.
type Format string

const (
	FormatText   Format = "text"
	FormatBinary Format = "binary"
	FormatHTML   Format = "html"
)

// Config is the optional TOML document read via --config. Every field has a
// sensible zero value so an absent config file is equivalent to an empty
// one.
type Config struct {
	Format      Format `toml:"format"`
	Ancillary   bool   `toml:"ancillary"`
	Serve       string `toml:"serve"`
	ColumnWidth int    `toml:"column_width"`
}

// Default returns the configuration the driver uses when no --config file
// is given.
func Default() Config {
	return Config{Format: FormatText, ColumnWidth: render.DefaultColumnWidth}
}

// Load reads and parses the TOML file at path. A missing file is an error:
// the caller only calls Load when --config was actually given.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, slrerrors.IO(path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, slrerrors.InputShape("malformed config file "+path, err)
	}
	return cfg, nil
}
