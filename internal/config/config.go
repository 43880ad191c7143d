// Package config loads the assembler's presentation settings from an
// optional TOML file. None of these settings change encoded output — the
// standard binary and diagnostic formats are always available as the
// defaults — they only adjust CLI defaults, diagnostic rendering and
// inspector behavior. A
// nested, toml-tagged struct with a DefaultConfig constructor and a
// best-effort Load.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds presentation settings, never assembly semantics.
type Config struct {
	Assemble struct {
		// DefaultMode selects --tokenized/--raw/--high when the CLI is
		// given no mode flag. "tokenized" is the default input mode.
		DefaultMode string `toml:"default_mode"`
	} `toml:"assemble"`

	Diagnostics struct {
		// AddressFormat renders the symbol dump's addresses. "decimal" is
		// the required format; "hex" is an additive convenience.
		AddressFormat string `toml:"address_format"`
		ColorOutput   bool   `toml:"color_output"`
	} `toml:"diagnostics"`

	Inspect struct {
		Enabled       bool `toml:"enabled"`
		ShowUndefined bool `toml:"show_undefined"`
	} `toml:"inspect"`
}

// DefaultConfig returns a Config with the baseline defaults: tokenized
// input, decimal addresses, no color, inspector off.
func DefaultConfig() *Config {
	c := &Config{}
	c.Assemble.DefaultMode = "tokenized"
	c.Diagnostics.AddressFormat = "decimal"
	c.Diagnostics.ColorOutput = false
	c.Inspect.Enabled = false
	c.Inspect.ShowUndefined = true
	return c
}

// Load reads a TOML config file at path, starting from DefaultConfig and
// overriding only the keys present in the file. A missing file is not an
// error — it simply yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
