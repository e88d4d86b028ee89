package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/randalmurphal/tmplfn/funcs"
)

// Config is the operator-facing runtime configuration.
type Config struct {
	// Disabled lists function names removed from the table.
	Disabled []string `toml:"disabled"`

	Random Random `toml:"random"`
}

// Random configures the randomized-generation functions.
type Random struct {
	// MaxLen caps the length the rand functions will generate.
	// Zero means uncapped.
	MaxLen int64 `toml:"max_len"`
}

// Load reads and validates a TOML config file.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every disabled name is a registered function
// and that the random cap is not negative.
func (c Config) Validate() error {
	known := make(map[string]bool)
	for _, n := range funcs.Names() {
		known[n] = true
	}
	for _, n := range c.Disabled {
		if !known[n] {
			return fmt.Errorf("config disables unknown function %q", n)
		}
	}
	if c.Random.MaxLen < 0 {
		return fmt.Errorf("random.max_len must not be negative, got %d", c.Random.MaxLen)
	}
	return nil
}

// Options translates the config into library options.
func (c Config) Options() []funcs.Option {
	var opts []funcs.Option
	if len(c.Disabled) > 0 {
		opts = append(opts, funcs.WithDisabled(c.Disabled...))
	}
	if c.Random.MaxLen > 0 {
		opts = append(opts, funcs.WithMaxRandLen(c.Random.MaxLen))
	}
	return opts
}
