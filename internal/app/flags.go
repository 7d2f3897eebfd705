package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Sim    string
	Size   int
	Scale  int
	TPS    int
	Paused bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Size: 64, Scale: 8, TPS: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Size, "size", c.Size, "board dimension (cells per side)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// Validate rejects values the viewers cannot work with. Board size is left to
// the simulation.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	return nil
}

// SimParams converts the config into the map handed to core.Lookup.
func (c *Config) SimParams() map[string]string {
	return map[string]string{"size": strconv.Itoa(c.Size)}
}
