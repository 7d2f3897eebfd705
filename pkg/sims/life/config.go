package life

import "strconv"

// Config controls the Universe dimension and diagnostics.
type Config struct {
	Size int

	// Trace, when set, receives the new cell state after every toggle and
	// whether anything flipped after every tick.
	Trace func(bool)
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 64}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// An unparseable size maps to 0 so construction rejects it.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			parsed = 0
		}
		c.Size = parsed
	}
	return c
}
