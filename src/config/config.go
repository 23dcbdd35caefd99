package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the startup configuration. Values from the file are
// merged over the defaults and the command line flags win over both.
type Config struct {
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	Interval      time.Duration `json:"interval"`
	MaxSteps      int           `json:"max_steps"`
	Engine        string        `json:"engine"`
	RandomDensity float64       `json:"random_density"`
	Random        bool          `json:"random"`
	Interactive   bool          `json:"interactive"`
}

// Default returns sensible defaults
func Default() Config {
	return Config{
		Width:         40,
		Height:        15,
		Interval:      100 * time.Millisecond,
		MaxSteps:      1000,
		Engine:        "simple",
		RandomDensity: 0.15,
	}
}

// Load reads the configuration file on top of the defaults.
// On error the defaults are returned along with the cause.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}

	return cfg, nil
}
