package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	// MinFrameRate is the shortest delay between generations
	MinFrameRate = 50 * time.Millisecond
	// FrameRateStep is how much the delay changes per speed key press
	FrameRateStep = 50 * time.Millisecond
)

// Config holds the configuration for the game
type Config struct {
	Rows                int           `json:"rows"`
	Columns             int           `json:"columns"`
	FrameRate           time.Duration `json:"frame_rate"`
	Seed                int64         `json:"seed"` // 0 picks a time-based seed
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	Interactive         bool          `json:"interactive"`
	Pattern             string        `json:"pattern"` // empty means a random 1/3 seeding
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                33,
		Columns:             76,
		FrameRate:           400 * time.Millisecond,
		AutoRestart:         false,
		StagnationThreshold: 5,
		MaxGenerations:      0,
		Interactive:         false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values a world cannot be built or run without
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return errors.Errorf("rows and columns must be positive, got %dx%d", c.Rows, c.Columns)
	}
	if c.FrameRate < MinFrameRate {
		return errors.Errorf("frame_rate must be at least %v, got %v", MinFrameRate, c.FrameRate)
	}
	if c.StagnationThreshold < 0 || c.MaxGenerations < 0 {
		return errors.New("stagnation_threshold and max_generations must not be negative")
	}
	return nil
}

// SeedOrNow returns the configured seed, or the current time when none is set
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Slower lengthens a frame delay by one step
func Slower(d time.Duration) time.Duration {
	return d + FrameRateStep
}

// Faster shortens a frame delay by one step, never below MinFrameRate
func Faster(d time.Duration) time.Duration {
	return max(MinFrameRate, d-FrameRateStep)
}
