package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation
type Config struct {
	Generations    int           `json:"generations" env:"GOL_GENERATIONS"`
	InputFile      string        `json:"input_file" env:"GOL_INPUT"`
	OutputFile     string        `json:"output_file" env:"GOL_OUTPUT"`
	UseParallel    bool          `json:"use_parallel" env:"GOL_PARALLEL"`
	Workers        int           `json:"workers" env:"GOL_WORKERS"`
	UseMemoryPool  bool          `json:"use_memory_pool" env:"GOL_MEMORY_POOL"`
	Render         bool          `json:"render" env:"GOL_RENDER"`
	FollowCells    bool          `json:"follow_cells" env:"GOL_FOLLOW_CELLS"`
	FrameRate      Duration      `json:"frame_rate" env:"GOL_FRAME_RATE"` // "150ms" in JSON and env
	ViewportX      int64         `json:"viewport_x" env:"GOL_VIEWPORT_X"`
	ViewportY      int64         `json:"viewport_y" env:"GOL_VIEWPORT_Y"`
	ViewportWidth  int           `json:"viewport_width" env:"GOL_VIEWPORT_WIDTH"`
	ViewportHeight int           `json:"viewport_height" env:"GOL_VIEWPORT_HEIGHT"`
	RandomDensity  float64       `json:"random_density" env:"GOL_RANDOM_DENSITY"`
	RandomSeed     int64         `json:"random_seed" env:"GOL_RANDOM_SEED"`
	LogLevel       string        `json:"log_level" env:"GOL_LOG_LEVEL"`
	OTelEndpoint   string        `json:"otel_endpoint" env:"GOL_OTEL_ENDPOINT"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Generations:    10,
		InputFile:      "",
		OutputFile:     "results.txt",
		UseParallel:    false,
		Workers:        0, // runtime.NumCPU()
		UseMemoryPool:  true,
		Render:         false,
		FollowCells:    true,
		FrameRate:      Duration(150 * time.Millisecond),
		ViewportX:      -30,
		ViewportY:      -15,
		ViewportWidth:  60,
		ViewportHeight: 30,
		RandomDensity:  0.15,
		RandomSeed:     1,
		LogLevel:       "info",
	}
}

// LoadConfig loads configuration from a JSON file over the defaults, then applies
// GOL_* environment overrides. A missing file is not an error.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	if err = env.Parse(&config); err != nil {
		return config, errors.Wrap(err, "[LoadConfig] failed to parse environment overrides")
	}

	return config, config.Validate()
}

// Validate rejects settings the driver cannot run with
func (c Config) Validate() error {
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Generations)
	}
	if c.Workers < 0 {
		return errors.Errorf("[Validate] workers must not be negative, got %d", c.Workers)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return errors.Errorf("[Validate] viewport must be positive, got %dx%d", c.ViewportWidth, c.ViewportHeight)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random density must be within [0, 1], got %v", c.RandomDensity)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "[Validate] invalid log level")
	}
	return nil
}
