package config

import (
	"errors"
	"time"
)

// Config is the top-level configuration struct for sortviz.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Playback PlaybackConfig `mapstructure:"playback"`
	Input    InputConfig    `mapstructure:"input"`
	Render   RenderConfig   `mapstructure:"render"`
	Serve    ServeConfig    `mapstructure:"serve"`
}

// PlaybackConfig holds playback defaults.
type PlaybackConfig struct {
	Algorithm string        `mapstructure:"algorithm"`
	Interval  time.Duration `mapstructure:"interval"`
}

// InputConfig holds input array generation settings.
type InputConfig struct {
	Size    int    `mapstructure:"size"`
	MaxSize int    `mapstructure:"max_size"`
	Min     int    `mapstructure:"min"`
	Max     int    `mapstructure:"max"`
	Seed    int64  `mapstructure:"seed"`
	Shape   string `mapstructure:"shape"`
}

// RenderConfig holds chart rendering settings.
type RenderConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// ServeConfig holds frame feed server settings.
type ServeConfig struct {
	Listen string `mapstructure:"listen"`
}

// Configuration defaults.
const (
	DefaultPlaybackAlgorithm = "bubble"
	DefaultPlaybackInterval  = 500 * time.Millisecond
	DefaultInputSize         = 30
	DefaultInputMaxSize      = 500
	DefaultInputMin          = 1
	DefaultInputMax          = 100
	DefaultInputSeed         = int64(0)
	DefaultInputShape        = "random"
	DefaultRenderOutputDir   = "sortviz-report"
	DefaultServeListen       = "localhost:8632"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidInterval indicates a non-positive playback interval.
	ErrInvalidInterval = errors.New("playback.interval must be positive")
	// ErrInvalidSize indicates a negative input size.
	ErrInvalidSize = errors.New("input.size must be non-negative")
	// ErrInvalidMaxSize indicates a non-positive input size cap.
	ErrInvalidMaxSize = errors.New("input.max_size must be positive")
	// ErrSizeAboveCap indicates an input size above the configured cap.
	ErrSizeAboveCap = errors.New("input.size must not exceed input.max_size")
	// ErrInvalidValueRange indicates an input value range with min above max.
	ErrInvalidValueRange = errors.New("input.min must not exceed input.max")
	// ErrInvalidShape indicates an unknown input shape.
	ErrInvalidShape = errors.New("input.shape must be one of random, sorted, reversed, nearly_sorted")
	// ErrNoListenAddress indicates an empty serve listen address.
	ErrNoListenAddress = errors.New("serve.listen must not be empty")
)

// validShapes is the closed set of input shapes.
var validShapes = map[string]bool{
	"random":        true,
	"sorted":        true,
	"reversed":      true,
	"nearly_sorted": true,
}

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.Playback.Interval <= 0 {
		return ErrInvalidInterval
	}

	inputErr := c.validateInput()
	if inputErr != nil {
		return inputErr
	}

	if c.Serve.Listen == "" {
		return ErrNoListenAddress
	}

	return nil
}

func (c *Config) validateInput() error {
	if c.Input.Size < 0 {
		return ErrInvalidSize
	}

	if c.Input.MaxSize <= 0 {
		return ErrInvalidMaxSize
	}

	if c.Input.Size > c.Input.MaxSize {
		return ErrSizeAboveCap
	}

	if c.Input.Min > c.Input.Max {
		return ErrInvalidValueRange
	}

	if !validShapes[c.Input.Shape] {
		return ErrInvalidShape
	}

	return nil
}
