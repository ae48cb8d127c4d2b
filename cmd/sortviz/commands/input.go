// Package commands implements CLI command handlers for sortviz.
package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sortviz/sortviz/internal/config"
	"github.com/sortviz/sortviz/internal/input"
)

// inputFlags holds the shared flags that determine the input array.
type inputFlags struct {
	values string
	size   int
	seed   int64
	shape  string
}

// ErrTooManyValues indicates an explicit value list above the configured cap.
var ErrTooManyValues = errors.New("too many input values")

// resolveValues produces the input array: an explicit --values list when
// given, otherwise a seeded generation using the config defaults overridden
// by flags.
func resolveValues(flags *inputFlags, cfg *config.Config) ([]int, error) {
	if flags.values != "" {
		values, parseErr := parseValues(flags.values)
		if parseErr != nil {
			return nil, parseErr
		}

		if len(values) > cfg.Input.MaxSize {
			return nil, fmt.Errorf("%w: %d exceeds cap %d", ErrTooManyValues, len(values), cfg.Input.MaxSize)
		}

		return values, nil
	}

	spec := input.Spec{
		Size:  cfg.Input.Size,
		Min:   cfg.Input.Min,
		Max:   cfg.Input.Max,
		Seed:  cfg.Input.Seed,
		Shape: input.Shape(cfg.Input.Shape),
	}

	if flags.size > 0 {
		spec.Size = flags.size
	}

	if flags.seed != 0 {
		spec.Seed = flags.seed
	}

	if flags.shape != "" {
		spec.Shape = input.Shape(flags.shape)
	}

	if spec.Size > cfg.Input.MaxSize {
		return nil, fmt.Errorf("%w: %d exceeds cap %d", ErrTooManyValues, spec.Size, cfg.Input.MaxSize)
	}

	values, genErr := input.Generate(spec)
	if genErr != nil {
		return nil, fmt.Errorf("generate input: %w", genErr)
	}

	return values, nil
}

// parseValues parses a comma-separated integer list.
func parseValues(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		v, convErr := strconv.Atoi(trimmed)
		if convErr != nil {
			return nil, fmt.Errorf("parse value %q: %w", trimmed, convErr)
		}

		values = append(values, v)
	}

	return values, nil
}
