// Package config loads sortviz configuration from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".sortviz"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for sortviz settings.
const envPrefix = "SORTVIZ"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("playback.algorithm", DefaultPlaybackAlgorithm)
	viperCfg.SetDefault("playback.interval", DefaultPlaybackInterval)

	viperCfg.SetDefault("input.size", DefaultInputSize)
	viperCfg.SetDefault("input.max_size", DefaultInputMaxSize)
	viperCfg.SetDefault("input.min", DefaultInputMin)
	viperCfg.SetDefault("input.max", DefaultInputMax)
	viperCfg.SetDefault("input.seed", DefaultInputSeed)
	viperCfg.SetDefault("input.shape", DefaultInputShape)

	viperCfg.SetDefault("render.output_dir", DefaultRenderOutputDir)

	viperCfg.SetDefault("serve.listen", DefaultServeListen)
}
