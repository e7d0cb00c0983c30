package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "hiterror.toml"

// Config represents the TOML defaults file. Every field is optional;
// CLI flags override config values.
type Config struct {
	Analyze AnalyzeConfig `toml:"analyze"`
}

type AnalyzeConfig struct {
	System *string  `toml:"system"`
	Level  *int     `toml:"level"`
	Start  *float64 `toml:"start"`
	End    *float64 `toml:"end"`
}

// loadConfig reads the TOML defaults. A missing file is only an error
// when the user named it explicitly.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
