package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the MHP settings store: default bonding policy and
// output preferences, plus user-defined monomer dictionary entries. It is
// read-only to the assembly core, which receives its values through the
// policy and constraint parameters.
type Config struct {
	DefaultFormat string            `mapstructure:"default_format"`
	MaxVariants   int               `mapstructure:"max_variants"`
	Initiator     string            `mapstructure:"initiator"`
	Terminator    string            `mapstructure:"terminator"`
	KeepOpenEnds  bool              `mapstructure:"keep_open_ends"`
	Quiet         bool              `mapstructure:"quiet"`
	Monomers      map[string]string `mapstructure:"monomers"`
	EndGroups     map[string]string `mapstructure:"end_groups"`
}

// Load loads the configuration from mhp.yml/mhp.yaml in the working
// directory or home directory, with MHP_* environment overrides. Missing
// files fall back to defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("default_format", "mol")
	v.SetDefault("max_variants", 0) // 0 defers to the enumerator's default cap
	v.SetDefault("initiator", "Hydrogen")
	v.SetDefault("terminator", "Hydrogen")
	v.SetDefault("keep_open_ends", false)
	v.SetDefault("quiet", false)

	v.SetConfigName("mhp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix("MHP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// ResolveMonomer resolves a monomer key against the user dictionary first,
// passing unknown keys through for the built-in tables or raw notation.
func (c *Config) ResolveMonomer(key string) string {
	if smi, ok := c.Monomers[key]; ok {
		return smi
	}
	return key
}

// ResolveEndGroup resolves an end-group key against the user dictionary
func (c *Config) ResolveEndGroup(key string) string {
	if smi, ok := c.EndGroups[key]; ok {
		return smi
	}
	return key
}
