package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// ExportConfig holds defaults for the export command.
type ExportConfig struct {
	Format string `mapstructure:"format"`
}

// Config holds all runtime configuration for a centerbrain run.
// Values are populated from .centerbrain.yaml, CENTERBRAIN_* env vars, and CLI flags.
type Config struct {
	OutputDir        string       `mapstructure:"output_dir"`
	JSONFile         string       `mapstructure:"json_file"`
	DeclarationsFile string       `mapstructure:"declarations_file"`
	TypeGenerator    string       `mapstructure:"type_generator"`
	Verbose          bool         `mapstructure:"verbose"`
	Export           ExportConfig `mapstructure:"export"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("output_dir", "site/src")
	viper.SetDefault("json_file", "dsp.json")
	viper.SetDefault("declarations_file", "dsp.d.ts")
	viper.SetDefault("type_generator", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("export.format", "json")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// OutputPaths returns where the JSON archive and its declarations go. A
// relative OutputDir is taken from the checkout root.
func (c Config) OutputPaths(root string) (jsonPath, declarationsPath string) {
	dir := c.OutputDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return filepath.Join(dir, c.JSONFile), filepath.Join(dir, c.DeclarationsFile)
}
