// Package config loads and stores the user configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/harsh-simform/snapflow-desktop-sub001/log"
)

const (
	configFileEnvVar = "SNAPFLOW_CONFIG"
	defaultFileName  = ".snapflow.yaml"
)

// Config is the on-disk user configuration.
//
// The two minimum selection sizes are deliberately separate knobs:
// free-region capture and window/recording-area capture use different
// thresholds.
type Config struct {
	// Selection policy, logical pixels.
	MinRegionSize int `yaml:"minRegionSize"`
	MinWindowSize int `yaml:"minWindowSize"`

	// Seed style for new shapes.
	StrokeColor string  `yaml:"strokeColor"`
	StrokeWidth float64 `yaml:"strokeWidth"`
	FillColor   string  `yaml:"fillColor,omitempty"`
	FillOpacity float64 `yaml:"fillOpacity"`
	FontSize    float64 `yaml:"fontSize"`

	// Export.
	ExportScale    float64 `yaml:"exportScale"`
	OutputDir      string  `yaml:"outputDir"`
	ThumbnailWidth int     `yaml:"thumbnailWidth"`

	// Record service.
	ServiceURL string `yaml:"serviceUrl,omitempty"`
	UserToken  string `yaml:"userToken,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		MinRegionSize:  10,
		MinWindowSize:  50,
		StrokeColor:    "#ff3b30",
		StrokeWidth:    4,
		FillOpacity:    0.25,
		FontSize:       18,
		ExportScale:    2,
		OutputDir:      filepath.Join(home, "Pictures", "snapflow"),
		ThumbnailWidth: 320,
	}
}

// Path returns the config file location, honoring SNAPFLOW_CONFIG.
func Path() string {
	if p := os.Getenv(configFileEnvVar); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warning.Println("failed to resolve home dir, using the working directory")
		return defaultFileName
	}
	return filepath.Join(home, defaultFileName)
}

// Load reads the config file at path, filling any unset field with
// its default. A missing file is not an error: the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "reading config file")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(err, "parsing config file")
	}

	if cfg.MinRegionSize <= 0 {
		cfg.MinRegionSize = Default().MinRegionSize
	}
	if cfg.MinWindowSize <= 0 {
		cfg.MinWindowSize = Default().MinWindowSize
	}
	if cfg.ExportScale <= 0 {
		cfg.ExportScale = Default().ExportScale
	}

	return cfg, nil
}

// Save writes the config file, creating parent directories as needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "serializing config")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrap(err, "creating config dir")
		}
	}

	return errors.Wrap(os.WriteFile(path, data, 0o600), "writing config file")
}
