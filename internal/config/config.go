package config

import (
	"fmt"
	"os"

	"github.com/san-kum/fracview/internal/mandel"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultMaxIter = 512
	DefaultPalette = "hue"
)

type Config struct {
	Width   int          `yaml:"width"`
	Height  int          `yaml:"height"`
	MaxIter int          `yaml:"max_iter"`
	Palette string       `yaml:"palette"`
	Region  RegionConfig `yaml:"region"`
}

type RegionConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		MaxIter: DefaultMaxIter,
		Palette: DefaultPalette,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("max_iter must be positive, got %d", c.MaxIter)
	}
	return nil
}

// GetRegion resolves the configured plane window. An unset region means
// the default view: x spanning [-2,2], y aspect-corrected.
func (c *Config) GetRegion() mandel.Region {
	r := mandel.Region{
		XMin: c.Region.XMin, XMax: c.Region.XMax,
		YMin: c.Region.YMin, YMax: c.Region.YMax,
	}
	if r.Degenerate() {
		return mandel.Home(c.Width, c.Height)
	}
	return r
}

// SetRegion stores a plane window into the config.
func (c *Config) SetRegion(r mandel.Region) {
	c.Region = RegionConfig{XMin: r.XMin, XMax: r.XMax, YMin: r.YMin, YMax: r.YMax}
}
