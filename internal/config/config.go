// Package config holds the viewer's YAML configuration.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir        = "."
	DefaultPattern        = `^pareto_(\d+)_(\d+)\.dat$`
	DefaultPlotWidth      = 70
	DefaultPlotHeight     = 20
	DefaultFollowInterval = time.Second
)

// Duration wraps time.Duration so YAML can use "250ms"-style strings.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

type Config struct {
	DataDir        string          `yaml:"data_dir"`
	Pattern        string          `yaml:"pattern"`
	Plot           PlotConfig      `yaml:"plot"`
	FollowInterval Duration        `yaml:"follow_interval"`
	Reference      ReferenceConfig `yaml:"reference"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ReferenceConfig is the hypervolume reference point. Zero values mean
// "derive from the data".
type ReferenceConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:        DefaultDataDir,
		Pattern:        DefaultPattern,
		Plot:           PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight},
		FollowInterval: Duration(DefaultFollowInterval),
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
		return nil, fmt.Errorf("%s: %w", path, err)
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
	if _, err := regexp.Compile(c.Pattern); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", c.Plot.Width, c.Plot.Height)
	}
	if c.FollowInterval <= 0 {
		return fmt.Errorf("follow interval must be positive, got %v", c.FollowInterval)
	}
	return nil
}
