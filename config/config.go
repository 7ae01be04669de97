// Package config provides configuration loading and access for the starfield host.
// Starfield geometry and shading constants are fixed at build time in package starfield;
// this covers the window, overlay effects, HUD and telemetry.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all host configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Effects   EffectsConfig   `yaml:"effects"`
	HUD       HUDConfig       `yaml:"hud"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	TargetFPS  int    `yaml:"target_fps"`
	Resizable  bool   `yaml:"resizable"`
	HighDPI    bool   `yaml:"high_dpi"`
	HideCursor bool   `yaml:"hide_cursor"` // cursor glow replaces the system cursor
}

// EffectsConfig holds the cursor and orb overlay parameters.
type EffectsConfig struct {
	Enabled bool        `yaml:"enabled"`
	Palette []RGBA      `yaml:"palette"` // particle colors, picked uniformly
	Glow    GlowConfig  `yaml:"glow"`
	Trail   TrailConfig `yaml:"trail"`
	Burst   BurstConfig `yaml:"burst"`
	Orb     OrbConfig   `yaml:"orb"`
}

// RGBA is a color as [r, g, b, a] bytes.
type RGBA [4]uint8

// GlowConfig holds the cursor glow appearance.
type GlowConfig struct {
	Radius float64 `yaml:"radius"`
	Color  RGBA    `yaml:"color"`
}

// TrailConfig holds cursor trail spawning parameters.
type TrailConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ThrottleMS  int     `yaml:"throttle_ms"`  // minimum interval between spawns
	SpawnChance float64 `yaml:"spawn_chance"` // probability a qualifying move spawns
	Lifetime    float64 `yaml:"lifetime"`     // seconds
	MinSize     float64 `yaml:"min_size"`
	MaxSize     float64 `yaml:"max_size"`
	Rise        float64 `yaml:"rise"` // pixels risen over the lifetime
	MaxLive     int     `yaml:"max_live"`
}

// BurstConfig holds click burst parameters.
type BurstConfig struct {
	Count       int     `yaml:"count"`      // size of the burst particle pool
	StaggerMS   int     `yaml:"stagger_ms"` // delay between consecutive particles
	Duration    float64 `yaml:"duration"`   // seconds; all particles hidden after this
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	Travel      float64 `yaml:"travel"` // extra outward distance covered while fading
	MinSize     float64 `yaml:"min_size"`
	MaxSize     float64 `yaml:"max_size"`
}

// OrbConfig holds the central orb animation parameters.
type OrbConfig struct {
	Radius         float64 `yaml:"radius"`
	RotatePeriod   float64 `yaml:"rotate_period"`
	PulsePeriod    float64 `yaml:"pulse_period"`
	CorePeriod     float64 `yaml:"core_period"`
	RestartDelayMS int     `yaml:"restart_delay_ms"`
}

// HUDConfig holds debug overlay settings.
type HUDConfig struct {
	Visible bool `yaml:"visible"`
}

// TelemetryConfig holds frame timing parameters.
type TelemetryConfig struct {
	PerfWindow  int     `yaml:"perf_window"`  // frames in the rolling window
	LogInterval float64 `yaml:"log_interval"` // seconds between perf logs
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TrailThrottle float64      // Trail.ThrottleMS in seconds
	BurstStagger  float64      // Burst.StaggerMS in seconds
	OrbRestart    float64      // Orb.RestartDelayMS in seconds
	Palette       []color.RGBA // Effects.Palette as color.RGBA
	GlowColor     color.RGBA   // Effects.Glow.Color as color.RGBA
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the host cannot run with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Effects.Trail.SpawnChance < 0 || c.Effects.Trail.SpawnChance > 1 {
		return fmt.Errorf("effects.trail.spawn_chance must be in [0,1], got %f", c.Effects.Trail.SpawnChance)
	}
	if c.Effects.Burst.Count < 0 {
		return fmt.Errorf("effects.burst.count must not be negative, got %d", c.Effects.Burst.Count)
	}
	if c.Effects.Enabled && len(c.Effects.Palette) == 0 {
		return fmt.Errorf("effects.palette must have at least one color")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TrailThrottle = float64(c.Effects.Trail.ThrottleMS) / 1000
	c.Derived.BurstStagger = float64(c.Effects.Burst.StaggerMS) / 1000
	c.Derived.OrbRestart = float64(c.Effects.Orb.RestartDelayMS) / 1000

	c.Derived.Palette = make([]color.RGBA, len(c.Effects.Palette))
	for i, p := range c.Effects.Palette {
		c.Derived.Palette[i] = p.Color()
	}
	c.Derived.GlowColor = c.Effects.Glow.Color.Color()

	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 120
	}
}

// Color converts to color.RGBA.
func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
