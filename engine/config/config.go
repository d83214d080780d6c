package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/arena/engine/animation"
	"github.com/spaghettifunk/arena/engine/core"
)

// Config mirrors arena.toml. Every field has a default so a partial file is
// enough.
type Config struct {
	App     AppConfig     `toml:"app"`
	Shot    ShotConfig    `toml:"shot"`
	Net     NetConfig     `toml:"net"`
	Score   ScoreConfig   `toml:"score"`
	Video   VideoConfig   `toml:"video"`
	Dribble DribbleConfig `toml:"dribble"`
	Crowd   CrowdConfig   `toml:"crowd"`
	Audio   AudioConfig   `toml:"audio"`
	Assets  AssetsConfig  `toml:"assets"`
}

type AppConfig struct {
	Name     string `toml:"name"`
	LogLevel string `toml:"log_level"`
	// Log destination while the terminal is in use. Empty discards logs.
	LogFile   string `toml:"log_file"`
	TargetFPS int    `toml:"target_fps"`
}

type ShotConfig struct {
	Duration       float64 `toml:"duration"`
	SwishThreshold float64 `toml:"swish_threshold"`
	// "ignore" or "restart"
	Retrigger string `toml:"retrigger"`
}

type NetConfig struct {
	SwayDuration float64 `toml:"sway_duration"`
}

type ScoreConfig struct {
	Ceiling int `toml:"ceiling"`
}

type VideoConfig struct {
	Frames int `toml:"frames"`
	// Seconds between automatic frame changes; 0 means manual only.
	Interval float64 `toml:"interval"`
}

type DribbleConfig struct {
	Radius float32 `toml:"radius"`
	Height float32 `toml:"height"`
	Speed  float32 `toml:"speed"`
}

type CrowdConfig struct {
	Seed uint64 `toml:"seed"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
}

type AssetsConfig struct {
	Path  string `toml:"path"`
	Font  string `toml:"font"`
	Watch bool   `toml:"watch"`
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:      "Arena",
			LogLevel:  "info",
			LogFile:   "arena.log",
			TargetFPS: 60,
		},
		Shot: ShotConfig{
			Duration:       animation.DefaultShotDuration,
			SwishThreshold: animation.DefaultSwishThreshold,
			Retrigger:      animation.RetriggerIgnore.String(),
		},
		Net:   NetConfig{SwayDuration: animation.DefaultSwayDuration},
		Score: ScoreConfig{Ceiling: animation.DefaultScoreCeiling},
		Video: VideoConfig{Frames: animation.DefaultVideoFrames},
		Dribble: DribbleConfig{
			Radius: animation.DefaultDribbleRadius,
			Height: animation.DefaultDribbleHeight,
			Speed:  animation.DefaultDribbleSpeed,
		},
		Crowd: CrowdConfig{Seed: 1},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.8,
		},
		Assets: AssetsConfig{
			Path:  "assets",
			Font:  "fonts/digits.fnt",
			Watch: true,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults. Unknown keys are rejected so typos
// do not silently fall back to a default.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%s: %w", strict.String(), core.ErrInvalidConfig)
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("line %d column %d: %s: %w", row, col, decodeErr.Error(), core.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%v: %w", err, core.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), core.ErrInvalidConfig)
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	if _, err := core.ParseLogLevel(c.App.LogLevel); err != nil {
		return invalid("app.log_level %q", c.App.LogLevel)
	}
	if c.App.TargetFPS <= 0 {
		return invalid("app.target_fps must be positive, got %d", c.App.TargetFPS)
	}
	if c.Shot.Duration <= 0 {
		return invalid("shot.duration must be positive, got %v", c.Shot.Duration)
	}
	if c.Shot.SwishThreshold < 0 || c.Shot.SwishThreshold > 1 {
		return invalid("shot.swish_threshold must be in [0, 1], got %v", c.Shot.SwishThreshold)
	}
	if _, err := animation.ParseRetriggerPolicy(c.Shot.Retrigger); err != nil {
		return fmt.Errorf("shot.retrigger: %w", err)
	}
	if c.Net.SwayDuration <= 0 {
		return invalid("net.sway_duration must be positive, got %v", c.Net.SwayDuration)
	}
	if c.Score.Ceiling <= 0 {
		return invalid("score.ceiling must be positive, got %d", c.Score.Ceiling)
	}
	if c.Video.Frames <= 0 {
		return invalid("video.frames must be positive, got %d", c.Video.Frames)
	}
	if c.Video.Interval < 0 {
		return invalid("video.interval must not be negative, got %v", c.Video.Interval)
	}
	if c.Dribble.Radius < 0 || c.Dribble.Height < 0 || c.Dribble.Speed <= 0 {
		return invalid("dribble radius/height must not be negative and speed must be positive")
	}
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000 {
		return invalid("audio.sample_rate %d out of range", c.Audio.SampleRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return invalid("audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	}
	return nil
}

// ShotSettings converts the [shot] table for the animator.
func (c *Config) ShotSettings() animation.ShotConfig {
	policy, err := animation.ParseRetriggerPolicy(c.Shot.Retrigger)
	if err != nil {
		core.LogWarn("%v, ignoring retriggers", err)
	}
	return animation.ShotConfig{
		Duration:       c.Shot.Duration,
		SwishThreshold: c.Shot.SwishThreshold,
		Retrigger:      policy,
	}
}

func (c *Config) DribbleSettings() animation.Dribble {
	return animation.Dribble{
		Radius: c.Dribble.Radius,
		Height: c.Dribble.Height,
		Speed:  c.Dribble.Speed,
	}
}
