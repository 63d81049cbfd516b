// Package config resolves runtime settings from file, environment and flags, later sources winning
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/constant"
)

// Config is the resolved runtime configuration
type Config struct {
	Game      GameConfig      `toml:"game"`
	Audio     AudioConfig     `toml:"audio"`
	HighScore HighScoreConfig `toml:"highscore"`
	Keymap    string          `toml:"keymap"` // Optional key binding overrides
	Debug     bool            `toml:"debug"`
}

type GameConfig struct {
	Tiles   int   `toml:"tiles"`
	SpeedMs int   `toml:"speed_ms"` // Initial tick interval
	Seed    int64 `toml:"seed"`     // 0 picks a time-based seed
}

type AudioConfig struct {
	Enabled      bool `toml:"enabled"`
	MasterVolume int  `toml:"master_volume"` // Percent
}

type HighScoreConfig struct {
	Store string `toml:"store"` // file, sqlite or memory
	Path  string `toml:"path"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Tiles:   constant.TileCount,
			SpeedMs: int(constant.InitialTickInterval / time.Millisecond),
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 50,
		},
		HighScore: HighScoreConfig{
			Store: "file",
			Path:  "data/highscore.toml",
		},
	}
}

// TickInterval returns the initial tick interval as a duration
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Game.SpeedMs) * time.Millisecond
}

// LoadFile decodes a TOML file over c, keys absent from the file keep their values
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// env names
const (
	EnvTiles        = "VI_SNAKE_TILES"
	EnvSpeedMs      = "VI_SNAKE_SPEED_MS"
	EnvHighScore    = "VI_SNAKE_HIGHSCORE"
	EnvStore        = "VI_SNAKE_STORE"
	EnvAudioEnabled = "VI_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "VI_SNAKE_MASTER_VOLUME"
)

// ApplyEnv overlays environment variables, malformed values are reported
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	var errs []error

	setInt := func(name string, dst *int) {
		if v := getenv(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				return
			}
			*dst = n
		}
	}

	setInt(EnvTiles, &c.Game.Tiles)
	setInt(EnvSpeedMs, &c.Game.SpeedMs)
	setInt(EnvMasterVolume, &c.Audio.MasterVolume)

	if v := getenv(EnvHighScore); v != "" {
		c.HighScore.Path = v
	}
	if v := getenv(EnvStore); v != "" {
		c.HighScore.Store = v
	}
	if v := getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvAudioEnabled, err))
		} else {
			c.Audio.Enabled = b
		}
	}

	return errors.Join(errs...)
}

// Validate checks ranges and enums
func (c *Config) Validate() error {
	var errs []error
	if c.Game.Tiles < constant.MinTileCount || c.Game.Tiles > constant.MaxTileCount {
		errs = append(errs, fmt.Errorf("tiles must be in [%d, %d], got %d",
			constant.MinTileCount, constant.MaxTileCount, c.Game.Tiles))
	}
	if c.TickInterval() < constant.MinTickInterval {
		errs = append(errs, fmt.Errorf("speed must be at least %dms, got %dms",
			constant.MinTickInterval/time.Millisecond, c.Game.SpeedMs))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 100 {
		errs = append(errs, fmt.Errorf("master volume must be in [0, 100], got %d", c.Audio.MasterVolume))
	}
	switch c.HighScore.Store {
	case "file", "sqlite", "memory":
	default:
		errs = append(errs, fmt.Errorf("unknown highscore store %q", c.HighScore.Store))
	}
	if c.HighScore.Store != "memory" && c.HighScore.Path == "" {
		errs = append(errs, errors.New("highscore path is empty"))
	}
	return errors.Join(errs...)
}

// Load resolves configuration: defaults, optional file, environment, then flags parsed from args
// An explicit -config path must exist; the default path is optional
func Load(args []string, getenv func(string) string) (*Config, error) {
	fs := flag.NewFlagSet("vi-snake", flag.ContinueOnError)
	configPath := fs.String("config", "vi-snake.toml", "path to TOML config file")
	tiles := fs.Int("tiles", 0, "grid side length in tiles")
	speed := fs.Int("speed", 0, "initial tick interval in milliseconds")
	seed := fs.Int64("seed", 0, "food placement seed (0 = time based)")
	scorePath := fs.String("highscore", "", "high score file or database path")
	store := fs.String("store", "", "high score store: file, sqlite, memory")
	keymap := fs.String("keymap", "", "key binding override file")
	mute := fs.Bool("mute", false, "start with audio muted")
	debug := fs.Bool("debug", false, "write debug log and show metrics")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()

	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	if _, err := os.Stat(*configPath); err == nil || explicit {
		if err := cfg.LoadFile(*configPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tiles":
			cfg.Game.Tiles = *tiles
		case "speed":
			cfg.Game.SpeedMs = *speed
		case "seed":
			cfg.Game.Seed = *seed
		case "highscore":
			cfg.HighScore.Path = *scorePath
		case "store":
			cfg.HighScore.Store = *store
		case "keymap":
			cfg.Keymap = *keymap
		case "mute":
			cfg.Audio.Enabled = !*mute
		case "debug":
			cfg.Debug = *debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
