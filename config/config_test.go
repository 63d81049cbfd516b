package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func noEnv(string) string { return "" }

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load([]string{"-config", filepath.Join(dir, "missing.toml")}, noEnv); err == nil {
		t.Fatal("Expected explicit missing config to fail")
	}

	t.Chdir(dir)
	cfg, err := Load(nil, noEnv)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.Tiles != 20 || cfg.TickInterval() != 150*time.Millisecond {
		t.Errorf("Expected 20 tiles at 150ms, got %d at %v", cfg.Game.Tiles, cfg.TickInterval())
	}
	if cfg.HighScore.Store != "file" || !cfg.Audio.Enabled || cfg.Debug {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
}

func TestFileEnvFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	os.WriteFile(path, []byte(`
debug = true
keymap = "keys.toml"

[game]
tiles = 30
speed_ms = 120

[highscore]
store = "sqlite"
path = "scores.db"
`), 0o644)

	env := envMap(map[string]string{
		EnvTiles:        "25",
		EnvAudioEnabled: "false",
	})

	cfg, err := Load([]string{"-config", path, "-tiles", "40", "-seed", "9"}, env)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Game.Tiles != 40 {
		t.Errorf("Expected flag to win with 40 tiles, got %d", cfg.Game.Tiles)
	}
	if cfg.Game.SpeedMs != 120 {
		t.Errorf("Expected file speed 120, got %d", cfg.Game.SpeedMs)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected env to disable audio")
	}
	if cfg.HighScore.Store != "sqlite" || cfg.HighScore.Path != "scores.db" {
		t.Errorf("Expected sqlite store from file, got %+v", cfg.HighScore)
	}
	if cfg.Keymap != "keys.toml" {
		t.Errorf("Expected keymap from file, got %q", cfg.Keymap)
	}
	if !cfg.Debug || cfg.Game.Seed != 9 {
		t.Errorf("Expected debug and seed 9, got %v %d", cfg.Debug, cfg.Game.Seed)
	}
}

func TestMuteFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load([]string{"-mute"}, noEnv)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected -mute to disable audio")
	}
}

func TestUnknownKeyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	os.WriteFile(path, []byte("[game]\ntilez = 10\n"), 0o644)

	cfg := Default()
	err := cfg.LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "tilez") {
		t.Errorf("Expected unknown key error, got %v", err)
	}
}

func TestApplyEnvMalformed(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvSpeedMs:      "fast",
		EnvAudioEnabled: "perhaps",
		EnvStore:        "memory",
	}))
	if err == nil {
		t.Fatal("Expected error for malformed env")
	}
	if !strings.Contains(err.Error(), EnvSpeedMs) || !strings.Contains(err.Error(), EnvAudioEnabled) {
		t.Errorf("Expected both variables reported, got %v", err)
	}
	if cfg.HighScore.Store != "memory" {
		t.Errorf("Expected well-formed values applied, got store %q", cfg.HighScore.Store)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"tiny grid", func(c *Config) { c.Game.Tiles = 2 }, "tiles"},
		{"huge grid", func(c *Config) { c.Game.Tiles = 1000 }, "tiles"},
		{"too fast", func(c *Config) { c.Game.SpeedMs = 10 }, "speed"},
		{"volume", func(c *Config) { c.Audio.MasterVolume = 101 }, "volume"},
		{"store", func(c *Config) { c.HighScore.Store = "redis" }, "store"},
		{"path", func(c *Config) { c.HighScore.Path = "" }, "path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}

	mem := Default()
	mem.HighScore.Store = "memory"
	mem.HighScore.Path = ""
	if err := mem.Validate(); err != nil {
		t.Errorf("Expected memory store without path to validate, got %v", err)
	}
}
