package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
)

// AudioConfig controls the sound output
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes [core.SoundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at 50% master volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constant.AudioSampleRate,
	}
	cfg.EffectVolumes[core.SoundEat] = 0.6
	cfg.EffectVolumes[core.SoundSpeedUp] = 0.5
	cfg.EffectVolumes[core.SoundGameOver] = 0.7
	cfg.EffectVolumes[core.SoundNewHigh] = 0.6
	return cfg
}

var effectKeys = map[string]core.SoundType{
	"eat":      core.SoundEat,
	"speedup":  core.SoundSpeedUp,
	"gameover": core.SoundGameOver,
	"newhigh":  core.SoundNewHigh,
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("VI_SNAKE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Percent, clamped to 0-100
	if volume := os.Getenv("VI_SNAKE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// JSON object keyed by effect name, e.g. {"eat":0.4,"gameover":1}
	if effectVols := os.Getenv("VI_SNAKE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for key, v := range volumes {
				if st, ok := effectKeys[key]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("VI_SNAKE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
