// Package config loads the game configuration: built-in defaults, then an
// optional YAML file, with .env and process environment for the few
// settings that matter before the file is read.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"corridor/internal/hallway"
	"corridor/internal/player"
)

// Environment keys.
const (
	EnvConfigPath = "CORRIDOR_CONFIG"
	EnvLogLevel   = "CORRIDOR_LOG_LEVEL"
	EnvLogFormat  = "CORRIDOR_LOG_FORMAT"
	EnvSpeed      = "CORRIDOR_SPEED"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Audio struct {
	Enabled     bool    `yaml:"enabled"`
	SFXVolume   float64 `yaml:"sfx_volume"`
	MusicVolume float64 `yaml:"music_volume"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type File struct {
	Hallway    hallway.Config `yaml:"hallway"`
	Player     player.Config  `yaml:"player"`
	Window     Window         `yaml:"window"`
	Audio      Audio          `yaml:"audio"`
	Log        Log            `yaml:"log"`
	MaxFrameDT float64        `yaml:"max_frame_dt"`
}

func Default() File {
	return File{
		Hallway: hallway.DefaultConfig(),
		Player:  player.DefaultConfig(),
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Corridor",
			VSync:  true,
		},
		Audio: Audio{
			Enabled:     true,
			SFXVolume:   0.5,
			MusicVolume: 0.06,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		MaxFrameDT: 0.1,
	}
}

// Load decodes path over Default, so keys the file omits keep their
// defaults. An empty path returns the defaults.
func Load(path string) (File, error) {
	f := Default()
	if path == "" {
		return f, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func (f File) Validate() error {
	if err := f.Hallway.Validate(); err != nil {
		return err
	}
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("window %dx%d: must be positive", f.Window.Width, f.Window.Height)
	}
	if !(f.MaxFrameDT > 0) {
		return fmt.Errorf("max_frame_dt %v: must be positive", f.MaxFrameDT)
	}
	return nil
}

// LoadEnv reads .env style files into the process environment. A missing
// file is not an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// GetEnv returns the variable named by key, or fallback if unset or empty.
func GetEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}

// GetEnvFloat returns the float value of key, or fallback if unset or
// not a number.
func GetEnvFloat(key string, fallback float64) float64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return fallback
}
