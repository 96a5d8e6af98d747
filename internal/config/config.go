// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Audio      AudioConfig      `yaml:"audio"`
	Controls   ControlsConfig   `yaml:"controls"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Camera     CameraConfig     `yaml:"camera"`
	Map        MapConfig        `yaml:"map"`
	Animation  AnimationConfig  `yaml:"animation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // Vertical field of view, degrees
}

// AudioConfig holds background music settings.
type AudioConfig struct {
	Music       string        `yaml:"music"` // WAV file, empty disables music
	MusicVolume float32       `yaml:"music_volume"`
	FadeIn      time.Duration `yaml:"fade_in"`
	Muted       bool          `yaml:"muted"`
}

// ControlsConfig lists the key names bound to each control.
// Names are SDL key names ("Up", "Left Shift") or browser-style ("ArrowUp").
type ControlsConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Fast  []string `yaml:"fast"`
	Skip  []string `yaml:"skip"` // Skips the intro flight
	Quit  []string `yaml:"quit"`
}

// Controls returns the key lists by control name.
func (c ControlsConfig) Controls() map[string][]string {
	return map[string][]string{
		"up":    c.Up,
		"down":  c.Down,
		"left":  c.Left,
		"right": c.Right,
		"fast":  c.Fast,
	}
}

// LocomotionConfig holds the climber's per-frame steps.
type LocomotionConfig struct {
	ClimbStep  float32 `yaml:"climb_step"`
	ShimmyStep float32 `yaml:"shimmy_step"`
	HopStep    float32 `yaml:"hop_step"`
	FallStep   float32 `yaml:"fall_step"`
	SlideStep  float32 `yaml:"slide_step"`
	RayLength  float32 `yaml:"ray_length"`
}

// CameraConfig holds the player camera orbit and intro settings.
type CameraConfig struct {
	Alpha        float32 `yaml:"alpha"`
	Beta         float32 `yaml:"beta"`
	Radius       float32 `yaml:"radius"`
	SkipCutscene bool    `yaml:"skip_cutscene"`
}

// MapConfig holds map file settings.
type MapConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"` // Reload on change
}

// AnimationConfig names the climber's clip manifest and the clips used for each intent.
type AnimationConfig struct {
	Manifest string    `yaml:"manifest"`
	Clips    ClipNames `yaml:"clips"`
}

// ClipNames maps screen-relative animation intents to clip names in the manifest.
type ClipNames struct {
	Hang        string   `yaml:"hang"`
	ClimbUp     string   `yaml:"climb_up"`
	ClimbDown   string   `yaml:"climb_down"`
	ShimmyLeft  string   `yaml:"shimmy_left"`
	ShimmyRight string   `yaml:"shimmy_right"`
	HopLeft     string   `yaml:"hop_left"`
	HopRight    string   `yaml:"hop_right"`
	Braced      []string `yaml:"braced"` // Stopped together with the rest on hang
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        45,
		},
		Audio: AudioConfig{
			Music:       "assets/audio/olympics.wav",
			MusicVolume: 0.75,
			FadeIn:      30 * time.Second,
		},
		Controls: ControlsConfig{
			Up:    []string{"Up", "ArrowUp"},
			Down:  []string{"Down", "ArrowDown"},
			Left:  []string{"Left", "ArrowLeft"},
			Right: []string{"Right", "ArrowRight"},
			Fast:  []string{"Left Shift", "Right Shift", "Shift"},
			Skip:  []string{"Return", "Space", "Escape"},
			Quit:  []string{"Escape"},
		},
		Locomotion: LocomotionConfig{
			ClimbStep:  0.2,
			ShimmyStep: 0.1,
			HopStep:    0.2,
			FallStep:   1.0,
			SlideStep:  0.5,
			RayLength:  100,
		},
		Camera: CameraConfig{
			Alpha:  1.962076998649251,
			Beta:   1.5475988827625136,
			Radius: 47.23366662045099,
		},
		Map: MapConfig{
			Path: "assets/maps/cliff.yaml",
		},
		Animation: AnimationConfig{
			Manifest: "assets/climber.yaml",
			Clips: ClipNames{
				Hang:        "1_hang",
				ClimbUp:     "4_climbingUp",
				ClimbDown:   "5_climbingDown",
				// The model faces the camera: screen-left plays its right-hand clips
				ShimmyLeft:  "6_shimmyRight",
				ShimmyRight: "7_shimmyLeft",
				HopLeft:     "8_hopRight",
				HopRight:    "9_hopLeft",
				Braced:      []string{"2_hangBraced", "3_bracedHang"},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings the game cannot start without.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Graphics.Width > 0 && c.Graphics.Height > 0,
		"graphics: window size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height)
	check(c.Graphics.FOV > 0 && c.Graphics.FOV < 180, "graphics: fov must be in (0, 180), got %v", c.Graphics.FOV)

	loco := c.Locomotion
	for name, v := range map[string]float32{
		"climb_step":  loco.ClimbStep,
		"shimmy_step": loco.ShimmyStep,
		"hop_step":    loco.HopStep,
		"fall_step":   loco.FallStep,
		"slide_step":  loco.SlideStep,
		"ray_length":  loco.RayLength,
	} {
		check(v > 0, "locomotion: %s must be positive, got %v", name, v)
	}

	for name, keys := range c.Controls.Controls() {
		check(len(keys) > 0, "controls: %s has no keys bound", name)
	}

	check(c.Camera.Radius > 0, "camera: radius must be positive, got %v", c.Camera.Radius)
	check(c.Map.Path != "", "map: path is empty")
	check(c.Animation.Manifest != "", "animation: manifest is empty")

	clips := c.Animation.Clips
	for name, v := range map[string]string{
		"hang":         clips.Hang,
		"climb_up":     clips.ClimbUp,
		"climb_down":   clips.ClimbDown,
		"shimmy_left":  clips.ShimmyLeft,
		"shimmy_right": clips.ShimmyRight,
		"hop_left":     clips.HopLeft,
		"hop_right":    clips.HopRight,
	} {
		check(v != "", "animation: clip %s is empty", name)
	}

	check(c.Audio.MusicVolume >= 0 && c.Audio.MusicVolume <= 1,
		"audio: music_volume must be in [0, 1], got %v", c.Audio.MusicVolume)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
