package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Faultbox/cliffhanger/internal/config"
	"github.com/Faultbox/cliffhanger/internal/engine/character"
	"github.com/Faultbox/cliffhanger/internal/game/climb"
	"github.com/Faultbox/cliffhanger/internal/game/states"
)

// testConfig points the default config at the shipped assets.
func testConfig() *config.Config {
	cfg := config.Default()
	root := filepath.Join("..", "..", "..")
	cfg.Map.Path = filepath.Join(root, "assets", "maps", "cliff.yaml")
	cfg.Animation.Manifest = filepath.Join(root, "assets", "climber.yaml")
	return cfg
}

func mustAssets(t *testing.T, cfg *config.Config) *Assets {
	t.Helper()
	a, err := LoadAssets(cfg)
	if err != nil {
		t.Fatalf("LoadAssets() error = %v", err)
	}
	return a
}

func TestStartSessionWithIntro(t *testing.T) {
	cfg := testConfig()
	m := states.NewManager()

	climbing, err := Start(cfg, mustAssets(t, cfg), nil, m, true)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	m.Update(0)
	if _, ok := m.Current().(*states.CutsceneState); !ok {
		t.Errorf("Current() = %T, want *states.CutsceneState", m.Current())
	}
	if got := climbing.Machine().State(); got != climb.Hanging {
		t.Errorf("State() = %v, want hanging", got)
	}
}

func TestStartSessionSkipsIntro(t *testing.T) {
	cfg := testConfig()
	cfg.Camera.SkipCutscene = true
	m := states.NewManager()

	climbing, err := Start(cfg, mustAssets(t, cfg), nil, m, true)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	m.Update(0)
	if m.Current() != climbing {
		t.Errorf("Current() = %T, want the climbing state", m.Current())
	}
	if got := climbing.Climber().Position; got != mustAssets(t, cfg).Level.Spawn {
		t.Errorf("climber at %v, want spawn", got)
	}
}

func TestNewClimbingStateMissingClip(t *testing.T) {
	cfg := testConfig()
	cfg.Animation.Clips.HopLeft = "10_backflip"

	_, err := NewClimbingState(cfg, mustAssets(t, cfg), nil)
	if !errors.Is(err, character.ErrMissingClip) {
		t.Errorf("NewClimbingState() = %v, want ErrMissingClip", err)
	}
}

func TestNewClimbingStateConflictingKeys(t *testing.T) {
	cfg := testConfig()
	cfg.Controls.Down = []string{"Up"}

	if _, err := NewClimbingState(cfg, mustAssets(t, cfg), nil); err == nil {
		t.Error("NewClimbingState() should reject a key bound to two controls")
	}
}

func TestLoadAssetsMissingMap(t *testing.T) {
	cfg := testConfig()
	cfg.Map.Path = "nope.yaml"
	if _, err := LoadAssets(cfg); err == nil {
		t.Error("LoadAssets() should fail for a missing map")
	}
}

func TestTuningFromConfig(t *testing.T) {
	got := tuning(config.Default().Locomotion)
	if got != climb.DefaultTuning() {
		t.Errorf("tuning(default) = %+v, want %+v", got, climb.DefaultTuning())
	}
}
