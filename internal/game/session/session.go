// Package session assembles a playable climbing session from config and assets.
package session

import (
	"fmt"

	"github.com/Faultbox/cliffhanger/internal/config"
	"github.com/Faultbox/cliffhanger/internal/engine/camera"
	"github.com/Faultbox/cliffhanger/internal/engine/character"
	"github.com/Faultbox/cliffhanger/internal/game/climb"
	"github.com/Faultbox/cliffhanger/internal/game/states"
	"github.com/Faultbox/cliffhanger/internal/game/world"
)

// tuning converts the locomotion config section.
func tuning(c config.LocomotionConfig) climb.Tuning {
	return climb.Tuning{
		ClimbStep:  c.ClimbStep,
		ShimmyStep: c.ShimmyStep,
		HopStep:    c.HopStep,
		FallStep:   c.FallStep,
		SlideStep:  c.SlideStep,
	}
}

// clipSet converts the configured clip names.
func clipSet(c config.ClipNames) character.ClipSet {
	return character.ClipSet{
		Hang:        c.Hang,
		ClimbUp:     c.ClimbUp,
		ClimbDown:   c.ClimbDown,
		ShimmyLeft:  c.ShimmyLeft,
		ShimmyRight: c.ShimmyRight,
		HopLeft:     c.HopLeft,
		HopRight:    c.HopRight,
		Extra:       c.Braced,
	}
}

func projection(c config.GraphicsConfig) camera.Projection {
	p := camera.DefaultProjection()
	p.FOV = c.FOV
	return p
}

// Assets are the files a session is built from.
type Assets struct {
	Level *world.Map
	Clips character.Library
}

// LoadAssets reads the map and clip manifest named by cfg.
func LoadAssets(cfg *config.Config) (*Assets, error) {
	level, err := world.Load(cfg.Map.Path)
	if err != nil {
		return nil, err
	}
	clips, err := character.LoadLibrary(cfg.Animation.Manifest)
	if err != nil {
		return nil, err
	}
	return &Assets{Level: level, Clips: clips}, nil
}

// NewClimbingState builds a fresh climbing session. Every configuration
// problem (unknown control, missing clip, bad tuning) surfaces here, before
// the first frame.
func NewClimbingState(cfg *config.Config, a *Assets, drawer states.Drawer) (*states.ClimbingState, error) {
	bindings, err := climb.BindingsFrom(cfg.Controls.Controls())
	if err != nil {
		return nil, fmt.Errorf("controls: %w", err)
	}

	driver, err := character.NewDriver(a.Clips, clipSet(cfg.Animation.Clips))
	if err != nil {
		return nil, err
	}

	cam := camera.NewArcRotateCamera(cfg.Camera.Alpha, cfg.Camera.Beta, cfg.Camera.Radius)

	return states.NewClimbingState(states.ClimbingConfig{
		Map:        a.Level,
		Tuning:     tuning(cfg.Locomotion),
		RayLength:  cfg.Locomotion.RayLength,
		Bindings:   bindings,
		Camera:     cam,
		Animator:   driver,
		Drawer:     drawer,
		Projection: projection(cfg.Graphics),
	})
}

// newIntroState builds the cutscene that leads into climbing.
func newIntroState(cfg *config.Config, a *Assets, climbing states.State, drawer states.Drawer, manager *states.Manager) (*states.CutsceneState, error) {
	flight, err := camera.NewFlight(camera.IntroKeyframes, camera.IntroForward)
	if err != nil {
		return nil, err
	}
	return states.NewCutsceneState(states.CutsceneConfig{
		Flight:     flight,
		SkipKeys:   cfg.Controls.Skip,
		Meshes:     a.Level.Meshes,
		KindOf:     kindOf(a.Level.Registry),
		Drawer:     drawer,
		Projection: projection(cfg.Graphics),
		Next:       func() states.State { return climbing },
	}, manager), nil
}

func kindOf(r *climb.Registry) func(string) climb.SurfaceKind {
	return func(id string) climb.SurfaceKind {
		kind, _ := r.Kind(id)
		return kind
	}
}

// Start schedules the first state of a session: the intro when requested
// and not disabled by config, otherwise climbing straight away.
func Start(cfg *config.Config, a *Assets, drawer states.Drawer, manager *states.Manager, intro bool) (*states.ClimbingState, error) {
	climbing, err := NewClimbingState(cfg, a, drawer)
	if err != nil {
		return nil, err
	}
	if !intro || cfg.Camera.SkipCutscene {
		manager.Change(climbing)
		return climbing, nil
	}
	cutscene, err := newIntroState(cfg, a, climbing, drawer, manager)
	if err != nil {
		return nil, err
	}
	manager.Change(cutscene)
	return climbing, nil
}
