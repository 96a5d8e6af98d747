package states

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cliffhanger/internal/engine/camera"
	"github.com/Faultbox/cliffhanger/internal/engine/character"
	"github.com/Faultbox/cliffhanger/internal/engine/debug"
	"github.com/Faultbox/cliffhanger/internal/engine/input"
	"github.com/Faultbox/cliffhanger/internal/game/climb"
	"github.com/Faultbox/cliffhanger/internal/game/entity"
	"github.com/Faultbox/cliffhanger/internal/game/world"
	"github.com/Faultbox/cliffhanger/internal/logger"
)

// Animator is the clip driver as seen by the climbing state.
type Animator interface {
	climb.Animator
	Advance()
	Current() (name string, frame int)
}

var _ Animator = (*character.Driver)(nil)

// ClimbingConfig wires one climbing session.
type ClimbingConfig struct {
	Map        *world.Map
	Tuning     climb.Tuning
	RayLength  float32
	Bindings   climb.Bindings
	Camera     *camera.ArcRotateCamera
	Animator   Animator
	Drawer     Drawer
	Projection camera.Projection
}

// ClimbingState is the playable state: it feeds held keys to the locomotion
// machine once per frame and keeps the camera on the climber.
type ClimbingState struct {
	config     ClimbingConfig
	tracker    *climb.InputTracker
	classifier *climb.Classifier
	machine    *climb.Machine
	climber    *entity.Climber
	lines      []float32
	summit     bool
}

// NewClimbingState validates the session and builds its collaborators.
func NewClimbingState(cfg ClimbingConfig) (*ClimbingState, error) {
	if cfg.Map == nil || cfg.Camera == nil || cfg.Animator == nil {
		return nil, errors.New("climbing: map, camera and animator are required")
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("climbing: %w", err)
	}

	climber := entity.NewClimber("player", cfg.Map.Spawn, cfg.Map.Facing)
	cfg.Camera.SetTarget(climber.Position)

	view := climb.Viewpoint{
		Offset:  cfg.Camera.Offset(),
		Forward: cfg.Camera.Forward(),
	}
	classifier, err := climb.NewClassifier(cfg.Map.Meshes, cfg.Map.Registry, view, cfg.RayLength, climber.ID)
	if err != nil {
		return nil, fmt.Errorf("climbing: %w", err)
	}

	s := &ClimbingState{
		config:     cfg,
		tracker:    climb.NewInputTracker(cfg.Bindings),
		classifier: classifier,
		climber:    climber,
	}
	s.machine = climb.NewMachine(climber.Position, climber.Axes(), cfg.Tuning, classifier, cfg.Animator)
	return s, nil
}

// Enter is called when entering this state.
func (s *ClimbingState) Enter() error {
	logger.Info("entering ClimbingState",
		zap.String("map", s.config.Map.Name),
		zap.Stringer("surface", s.classifier.Probe(s.climber.Position)),
	)
	s.tracker.Reset()
	s.config.Animator.Hang()
	s.lines = sceneLines(s.classifier.Meshes(), s.classifier.KindOf)
	return nil
}

// Exit is called when leaving this state.
func (s *ClimbingState) Exit() error {
	logger.Info("leaving ClimbingState", zap.Uint64("frames", s.machine.Frame()))
	s.tracker.Reset()
	return nil
}

// Update runs one locomotion step with this frame's input snapshot.
func (s *ClimbingState) Update(dt float64) error {
	s.machine.Update(s.tracker.Snapshot())

	s.climber.Position = s.machine.Position()
	s.config.Camera.SetTarget(s.climber.Position)
	s.config.Animator.Advance()

	if s.machine.Surface() == climb.End && !s.summit {
		s.summit = true
		logger.Info("summit reached",
			zap.Uint64("frame", s.machine.Frame()),
			zap.Float32("x", s.climber.Position.X),
			zap.Float32("y", s.climber.Position.Y),
		)
	}
	return nil
}

// Render draws the map and the climber from the player camera.
func (s *ClimbingState) Render() error {
	if s.config.Drawer == nil {
		return nil
	}
	lines := debug.ColoredWireframe(s.lines, s.climber.Bounds(), 0, climberColor)
	drawScene(s.config.Drawer, lines, s.config.Camera, s.config.Projection)
	return nil
}

// HandleInput records key presses for the next Update.
func (s *ClimbingState) HandleInput(event input.Event) error {
	switch event.Type {
	case input.EventKeyDown:
		s.tracker.KeyDown(event.Key)
	case input.EventKeyUp:
		s.tracker.KeyUp(event.Key)
	case input.EventFocusLost:
		s.tracker.Reset()
	}
	return nil
}

// Status describes the state for the window title.
func (s *ClimbingState) Status() string {
	clip, _ := s.config.Animator.Current()
	if clip == "" {
		clip = "-"
	}
	return fmt.Sprintf("%s on %s | %s", s.machine.State(), s.machine.Surface(), clip)
}

// Machine exposes the locomotion machine, for inspection.
func (s *ClimbingState) Machine() *climb.Machine { return s.machine }

// Climber returns the player entity.
func (s *ClimbingState) Climber() *entity.Climber { return s.climber }

// ReachedSummit reports whether the climber has faced the end surface.
func (s *ClimbingState) ReachedSummit() bool { return s.summit }
