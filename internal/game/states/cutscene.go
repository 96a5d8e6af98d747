package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/cliffhanger/internal/engine/camera"
	"github.com/Faultbox/cliffhanger/internal/engine/input"
	"github.com/Faultbox/cliffhanger/internal/game/climb"
	"github.com/Faultbox/cliffhanger/internal/logger"
)

// CutsceneConfig configures the intro flight.
type CutsceneConfig struct {
	Flight     *camera.Flight
	SkipKeys   []string
	Meshes     []climb.Mesh
	KindOf     func(id string) climb.SurfaceKind
	Drawer     Drawer
	Projection camera.Projection
	// Next builds the state that takes over once the flight ends.
	Next func() State
}

// CutsceneState flies the camera over the map before handing control to
// the player.
type CutsceneState struct {
	config  CutsceneConfig
	manager *Manager
	lines   []float32
	handed  bool
}

// NewCutsceneState creates the intro state.
func NewCutsceneState(cfg CutsceneConfig, manager *Manager) *CutsceneState {
	return &CutsceneState{
		config:  cfg,
		manager: manager,
	}
}

// Enter is called when entering this state.
func (s *CutsceneState) Enter() error {
	logger.Info("entering CutsceneState", zap.Int("frame", s.config.Flight.Frame()))
	s.lines = sceneLines(s.config.Meshes, s.config.KindOf)
	return nil
}

// Exit is called when leaving this state.
func (s *CutsceneState) Exit() error {
	logger.Info("leaving CutsceneState", zap.Int("frame", s.config.Flight.Frame()))
	return nil
}

// Update advances the flight one frame; once done, control passes on.
func (s *CutsceneState) Update(dt float64) error {
	if s.config.Flight.Done() {
		if !s.handed {
			s.handed = true
			s.manager.Change(s.config.Next())
		}
		return nil
	}
	s.config.Flight.Advance()
	return nil
}

// Render draws the map from the flight camera.
func (s *CutsceneState) Render() error {
	if s.config.Drawer != nil {
		drawScene(s.config.Drawer, s.lines, s.config.Flight, s.config.Projection)
	}
	return nil
}

// HandleInput skips the flight on a skip key press.
func (s *CutsceneState) HandleInput(event input.Event) error {
	if event.Type != input.EventKeyDown || event.Repeat || s.config.Flight.Done() {
		return nil
	}
	for _, key := range s.config.SkipKeys {
		if event.Key == key {
			logger.Debug("intro skipped", zap.String("key", key))
			s.config.Flight.Skip()
			break
		}
	}
	return nil
}

// Status describes the state for the window title.
func (s *CutsceneState) Status() string {
	return "intro"
}
