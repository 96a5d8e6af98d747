// Package game implements the main game loop and state management.
package game

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cliffhanger/internal/config"
	"github.com/Faultbox/cliffhanger/internal/engine/audio"
	"github.com/Faultbox/cliffhanger/internal/engine/debug"
	"github.com/Faultbox/cliffhanger/internal/engine/input"
	"github.com/Faultbox/cliffhanger/internal/engine/renderer"
	"github.com/Faultbox/cliffhanger/internal/engine/window"
	"github.com/Faultbox/cliffhanger/internal/game/session"
	"github.com/Faultbox/cliffhanger/internal/game/states"
	"github.com/Faultbox/cliffhanger/internal/game/world"
	"github.com/Faultbox/cliffhanger/internal/logger"
)

// Title is the window title prefix.
const Title = "Cliffhanger"

// screenshotKey saves the current frame as PNG.
const screenshotKey = "F12"

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager
	states   *states.Manager
	watcher  *world.Watcher
	shots    *debug.ScreenshotCapture
	title    string
}

// New creates a new game instance. Assets are loaded and validated before
// any window is opened.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.String("map", cfg.Map.Path),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a, err := session.LoadAssets(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("map loaded",
		zap.String("name", a.Level.Name),
		zap.Int("meshes", len(a.Level.Meshes)),
		zap.Int("clips", len(a.Clips)),
	)

	g := &Game{
		config: cfg,
		states: states.NewManager(),
		input:  input.New(),
		shots:  debug.NewScreenshotCapture("screenshots", "cliffhanger"),
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.GetSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if _, err := session.Start(cfg, a, g.renderer, g.states, true); err != nil {
		g.Close()
		return nil, err
	}

	g.startMusic()

	if cfg.Map.Watch {
		g.watcher, err = world.NewWatcher(cfg.Map.Path)
		if err != nil {
			logger.Warn("map watch disabled", zap.Error(err))
		}
	}

	logger.Info("game initialized successfully")
	return g, nil
}

// startMusic plays the background track. Audio problems never stop the game.
func (g *Game) startMusic() {
	cfg := g.config.Audio
	if cfg.Music == "" {
		return
	}
	g.audio = audio.New(float64(cfg.MusicVolume))
	g.audio.SetMuted(cfg.Muted)
	if err := g.audio.Init(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
		g.audio = nil
		return
	}
	g.audio.FadeIn(cfg.FadeIn)
	if err := g.audio.PlayMusicFile(cfg.Music); err != nil {
		logger.Warn("background music not played", zap.String("path", cfg.Music), zap.Error(err))
		return
	}
	logger.Info("background music started",
		zap.String("path", g.audio.BGMPath()),
		zap.Duration("fade_in", cfg.FadeIn),
	)
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		// Calculate delta time
		now := time.Now()
		elapsed := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			// Quit event received
			g.running = false
			break
		}

		// Handle events
		for _, event := range g.input.Events() {
			if err := g.handleEvent(event); err != nil {
				return err
			}
		}

		// 2. Pick up map edits
		if g.watcher != nil {
			for _, err := range g.watcher.DrainErrors() {
				logger.Named("watch").Warn("map watch error", zap.String("path", g.config.Map.Path), zap.Error(err))
			}
			if g.watcher.Changed() {
				g.reload()
			}
		}

		// 3. Update game state
		if err := g.states.Update(elapsed.Seconds()); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		if g.audio != nil {
			g.audio.Update(elapsed)
		}

		// 4. Render
		if err := g.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 5. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", elapsed),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvent(event input.Event) error {
	switch event.Type {
	case input.EventWindowResize:
		g.renderer.Resize(event.Width, event.Height)
		return nil
	case input.EventFocusLost:
		// Paused while the window is in the background
		if g.audio != nil {
			g.audio.PauseBGM()
		}
	case input.EventFocusGained:
		if g.audio != nil {
			g.audio.ResumeBGM()
		}
	case input.EventKeyDown:
		if event.Key == screenshotKey && !event.Repeat {
			g.screenshot()
			return nil
		}
		// The intro owns the keyboard until it ends, so Escape skips it
		// rather than quitting.
		_, intro := g.states.Current().(*states.CutsceneState)
		if !intro && slices.Contains(g.config.Controls.Quit, event.Key) {
			g.running = false
			return nil
		}
	}
	return g.states.HandleInput(event)
}

// reload rebuilds the session from the edited map. A broken map keeps the
// current session running.
func (g *Game) reload() {
	a, err := session.LoadAssets(g.config)
	if err != nil {
		logger.Error("map reload failed", zap.Error(err))
		return
	}
	if _, err := session.Start(g.config, a, g.renderer, g.states, false); err != nil {
		logger.Error("map reload failed", zap.Error(err))
		return
	}
	logger.Info("map reloaded", zap.String("name", a.Level.Name), zap.Int("meshes", len(a.Level.Meshes)))
}

func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if err := g.states.Close(); err != nil {
		logger.Warn("state exit failed", zap.Error(err))
	}
	if g.watcher != nil {
		g.watcher.Close()
	}
	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// render draws the current frame.
func (g *Game) render() error {
	g.renderer.Begin()
	if err := g.states.Render(); err != nil {
		return err
	}
	g.renderer.End()

	if s, ok := g.states.Current().(interface{ Status() string }); ok {
		if title := Title + " - " + s.Status(); title != g.title {
			g.title = title
			g.window.SetTitle(title)
		}
	}
	return nil
}
