// Package audio plays the looping background music with a volume fade-in.
package audio

import (
	"errors"
	"fmt"
	"io"
	gomath "math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playback is requested before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Manager handles background music playback.
type Manager struct {
	mu sync.RWMutex

	// State
	initialized bool
	sampleRate  beep.SampleRate

	// BGM
	bgmStreamer beep.StreamSeekCloser
	bgmCtrl     *beep.Ctrl
	bgmVolume   *effects.Volume
	bgmPlaying  bool
	bgmPath     string

	// Volume (0.0 to 1.0)
	musicVolume float64
	muted       bool
	fade        Fade
}

// New creates a new audio manager playing at the given music volume.
func New(musicVolume float64) *Manager {
	v := clamp(musicVolume, 0, 1)
	return &Manager{
		musicVolume: v,
		fade:        Fade{From: v, To: v},
	}
}

// Init initializes the audio device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopBGM()
	if m.initialized {
		speaker.Close()
	}
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMusicVolume sets the target music volume (0.0 to 1.0).
// A running fade retargets to the new level.
func (m *Manager) SetMusicVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.musicVolume = clamp(vol, 0, 1)
	m.fade.To = m.musicVolume
	if m.fade.Done() {
		m.fade.From = m.musicVolume
	}
	m.updateBGMVolume()
}

// MusicVolume returns the target music volume.
func (m *Manager) MusicVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.musicVolume
}

// SetMuted silences or restores the music without losing the fade position.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.updateBGMVolume()
}

// Level returns the current effective volume, after fade and mute.
func (m *Manager) Level() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.level()
}

func (m *Manager) level() float64 {
	if m.muted {
		return 0
	}
	return m.fade.Level()
}

// FadeIn starts a fade from silence to the music volume over d.
func (m *Manager) FadeIn(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fade = Fade{From: 0, To: m.musicVolume, Duration: d}
	m.updateBGMVolume()
}

// Update advances the fade by dt. Call once per frame.
func (m *Manager) Update(dt time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fade.Done() {
		return
	}
	m.fade.Advance(dt)
	m.updateBGMVolume()
}

func (m *Manager) updateBGMVolume() {
	if m.bgmVolume == nil {
		return
	}
	vol := m.level()

	speaker.Lock()
	defer speaker.Unlock()
	if vol <= 0 {
		m.bgmVolume.Silent = true
		return
	}
	m.bgmVolume.Silent = false
	m.bgmVolume.Volume = volumeToExponent(vol)
}

// volumeToExponent converts a 0-1 amplitude to the base-2 exponent used by
// effects.Volume: 1 -> 0, 0.5 -> -1, 0.25 -> -2.
func volumeToExponent(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return gomath.Log2(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// PlayMusicFile opens a WAV file and plays it as looping background music.
func (m *Manager) PlayMusicFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open music: %w", err)
	}
	if err := m.PlayBGM(f, path); err != nil {
		f.Close()
		return err
	}
	return nil
}

// PlayBGM decodes WAV data and loops it until stopped.
// The manager takes ownership of r.
func (m *Manager) PlayBGM(r io.ReadSeekCloser, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}

	m.stopBGM()

	streamer, format, err := wav.Decode(r)
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}

	// Resample if needed
	var resampled beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	m.bgmCtrl = &beep.Ctrl{
		Streamer: &loopStreamer{streamer: streamer, resampled: resampled},
	}
	m.bgmVolume = &effects.Volume{
		Streamer: m.bgmCtrl,
		Base:     2,
	}
	m.bgmStreamer = streamer
	m.bgmPath = path
	m.bgmPlaying = true
	m.updateBGMVolume()

	speaker.Play(m.bgmVolume)
	return nil
}

func (m *Manager) stopBGM() {
	if m.bgmCtrl == nil {
		return
	}
	speaker.Clear()
	m.bgmPlaying = false
	if m.bgmStreamer != nil {
		m.bgmStreamer.Close()
		m.bgmStreamer = nil
	}
	m.bgmCtrl = nil
	m.bgmVolume = nil
	m.bgmPath = ""
}

// PauseBGM pauses the current background music.
func (m *Manager) PauseBGM() {
	m.setPaused(true)
}

// ResumeBGM resumes the paused background music.
func (m *Manager) ResumeBGM() {
	m.setPaused(false)
}

func (m *Manager) setPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bgmCtrl == nil {
		return
	}
	speaker.Lock()
	m.bgmCtrl.Paused = paused
	speaker.Unlock()
	m.bgmPlaying = !paused
}

// IsBGMPlaying returns whether BGM is currently playing.
func (m *Manager) IsBGMPlaying() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bgmPlaying
}

// BGMPath returns the path of the currently playing BGM.
func (m *Manager) BGMPath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bgmPath
}

// loopStreamer restarts the source when it runs out.
type loopStreamer struct {
	streamer  beep.StreamSeekCloser
	resampled beep.Streamer
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.resampled.Stream(samples[filled:])
		filled += n
		if !ok {
			if err := l.streamer.Seek(0); err != nil {
				return filled, false
			}
			if n == 0 && l.streamer.Len() == 0 {
				return filled, false
			}
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.streamer.Err()
}
