// Package climb implements the climber's locomotion core: keyboard tracking,
// surface classification and the per-frame movement state machine.
package climb

import (
	"fmt"
	"strings"
)

// Control is a logical key the tracker reacts to.
type Control int

const (
	ControlNone Control = iota
	ControlUp
	ControlDown
	ControlLeft
	ControlRight
	ControlFast
)

var controlNames = map[string]Control{
	"up":    ControlUp,
	"down":  ControlDown,
	"left":  ControlLeft,
	"right": ControlRight,
	"fast":  ControlFast,
}

// ParseControl converts a config name ("up", "down", "left", "right", "fast").
func ParseControl(name string) (Control, error) {
	c, ok := controlNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ControlNone, fmt.Errorf("unknown control %q", name)
	}
	return c, nil
}

// Direction is the single direction resolved from an InputState.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// InputState is a snapshot of the held direction keys and the fast modifier.
type InputState struct {
	Up, Down, Left, Right bool
	Fast                  bool
}

// AnyDirection reports whether at least one direction key is held.
func (s InputState) AnyDirection() bool {
	return s.Up || s.Down || s.Left || s.Right
}

// Sole returns the held direction when it is the only one held.
// Two or more held directions cancel out to DirNone.
func (s InputState) Sole() Direction {
	held := DirNone
	count := 0
	for _, d := range [...]struct {
		on  bool
		dir Direction
	}{{s.Up, DirUp}, {s.Down, DirDown}, {s.Left, DirLeft}, {s.Right, DirRight}} {
		if d.on {
			held = d.dir
			count++
		}
	}
	if count != 1 {
		return DirNone
	}
	return held
}

// Bindings maps key identifiers to controls.
type Bindings map[string]Control

// DefaultBindings covers both browser-style and SDL key names.
func DefaultBindings() Bindings {
	return Bindings{
		"ArrowUp":     ControlUp,
		"Up":          ControlUp,
		"ArrowDown":   ControlDown,
		"Down":        ControlDown,
		"ArrowLeft":   ControlLeft,
		"Left":        ControlLeft,
		"ArrowRight":  ControlRight,
		"Right":       ControlRight,
		"Shift":       ControlFast,
		"Left Shift":  ControlFast,
		"Right Shift": ControlFast,
	}
}

// BindingsFrom builds Bindings from control name to key names, e.g. "up" -> ["W", "Up"].
func BindingsFrom(controls map[string][]string) (Bindings, error) {
	b := make(Bindings)
	for name, keys := range controls {
		c, err := ParseControl(name)
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			if prev, ok := b[key]; ok && prev != c {
				return nil, fmt.Errorf("key %q bound to both %s and %s", key, controlName(prev), name)
			}
			b[key] = c
		}
	}
	return b, nil
}

func controlName(c Control) string {
	for name, v := range controlNames {
		if v == c {
			return name
		}
	}
	return "none"
}

// InputTracker turns key-down/key-up events into an InputState.
// Handlers and Snapshot must be called from the same goroutine.
type InputTracker struct {
	bindings Bindings
	state    InputState
}

// NewInputTracker creates a tracker. A nil or empty map uses DefaultBindings.
func NewInputTracker(bindings Bindings) *InputTracker {
	if len(bindings) == 0 {
		bindings = DefaultBindings()
	}
	return &InputTracker{bindings: bindings}
}

// KeyDown marks the bound control as held. Unknown keys are ignored.
func (t *InputTracker) KeyDown(key string) {
	t.set(t.bindings[key], true)
}

// KeyUp releases the bound control. Unknown keys are ignored.
func (t *InputTracker) KeyUp(key string) {
	t.set(t.bindings[key], false)
}

// Snapshot returns the current state by value.
func (t *InputTracker) Snapshot() InputState {
	return t.state
}

// Reset releases everything.
func (t *InputTracker) Reset() {
	t.state = InputState{}
}

func (t *InputTracker) set(c Control, held bool) {
	switch c {
	case ControlUp:
		t.state.Up = held
	case ControlDown:
		t.state.Down = held
	case ControlLeft:
		t.state.Left = held
	case ControlRight:
		t.state.Right = held
	case ControlFast:
		t.state.Fast = held
	}
}
