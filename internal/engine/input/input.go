// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventFocusLost
	EventFocusGained
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    string // SDL key name, e.g. "Up", "Left Shift", "Return"
	Repeat bool
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				// Key-up events never arrive for keys held while unfocused.
				i.events = append(i.events, Event{Type: EventFocusLost})
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				i.events = append(i.events, Event{Type: EventFocusGained})
			}

		case *sdl.KeyboardEvent:
			ev := Event{
				Key:    sdl.GetKeyName(e.Keysym.Sym),
				Repeat: e.Repeat != 0,
			}
			if e.Type == sdl.KEYDOWN {
				ev.Type = EventKeyDown
			} else if e.Type == sdl.KEYUP {
				ev.Type = EventKeyUp
			} else {
				continue
			}
			i.events = append(i.events, ev)
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if any of the named keys went down this frame.
// Auto-repeat events are not counted.
func (i *Input) IsKeyPressed(names ...string) bool {
	for _, e := range i.events {
		if e.Type != EventKeyDown || e.Repeat {
			continue
		}
		for _, name := range names {
			if e.Key == name {
				return true
			}
		}
	}
	return false
}

// Push appends an event as if it had been polled. Used to drive states in tests.
func (i *Input) Push(e Event) {
	i.events = append(i.events, e)
}
