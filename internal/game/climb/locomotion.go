package climb

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cliffhanger/internal/logger"
	"github.com/Faultbox/cliffhanger/pkg/math"
)

// State is the climber's locomotion state.
type State int

const (
	Hanging State = iota
	Moving
	Falling
	Sliding
)

func (s State) String() string {
	switch s {
	case Hanging:
		return "hanging"
	case Moving:
		return "moving"
	case Falling:
		return "falling"
	case Sliding:
		return "sliding"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Animator receives animation intents. Re-issuing the clip that is already
// looping must not restart it.
type Animator interface {
	ClimbUp()
	ClimbDown()
	MoveLeft(fast bool)
	MoveRight(fast bool)
	Hang()
}

// SurfaceProbe classifies the surface in front of a climber at pos.
type SurfaceProbe interface {
	Probe(pos math.Vec3) SurfaceKind
}

// Tuning holds the fixed per-frame displacement steps.
type Tuning struct {
	ClimbStep  float32
	ShimmyStep float32
	HopStep    float32
	FallStep   float32
	SlideStep  float32
}

// DefaultTuning returns the stock step sizes.
func DefaultTuning() Tuning {
	return Tuning{
		ClimbStep:  0.2,
		ShimmyStep: 0.1,
		HopStep:    0.2,
		FallStep:   1.0,
		SlideStep:  0.5,
	}
}

// Validate rejects non-positive steps.
func (t Tuning) Validate() error {
	for _, s := range []struct {
		name string
		v    float32
	}{
		{"climb", t.ClimbStep},
		{"shimmy", t.ShimmyStep},
		{"hop", t.HopStep},
		{"fall", t.FallStep},
		{"slide", t.SlideStep},
	} {
		if s.v <= 0 {
			return fmt.Errorf("%s step must be positive, got %v", s.name, s.v)
		}
	}
	return nil
}

// Axes are the climber's local up and right directions.
type Axes struct {
	Up    math.Vec3
	Right math.Vec3
}

// Machine is the per-frame locomotion state machine. It is the only writer
// of the climber position and state; call Update once per rendered frame.
type Machine struct {
	state   State
	pos     math.Vec3
	axes    Axes
	tuning  Tuning
	probe   SurfaceProbe
	anim    Animator
	surface SurfaceKind
	frame   uint64
}

// NewMachine creates a machine hanging at start.
func NewMachine(start math.Vec3, axes Axes, tuning Tuning, probe SurfaceProbe, anim Animator) *Machine {
	return &Machine{
		state:  Hanging,
		pos:    start,
		axes:   axes,
		tuning: tuning,
		probe:  probe,
		anim:   anim,
	}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Position returns the climber position.
func (m *Machine) Position() math.Vec3 { return m.pos }

// Surface returns the most recent classification result.
func (m *Machine) Surface() SurfaceKind { return m.surface }

// Frame returns how many frames have been evaluated.
func (m *Machine) Frame() uint64 { return m.frame }

// Update evaluates one frame against the input snapshot taken at frame start.
// Falling and Sliding are sticky and take priority over the default path.
func (m *Machine) Update(in InputState) {
	m.frame++
	prev := m.state

	switch m.state {
	case Falling:
		m.fall(in)
	case Sliding:
		m.slide(in)
	default:
		m.move(in)
	}

	if m.state != prev {
		logger.Debug("locomotion transition",
			zap.Stringer("from", prev),
			zap.Stringer("to", m.state),
			zap.Stringer("surface", m.surface),
			zap.Uint64("frame", m.frame),
		)
	}
}

func (m *Machine) fall(in InputState) {
	m.anim.Hang()
	m.pos.Y -= m.tuning.FallStep

	if in.Sole() != DirUp {
		return
	}
	m.surface = m.probe.Probe(m.pos)
	if m.surface.Holdable() {
		// Regained a hold: movement resumes from the next frame
		m.state = Moving
	}
}

func (m *Machine) slide(in InputState) {
	// A sideways move replaces the hang intent for the frame
	if dir := in.Sole(); dir == DirLeft || dir == DirRight {
		m.step(dir, in.Fast)
	} else {
		m.anim.Hang()
	}

	m.surface = m.probe.Probe(m.pos)
	switch {
	case m.surface.Holdable():
		m.state = Moving
	case m.surface == Decors:
		m.state = Falling
	default:
		m.pos.Y -= m.tuning.SlideStep
	}
}

func (m *Machine) move(in InputState) {
	if !in.AnyDirection() {
		if m.state == Moving {
			m.state = Hanging
			m.anim.Hang()
		}
		return
	}

	m.state = Moving
	dir := in.Sole()
	if dir == DirNone {
		// Conflicting directions cancel each other
		return
	}
	m.step(dir, in.Fast)

	m.surface = m.probe.Probe(m.pos)
	switch m.surface {
	case Decors:
		m.state = Falling
	case SlipperyObjects:
		m.state = Sliding
	}
}

// step issues the intent for dir and applies its displacement.
func (m *Machine) step(dir Direction, fast bool) {
	lateral := m.tuning.ShimmyStep
	if fast {
		lateral = m.tuning.HopStep
	}

	switch dir {
	case DirUp:
		m.anim.ClimbUp()
		m.pos = m.pos.Add(m.axes.Up.Scale(m.tuning.ClimbStep))
	case DirDown:
		m.anim.ClimbDown()
		m.pos = m.pos.Sub(m.axes.Up.Scale(m.tuning.ClimbStep))
	case DirLeft:
		m.anim.MoveLeft(fast)
		m.pos = m.pos.Sub(m.axes.Right.Scale(lateral))
	case DirRight:
		m.anim.MoveRight(fast)
		m.pos = m.pos.Add(m.axes.Right.Scale(lateral))
	}
}
