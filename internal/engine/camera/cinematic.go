package camera

import (
	"errors"
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/cliffhanger/pkg/math"
)

// FlightFPS is the keyframe rate of the intro flight.
const FlightFPS = 60

// Keyframe pins the camera position at a frame. Two keys on the same frame
// make a jump cut.
type Keyframe struct {
	Frame    int
	Position math.Vec3
}

// IntroKeyframes is the flight over the cliff before play starts.
var IntroKeyframes = []Keyframe{
	{0, math.Vec3{X: -100, Y: 220, Z: -80}},
	{3 * FlightFPS, math.Vec3{X: -55, Y: 170, Z: 45}},
	{3 * FlightFPS, math.Vec3{X: -75, Y: 170, Z: 30}},
	{5 * FlightFPS, math.Vec3{X: -75, Y: 130, Z: 40}},
	{6 * FlightFPS, math.Vec3{X: -15, Y: 115, Z: 50}},
	{6 * FlightFPS, math.Vec3{X: 5, Y: 110, Z: 30}},
	{7 * FlightFPS, math.Vec3{X: 13, Y: 75, Z: 0}},
	{8 * FlightFPS, math.Vec3{X: 13, Y: 75, Z: 0}},
	{8 * FlightFPS, math.Vec3{X: -7, Y: 100, Z: 30}},
	{10 * FlightFPS, math.Vec3{X: -40, Y: 70, Z: 60}},
	{10 * FlightFPS, math.Vec3{X: -32, Y: 150, Z: 120}},
	{11 * FlightFPS, math.Vec3{X: -32, Y: 150, Z: 120}},
	{15 * FlightFPS, math.Vec3{X: -32, Y: 35, Z: 120}},
	{16 * FlightFPS, math.Vec3{X: -32, Y: 35, Z: 120}},
}

// IntroForward is the fixed look direction of the intro flight.
var IntroForward = math.Vec3{Z: -1}

// Flight moves a camera through keyframes, one frame per Advance, with
// linear interpolation between keys.
type Flight struct {
	keys    []Keyframe
	seg     int // index of the current segment's first key
	tweens  [3]*gween.Tween
	frame   int
	pos     math.Vec3
	forward math.Vec3
	done    bool
}

// NewFlight creates a flight. Keys must be ordered by frame.
func NewFlight(keys []Keyframe, forward math.Vec3) (*Flight, error) {
	if len(keys) == 0 {
		return nil, errors.New("flight: no keyframes")
	}
	if forward.Length() == 0 {
		return nil, errors.New("flight: zero forward direction")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i].Frame < keys[i-1].Frame {
			return nil, fmt.Errorf("flight: key %d at frame %d comes before frame %d", i, keys[i].Frame, keys[i-1].Frame)
		}
	}

	f := &Flight{
		keys:    keys,
		forward: forward.Normalize(),
		frame:   keys[0].Frame,
	}
	f.enter(0)
	return f, nil
}

// enter starts the segment beginning at key i. Keys sharing a frame collapse
// to the last of them.
func (f *Flight) enter(i int) {
	for i+1 < len(f.keys) && f.keys[i+1].Frame == f.keys[i].Frame {
		i++
	}
	f.seg = i
	f.pos = f.keys[i].Position
	if i+1 >= len(f.keys) {
		f.done = true
		return
	}

	a, b := f.keys[i], f.keys[i+1]
	d := float32(b.Frame - a.Frame)
	f.tweens = [3]*gween.Tween{
		gween.New(a.Position.X, b.Position.X, d, ease.Linear),
		gween.New(a.Position.Y, b.Position.Y, d, ease.Linear),
		gween.New(a.Position.Z, b.Position.Z, d, ease.Linear),
	}
}

// Advance moves the flight forward one frame. It is a no-op once done.
func (f *Flight) Advance() {
	if f.done {
		return
	}
	f.frame++

	var finished bool
	f.pos.X, finished = f.tweens[0].Update(1)
	f.pos.Y, _ = f.tweens[1].Update(1)
	f.pos.Z, _ = f.tweens[2].Update(1)
	if finished {
		f.enter(f.seg + 1)
	}
}

// Skip jumps to the final key.
func (f *Flight) Skip() {
	last := f.keys[len(f.keys)-1]
	f.pos = last.Position
	f.frame = last.Frame
	f.seg = len(f.keys) - 1
	f.done = true
}

// Done reports whether the last key has been reached.
func (f *Flight) Done() bool { return f.done }

// Frame returns the current frame number.
func (f *Flight) Frame() int { return f.frame }

// Position returns the camera position in world space.
func (f *Flight) Position() math.Vec3 { return f.pos }

// ViewMatrix returns the view matrix for this camera.
func (f *Flight) ViewMatrix() math.Mat4 {
	return math.LookAt(f.pos, f.pos.Add(f.forward), math.WorldUp)
}
