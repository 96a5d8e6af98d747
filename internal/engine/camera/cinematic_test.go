package camera

import (
	"testing"

	"github.com/Faultbox/cliffhanger/pkg/math"
)

func advance(f *Flight, n int) {
	for i := 0; i < n; i++ {
		f.Advance()
	}
}

func newIntro(t *testing.T) *Flight {
	t.Helper()
	f, err := NewFlight(IntroKeyframes, IntroForward)
	if err != nil {
		t.Fatalf("NewFlight() error = %v", err)
	}
	return f
}

func TestFlightStartsAtFirstKey(t *testing.T) {
	f := newIntro(t)
	if got, want := f.Position(), IntroKeyframes[0].Position; got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
	if f.Done() {
		t.Error("Done() = true before any frame")
	}
}

func TestFlightInterpolatesLinearly(t *testing.T) {
	f := newIntro(t)
	advance(f, 90) // half of the first segment

	want := math.Vec3{X: -77.5, Y: 195, Z: -17.5}
	if got := f.Position(); !got.NearlyEqual(want, eps) {
		t.Errorf("Position() at frame 90 = %v, want %v", got, want)
	}
}

func TestFlightJumpCut(t *testing.T) {
	f := newIntro(t)
	advance(f, 3*FlightFPS)

	want := math.Vec3{X: -75, Y: 170, Z: 30}
	if got := f.Position(); !got.NearlyEqual(want, eps) {
		t.Errorf("Position() at 3s = %v, want jump-cut key %v", got, want)
	}
}

func TestFlightHold(t *testing.T) {
	f := newIntro(t)
	advance(f, 7*FlightFPS+30)

	want := math.Vec3{X: 13, Y: 75, Z: 0}
	if got := f.Position(); !got.NearlyEqual(want, eps) {
		t.Errorf("Position() during hold = %v, want %v", got, want)
	}
}

func TestFlightCompletes(t *testing.T) {
	f := newIntro(t)
	advance(f, 16*FlightFPS-1)
	if f.Done() {
		t.Fatal("Done() = true one frame early")
	}

	f.Advance()
	if !f.Done() {
		t.Fatal("Done() = false after 16s")
	}
	if got := f.Frame(); got != 16*FlightFPS {
		t.Errorf("Frame() = %d, want %d", got, 16*FlightFPS)
	}
	want := math.Vec3{X: -32, Y: 35, Z: 120}
	if got := f.Position(); !got.NearlyEqual(want, eps) {
		t.Errorf("Position() = %v, want %v", got, want)
	}

	f.Advance()
	if got := f.Frame(); got != 16*FlightFPS {
		t.Errorf("Advance() after done moved to frame %d", got)
	}
}

func TestFlightSkip(t *testing.T) {
	f := newIntro(t)
	advance(f, 10)
	f.Skip()

	if !f.Done() {
		t.Error("Done() = false after Skip")
	}
	if got, want := f.Position(), IntroKeyframes[len(IntroKeyframes)-1].Position; got != want {
		t.Errorf("Position() after Skip = %v, want %v", got, want)
	}
}

func TestNewFlightValidation(t *testing.T) {
	if _, err := NewFlight(nil, IntroForward); err == nil {
		t.Error("NewFlight(nil) should fail")
	}
	if _, err := NewFlight(IntroKeyframes, math.Vec3{}); err == nil {
		t.Error("NewFlight() with zero forward should fail")
	}
	unordered := []Keyframe{{10, math.Vec3{}}, {5, math.Vec3{}}}
	if _, err := NewFlight(unordered, IntroForward); err == nil {
		t.Error("NewFlight() with unordered keys should fail")
	}
}

func TestSingleKeyFlightIsDone(t *testing.T) {
	f, err := NewFlight([]Keyframe{{0, math.Vec3{X: 1}}}, IntroForward)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Done() {
		t.Error("Done() = false for a single key")
	}
}
